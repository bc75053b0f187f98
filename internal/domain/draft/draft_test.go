package draft

import (
	"strings"
	"testing"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func sampleOrder() *entity.Order {
	return &entity.Order{
		IncrementID:       "200045678",
		CustomerFirstName: "Ana",
		CustomerLastName:  "Silva",
		ShippingCompany:   "Trail Co",
		ShippingStreet1:   "12 King St",
		ShippingCity:      "Halifax",
		ShippingRegion:    "Nova Scotia",
		ShippingPostcode:  "B3H 1A1",
		ShippingCountryID: "ca",
		ShippingTelephone: "902-555-0101",
		Items: []entity.OrderItem{
			{
				SKU:              "QTC-92806-9022",
				Name:             "Rugged Ridge Floor Liners",
				QtyOrdered:       entity.ParseAmount("2.0000"),
				SelectedSupplier: "Meyer",
				Product:          &entity.Product{BrandName: "Rugged Ridge"},
			},
			{
				SKU:        "KEN-30477",
				Name:       "Kentrol 2 Door Hinge",
				QtyOrdered: entity.NewAmount(1),
			},
		},
	}
}

func TestInferBrand(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "DV8 Off Road Rear Bumper", want: "DV8 Off Road"},
		{name: "Rugged Ridge Floor Liners", want: "Rugged Ridge"},
		{name: "Kentrol 2 Door Hinge", want: "Kentrol"},
		{name: "Bestop for Wrangler", want: "Bestop"},
		{name: "2 Piece Kit", want: ""},
		{name: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, InferBrand(tt.name))
		})
	}
}

func TestShipToBlock(t *testing.T) {
	got := ShipToBlock(sampleOrder())

	assert.Equal(t, "Ana Silva\nTrail Co\n12 King St\nHalifax, Nova Scotia, B3H 1A1\nCanada\nT: 902-555-0101", got)
}

func TestShipToBlock_Fallbacks(t *testing.T) {
	got := ShipToBlock(&entity.Order{ShippingCountryID: "US"})

	assert.Equal(t, "Customer\nUnited States", got)
	assert.Equal(t, "Customer\nCanada", ShipToBlock(&entity.Order{}))
}

func TestDrafter_ForOrder(t *testing.T) {
	d := NewDrafter("purchasing@justjeeps.com")

	got := d.ForOrder(sampleOrder(), nil)

	assert.Equal(t, "purchasing@justjeeps.com", got.To)
	assert.Equal(t, "Order 200045678 ", got.Subject)
	assert.Contains(t, got.DropShipBody, "2 x Rugged Ridge 92806-9022\n1 x Kentrol 30477")
	assert.Contains(t, got.DropShipBody, "\n\nShip to:\nAna Silva")
	assert.Contains(t, got.DropShipBody, Underline("ETA, cost, and shipping cost"))
	assert.True(t, strings.HasSuffix(got.StoreBody, "\n\nThank you,"))
	assert.NotContains(t, got.StoreBody, "Ship to:")
	assert.True(t, strings.HasPrefix(got.DropShipMailto, "mailto:purchasing@justjeeps.com?subject=Order%20200045678%20&body="))
}

func TestDrafter_ForItem(t *testing.T) {
	d := NewDrafter("purchasing@justjeeps.com")
	order := sampleOrder()

	meyer := d.ForItem(order, &order.Items[0], "Rugged Ridge")
	unknown := d.ForItem(order, &order.Items[1], "")

	assert.Equal(t, "orders@meyerdistributing.com", meyer.To)
	assert.Contains(t, meyer.StoreBody, "for the item listed below?\n2 x Rugged Ridge 92806-9022")
	assert.Equal(t, "purchasing@justjeeps.com", unknown.To)
	assert.Contains(t, unknown.DropShipBody, "1 x 30477")
}

func TestUnderline(t *testing.T) {
	assert.Equal(t, "a̲b̲", Underline("ab"))
}
