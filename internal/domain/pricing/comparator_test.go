package pricing

import (
	"math"
	"testing"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offer(vendor string, cost float64, inventory *float64, status string) entity.VendorProduct {
	vp := entity.VendorProduct{
		VendorCost:            entity.NewAmount(cost),
		VendorInventoryString: status,
		Vendor:                entity.Vendor{Name: vendor},
	}
	if inventory != nil {
		vp.VendorInventory = entity.NewAmount(*inventory)
	}

	return vp
}

func inv(v float64) *float64 {
	return &v
}

func TestAdjustCost(t *testing.T) {
	assert.InDelta(t, 100.0, AdjustCost(150, entity.CurrencyUSD), 1e-9)
	assert.InDelta(t, 150.0, AdjustCost(150, entity.CurrencyCAD), 1e-9)
}

func TestMargin(t *testing.T) {
	assert.InDelta(t, 50.0, Margin(150, 100), 1e-9)
	assert.True(t, math.IsNaN(Margin(150, 0)))
	assert.True(t, math.IsNaN(Margin(150, math.NaN())))
	assert.InDelta(t, -50.0, Margin(50, 100), 1e-9)
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name  string
		offer entity.VendorProduct
		want  bool
	}{
		{name: "positive inventory", offer: offer("Meyer", 10, inv(3), ""), want: true},
		{name: "zero inventory", offer: offer("Meyer", 10, inv(0), "In Stock"), want: false},
		{name: "negative inventory", offer: offer("Meyer", 10, inv(-1), ""), want: false},
		{name: "status in stock", offer: offer("Omix", 10, nil, "In Stock"), want: true},
		{name: "status out of stock", offer: offer("Omix", 10, nil, "OUT OF STOCK"), want: false},
		{name: "status zero zero", offer: offer("Omix", 10, nil, "0/0 Stock"), want: false},
		{name: "status cad us zero", offer: offer("Omix", 10, nil, "CAD Stock: 0 / US Stock: 0"), want: false},
		{name: "no information", offer: offer("Omix", 10, nil, ""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Eligible(&tt.offer))
		})
	}
}

func TestComparator_Compare_EndToEnd(t *testing.T) {
	c := NewComparator(DefaultHealthyMarginPercent)
	offers := []entity.VendorProduct{
		offer("Meyer", 1003.57, inv(97), ""),
		offer("Keystone", 956.27, inv(58), ""),
	}

	result := c.Compare(offers, 1417.95, entity.CurrencyCAD)

	require.Len(t, result.Evaluations, 2)
	assert.InDelta(t, 41.29, result.Evaluations[0].Margin, 0.005)
	assert.InDelta(t, 48.28, result.Evaluations[1].Margin, 0.005)
	assert.True(t, result.Evaluations[0].Healthy)
	assert.True(t, result.Evaluations[1].Healthy)
	require.NotNil(t, result.Best())
	assert.Equal(t, "Keystone", result.BestVendor())
}

func TestComparator_Compare_USDDividesCost(t *testing.T) {
	c := NewComparator(18)

	result := c.Compare([]entity.VendorProduct{offer("Meyer", 150, inv(1), "")}, 150, entity.CurrencyUSD)

	assert.InDelta(t, 100.0, result.Evaluations[0].AdjustedCost, 1e-9)
	assert.InDelta(t, 50.0, result.Evaluations[0].Margin, 1e-9)
}

func TestComparator_Compare_NeverPicksIneligible(t *testing.T) {
	c := NewComparator(18)
	offers := []entity.VendorProduct{
		offer("Cheap", 10, inv(0), ""),
		offer("Out", 11, nil, "Out of stock"),
		offer("Stocked", 90, inv(5), ""),
	}

	result := c.Compare(offers, 100, entity.CurrencyCAD)

	assert.Equal(t, "Stocked", result.BestVendor())
	assert.False(t, result.Evaluations[2].Healthy)
}

func TestComparator_Compare_NoEligible(t *testing.T) {
	c := NewComparator(18)

	result := c.Compare([]entity.VendorProduct{offer("Out", 10, inv(0), "")}, 100, entity.CurrencyCAD)

	assert.Nil(t, result.Best())
	assert.Equal(t, "-", result.BestVendor())
}

func TestComparator_Compare_ZeroCostNotBest(t *testing.T) {
	c := NewComparator(18)
	offers := []entity.VendorProduct{
		offer("Free", 0, inv(9), ""),
		offer("Paid", 50, inv(9), ""),
	}

	result := c.Compare(offers, 100, entity.CurrencyCAD)

	assert.True(t, math.IsNaN(result.Evaluations[0].Margin))
	assert.False(t, result.Evaluations[0].Healthy)
	assert.Equal(t, "Paid", result.BestVendor())
}

func TestComparator_Compare_TieKeepsFirst(t *testing.T) {
	c := NewComparator(18)
	offers := []entity.VendorProduct{
		offer("First", 50, inv(1), ""),
		offer("Second", 50, inv(1), ""),
	}

	result := c.Compare(offers, 100, entity.CurrencyCAD)

	assert.Equal(t, "First", result.BestVendor())
}

func TestComparator_Healthy(t *testing.T) {
	c := NewComparator(18)

	assert.False(t, c.Healthy(18))
	assert.True(t, c.Healthy(18.01))
	assert.False(t, c.Healthy(math.NaN()))
	assert.InDelta(t, DefaultHealthyMarginPercent, NewComparator(0).Threshold(), 1e-9)
}

func TestDiscountedPrice(t *testing.T) {
	assert.InDelta(t, 85.0, DiscountedPrice(100, "BF 15%OFF"), 1e-9)
	assert.InDelta(t, 70.0, DiscountedPrice(100, "30%off"), 1e-9)
	assert.InDelta(t, 100.0, DiscountedPrice(100, ""), 1e-9)
}

func TestComparator_CompareProduct_UsesSalePrice(t *testing.T) {
	c := NewComparator(18)
	product := &entity.Product{
		SKU:             "BST-56820-35",
		Price:           entity.NewAmount(200),
		BlackFridaySale: "20%off",
		VendorProducts:  []entity.VendorProduct{offer("Meyer", 100, inv(1), "")},
	}

	result := c.CompareProduct(product, entity.CurrencyCAD)

	assert.InDelta(t, 160.0, result.SellingPrice, 1e-9)
	assert.InDelta(t, 60.0, result.Evaluations[0].Margin, 1e-9)
}
