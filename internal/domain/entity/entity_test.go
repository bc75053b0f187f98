package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePOStatus(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want POStatus
	}{
		{name: "sentinel any case", in: "  Not Set ", want: POStatusNotSet},
		{name: "sentinel upper", in: "NOT SET", want: POStatusNotSet},
		{name: "empty", in: "", want: POStatusNotSet},
		{name: "contains sentinel", in: "PO-123 Not Set partially", want: POStatusPartial},
		{name: "set", in: "PO-456", want: POStatusSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParsePOStatus(tt.in))
		})
	}
}

func TestOrderFilter_With(t *testing.T) {
	base := OrderFilter{
		FilterMode: FilterModeOrder,
		Status:     "processing",
		Search:     "BST",
		POStatus:   "not_set",
		Region:     "Ontario",
		Vendor:     "Meyer",
		DateFilter: "today",
	}

	t.Run("mode switch clears search and vendor", func(t *testing.T) {
		got := base.With(FilterFieldMode, string(FilterModeItems))

		assert.Equal(t, FilterModeItems, got.FilterMode)
		assert.Empty(t, got.Search)
		assert.Empty(t, got.Vendor)
		assert.Equal(t, "processing", got.Status)
		assert.Equal(t, "not_set", got.POStatus)
		assert.Equal(t, "Ontario", got.Region)
		assert.Equal(t, "today", got.DateFilter)
	})

	t.Run("same mode keeps fields", func(t *testing.T) {
		got := base.With(FilterFieldMode, string(FilterModeOrder))

		assert.Equal(t, base, got)
	})

	t.Run("does not mutate receiver", func(t *testing.T) {
		_ = base.With(FilterFieldSearch, "other")

		assert.Equal(t, "BST", base.Search)
	})
}

func TestOrderFilter_Params(t *testing.T) {
	f := OrderFilter{FilterMode: FilterModeOrder, Status: "pending", Search: "  "}

	assert.Equal(t, map[string]string{"filterMode": "order", "status": "pending"}, f.Params())
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var v struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
		D Amount `json:"d"`
	}

	err := json.Unmarshal([]byte(`{"a": 12.5, "b": "7.25", "c": "", "d": null}`), &v)
	require.NoError(t, err)

	assert.True(t, v.A.Valid)
	assert.InDelta(t, 12.5, v.A.Float64(), 1e-9)
	assert.InDelta(t, 7.25, v.B.Float64(), 1e-9)
	assert.False(t, v.C.Valid)
	assert.False(t, v.D.Valid)
	assert.True(t, v.D.Float64() != v.D.Float64()) // NaN
}

func TestOrder_DerivedColumns(t *testing.T) {
	order := Order{
		IncrementID: "300012345",
		Region:      "Nova Scotia",
		MethodTitle: "Credit Card (Moneris)",
		FraudScore:  NewAmount(12),
		Items: []OrderItem{
			{ID: 1, QtyOrdered: NewAmount(2), SelectedSupplierCost: ParseAmount("10.10"), Price: NewAmount(20)},
			{ID: 2, QtyOrdered: NewAmount(1), Product: &Product{Weight: NewAmount(55)}},
		},
	}

	assert.True(t, order.IsUSOrder())
	assert.True(t, order.IsRemoteRegion())
	assert.True(t, order.FraudWarning())
	assert.Equal(t, "Credit Card", order.PaymentLabel())
	assert.True(t, order.HasHeavyItem())
	assert.Equal(t, "20.2", order.TotalSelectedCost().String())
	assert.Equal(t, "40", order.TotalPrice().String())

	item, ok := order.ItemByID(2)
	require.True(t, ok)
	assert.True(t, item.IsHeavy())
}

func TestOrder_FraudWarning(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		want  bool
	}{
		{name: "paypal high score", order: Order{PaymentMethod: "paypal_express", FraudScore: NewAmount(50)}, want: false},
		{name: "quebec high value", order: Order{Region: "Quebec", GrandTotal: NewAmount(300.01)}, want: true},
		{name: "quebec at limit", order: Order{Region: "quebec", GrandTotal: NewAmount(300)}, want: false},
		{name: "low score", order: Order{FraudScore: NewAmount(10)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.order.FraudWarning())
		})
	}
}

func TestOrder_PaymentLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "PayPal Express", want: "PayPal"},
		{in: "Check / Money order", want: "Check"},
		{in: "Cash On Delivery Service", want: "Cash On Deli..."},
		{in: "Bank", want: "Bank"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			o := Order{MethodTitle: tt.in}
			assert.Equal(t, tt.want, o.PaymentLabel())
		})
	}
}

func TestOrderStatus_Label(t *testing.T) {
	assert.Equal(t, "On Hold", OrderStatusOnHold.Label())
	assert.Equal(t, "Pending Payment", OrderStatusPendingPayment.Label())
	assert.Equal(t, "fraud", OrderStatus("fraud").Label())
}
