package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OrderStatus is the storefront order status.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusComplete       OrderStatus = "complete"
	OrderStatusCanceled       OrderStatus = "canceled"
	OrderStatusOnHold         OrderStatus = "holded"
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusClosed         OrderStatus = "closed"
)

// Label returns the operator-facing status label.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusProcessing:
		return "Processing"
	case OrderStatusPending:
		return "Pending"
	case OrderStatusPendingPayment:
		return "Pending Payment"
	case OrderStatusCanceled:
		return "Canceled"
	case OrderStatusComplete:
		return "Complete"
	case OrderStatusClosed:
		return "Closed"
	case OrderStatusOnHold:
		return "On Hold"
	default:
		return string(s)
	}
}

const (
	fraudScoreLimit        = 10
	quebecHighValueLimit   = 300
	heavyItemWeightPounds  = 50
	paymentLabelMaxLength  = 12
	usOrderIncrementPrefix = "3"
)

//nolint:gochecknoglobals
var remoteRegions = map[string]struct{}{
	"new brunswick":             {},
	"nova scotia":               {},
	"prince edward island":      {},
	"newfoundland & labrador":   {},
	"newfoundland and labrador": {},
	"newfoundland":              {},
	"labrador":                  {},
	"yukon":                     {},
	"yukon territory":           {},
	"northwest territories":     {},
	"nunavut":                   {},
}

// Order is a storefront order with its line items.
type Order struct {
	EntityID          int         `json:"entity_id"`
	IncrementID       string      `json:"increment_id"`
	Status            OrderStatus `json:"status"`
	CreatedAt         string      `json:"created_at"`
	CustomerEmail     string      `json:"customer_email"`
	CustomerFirstName string      `json:"customer_firstname"`
	CustomerLastName  string      `json:"customer_lastname"`
	GrandTotal        Amount      `json:"grand_total"`
	TotalQtyOrdered   Amount      `json:"total_qty_ordered"`
	ShippingAmount    Amount      `json:"shipping_amount"`
	BaseTotalDue      Amount      `json:"base_total_due"`
	CurrencyCode      string      `json:"order_currency_code"`
	Region            string      `json:"region"`
	PaymentMethod     string      `json:"payment_method"`
	MethodTitle       string      `json:"method_title"`
	FraudScore        Amount      `json:"weltpixel_fraud_score"`
	CustomPONumber    string      `json:"custom_po_number"`

	ShippingDescription string `json:"shipping_description"`
	ShippingFirstName   string `json:"shipping_firstname"`
	ShippingLastName    string `json:"shipping_lastname"`
	ShippingCompany     string `json:"shipping_company"`
	ShippingStreet1     string `json:"shipping_street1"`
	ShippingStreet2     string `json:"shipping_street2"`
	ShippingStreet3     string `json:"shipping_street3"`
	ShippingCity        string `json:"shipping_city"`
	ShippingRegion      string `json:"shipping_region"`
	ShippingPostcode    string `json:"shipping_postcode"`
	ShippingCountryID   string `json:"shipping_country_id"`
	ShippingTelephone   string `json:"shipping_telephone"`

	Items []OrderItem `json:"items"`
}

// Currency returns the order currency, CAD when unset.
func (o *Order) Currency() Currency {
	return ParseCurrency(o.CurrencyCode)
}

// POStatus classifies the purchase-order reference.
func (o *Order) POStatus() POStatus {
	return ParsePOStatus(o.CustomPONumber)
}

// IsUSOrder reports whether the order came from the US storefront.
func (o *Order) IsUSOrder() bool {
	return strings.HasPrefix(o.IncrementID, usOrderIncrementPrefix)
}

// IsRemoteRegion reports whether the order ships to an Atlantic province or a territory.
func (o *Order) IsRemoteRegion() bool {
	_, ok := remoteRegions[strings.ToLower(strings.TrimSpace(o.Region))]

	return ok
}

// IsPayPal reports whether the order was paid through PayPal.
func (o *Order) IsPayPal() bool {
	return strings.Contains(strings.ToLower(o.paymentSource()), "paypal")
}

// FraudWarning reports a risky order: a high fraud score on a non-PayPal payment,
// or a high-value Quebec order.
func (o *Order) FraudWarning() bool {
	if o.IsPayPal() {
		return false
	}

	highScore := o.FraudScore.Valid && o.FraudScore.Value.GreaterThan(decimal.NewFromInt(fraudScoreLimit))
	quebecHighValue := strings.EqualFold(strings.TrimSpace(o.Region), "quebec") &&
		o.GrandTotal.Valid && o.GrandTotal.Value.GreaterThan(decimal.NewFromInt(quebecHighValueLimit))

	return highScore || quebecHighValue
}

// PaymentLabel returns a short payment method label.
func (o *Order) PaymentLabel() string {
	method := o.MethodTitle
	if method == "" {
		method = o.PaymentMethod
	}
	if method == "" {
		return ""
	}

	lower := strings.ToLower(method)
	switch {
	case strings.Contains(lower, "paypal"):
		return "PayPal"
	case strings.Contains(lower, "credit"), strings.Contains(lower, "card"):
		return "Credit Card"
	case strings.Contains(lower, "check"), strings.Contains(lower, "cheque"):
		return "Check"
	}

	runes := []rune(method)
	if len(runes) > paymentLabelMaxLength {
		return string(runes[:paymentLabelMaxLength]) + "..."
	}

	return method
}

// CustomerShortName renders "First L." for the grid.
func (o *Order) CustomerShortName() string {
	last := []rune(o.CustomerLastName)
	if len(last) == 0 {
		return o.CustomerFirstName
	}

	return strings.TrimSpace(o.CustomerFirstName + " " + string(last[0]) + ".")
}

// HasHeavyItem reports whether any line item weighs at least 50 lb.
func (o *Order) HasHeavyItem() bool {
	for i := range o.Items {
		if o.Items[i].IsHeavy() {
			return true
		}
	}

	return false
}

// TotalSelectedCost sums quantity times selected supplier cost over all items.
// Items without a selected cost contribute nothing.
func (o *Order) TotalSelectedCost() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].SelectedCostTotal())
	}

	return total
}

// TotalPrice sums quantity times unit price over all items.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		item := &o.Items[i]
		if item.Price.Valid && item.QtyOrdered.Valid {
			total = total.Add(item.Price.Value.Mul(item.QtyOrdered.Value))
		}
	}

	return total
}

func (o *Order) paymentSource() string {
	if o.PaymentMethod != "" {
		return o.PaymentMethod
	}

	return o.MethodTitle
}

// ItemByID returns the line item with the given id.
func (o *Order) ItemByID(id int) (*OrderItem, bool) {
	for i := range o.Items {
		if o.Items[i].ID == id {
			return &o.Items[i], true
		}
	}

	return nil, false
}

// OrderItem is an order line.
type OrderItem struct {
	ID                   int      `json:"id"`
	OrderID              int      `json:"order_id"`
	SKU                  string   `json:"sku"`
	Name                 string   `json:"name"`
	QtyOrdered           Amount   `json:"qty_ordered"`
	Price                Amount   `json:"price"`
	Weight               Amount   `json:"weight"`
	SelectedSupplier     string   `json:"selected_supplier"`
	SelectedSupplierCost Amount   `json:"selected_supplier_cost"`
	Product              *Product `json:"product,omitempty"`
}

// ItemWeight returns the product weight, falling back to the line weight.
func (i *OrderItem) ItemWeight() Amount {
	if i.Product != nil && i.Product.Weight.Valid {
		return i.Product.Weight
	}

	return i.Weight
}

// IsHeavy reports whether the item weighs at least 50 lb.
func (i *OrderItem) IsHeavy() bool {
	w := i.ItemWeight()

	return w.Valid && w.Value.GreaterThanOrEqual(decimal.NewFromInt(heavyItemWeightPounds))
}

// SelectedCostTotal is quantity times the selected supplier cost.
func (i *OrderItem) SelectedCostTotal() decimal.Decimal {
	if !i.SelectedSupplierCost.Valid || !i.QtyOrdered.Valid {
		return decimal.Zero
	}

	return i.SelectedSupplierCost.Value.Mul(i.QtyOrdered.Value)
}

// Offers returns the vendor offers attached to the item's product.
func (i *OrderItem) Offers() []VendorProduct {
	if i.Product == nil {
		return nil
	}

	return i.Product.VendorProducts
}

// Brand returns the product brand if known.
func (i *OrderItem) Brand() string {
	if i.Product == nil {
		return ""
	}

	return strings.TrimSpace(i.Product.BrandName)
}

// OrderPage is one page of orders.
type OrderPage struct {
	Orders     []Order    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// OrderMetrics are full-dataset aggregates computed by the backend.
type OrderMetrics struct {
	NotSetCount    int `json:"notSetCount"`
	TodayCount     int `json:"todayCount"`
	YesterdayCount int `json:"yesterdayCount"`
	Last7DaysCount int `json:"last7DaysCount"`
	PMNotSetCount  int `json:"pmNotSetCount"`
	GWCount        int `json:"gwCount"`
	TotalCount     int `json:"totalCount"`
}

// OrderUpdate is a partial order edit. Only non-nil fields are sent.
type OrderUpdate struct {
	CustomerEmail     *string `json:"customer_email,omitempty"`
	CustomerFirstName *string `json:"customer_firstname,omitempty"`
	CustomerLastName  *string `json:"customer_lastname,omitempty"`
	Status            *string `json:"status,omitempty"`
	CustomPONumber    *string `json:"custom_po_number,omitempty"`
}

// OrderItemUpdate is a partial line item edit. Only non-nil fields are sent.
type OrderItemUpdate struct {
	SKU        *string  `json:"sku,omitempty"`
	Name       *string  `json:"name,omitempty"`
	QtyOrdered *float64 `json:"qty_ordered,omitempty"`
	Price      *float64 `json:"price,omitempty"`
}

// SupplierSelection records which vendor offer was picked for a line item.
type SupplierSelection struct {
	Supplier string
	Cost     decimal.Decimal
}
