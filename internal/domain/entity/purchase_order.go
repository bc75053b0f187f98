package entity

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// POStatus is the derived purchase-order state of an order.
type POStatus string

const (
	POStatusNotSet  POStatus = "not_set"
	POStatusPartial POStatus = "partial"
	POStatusSet     POStatus = "set"
)

const poNotSetSentinel = "not set"

// ParsePOStatus classifies a purchase-order reference. An empty reference counts as not set.
func ParsePOStatus(ref string) POStatus {
	normalized := strings.ToLower(strings.TrimSpace(ref))
	switch {
	case normalized == "" || normalized == poNotSetSentinel:
		return POStatusNotSet
	case strings.Contains(normalized, poNotSetSentinel):
		return POStatusPartial
	default:
		return POStatusSet
	}
}

// Label returns the operator-facing purchase-order label.
func (s POStatus) Label() string {
	switch s {
	case POStatusNotSet:
		return "NOT SET"
	case POStatusPartial:
		return "PARTIAL"
	default:
		return "SET"
	}
}

// PurchaseOrder is the backend record created for a vendor and an order.
type PurchaseOrder struct {
	ID        int    `json:"id"`
	VendorID  int    `json:"vendor_id"`
	UserID    int    `json:"user_id"`
	OrderID   int    `json:"order_id"`
	CreatedAt string `json:"created_at,omitempty"`
}

// PurchaseOrderLineItem is one line of a purchase order.
type PurchaseOrderLineItem struct {
	ID                int                 `json:"id,omitempty"`
	PurchaseOrderID   int                 `json:"purchaseOrderId"`
	VendorProductID   *int                `json:"vendorProductId"`
	QuantityPurchased float64             `json:"quantityPurchased"`
	VendorCost        decimal.NullDecimal `json:"vendorCost"`
	ProductSKU        string              `json:"product_sku"`
}

// PurchaseOrderRequest asks for a purchase order for one order line.
type PurchaseOrderRequest struct {
	VendorName string
	OrderID    int
	UserID     int
	Item       OrderItem
}

// PurchaseOrderResult is the created purchase order with its line.
type PurchaseOrderResult struct {
	PurchaseOrder PurchaseOrder         `json:"purchaseOrder"`
	LineItem      PurchaseOrderLineItem `json:"lineItem"`
}

//nolint:gochecknoglobals
var purchaseOrderVendorIDs = map[string]int{
	"keystone":  1,
	"meyer":     2,
	"omix":      3,
	"quadratec": 4,
}

// PurchaseOrderVendorID maps a vendor name to the backend vendor id used on purchase orders.
// Names match case-insensitively; unknown vendors report false.
func PurchaseOrderVendorID(name string) (int, bool) {
	id, ok := purchaseOrderVendorIDs[strings.ToLower(strings.TrimSpace(name))]

	return id, ok
}

// PurchaseOrderVendor is a vendor that purchase orders can be raised against.
type PurchaseOrderVendor struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// PurchaseOrderVendors lists the mapped vendors ordered by id.
func PurchaseOrderVendors() []PurchaseOrderVendor {
	vendors := make([]PurchaseOrderVendor, 0, len(purchaseOrderVendorIDs))
	for name, id := range purchaseOrderVendorIDs {
		vendors = append(vendors, PurchaseOrderVendor{Name: name, ID: id})
	}
	slices.SortFunc(vendors, func(a, b PurchaseOrderVendor) int { return a.ID - b.ID })

	return vendors
}
