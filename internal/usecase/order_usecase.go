package usecase

import (
	"context"

	"backoffice/internal/domain/draft"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/pricing"
)

// ItemView is an order line with its vendor comparison.
type ItemView struct {
	Item        entity.OrderItem   `json:"item"`
	Comparison  pricing.Comparison `json:"comparison"`
	VendorLinks map[string]string  `json:"vendorLinks"`
	Heavy       bool               `json:"heavy"`
}

// OrderView is an order with the derived grid columns.
type OrderView struct {
	Order             entity.Order    `json:"order"`
	POStatus          entity.POStatus `json:"poStatus"`
	POLabel           string          `json:"poLabel"`
	StatusLabel       string          `json:"statusLabel"`
	AdminURL          string          `json:"adminUrl,omitempty"`
	CustomerName      string          `json:"customerName"`
	USOrder           bool            `json:"usOrder"`
	RemoteRegion      bool            `json:"remoteRegion"`
	FraudWarning      bool            `json:"fraudWarning"`
	PaymentLabel      string          `json:"paymentLabel"`
	HeavyItem         bool            `json:"heavyItem"`
	TotalSelectedCost string          `json:"totalSelectedCost"`
	Items             []ItemView      `json:"items"`
}

// PurchaseOrderInput is a purchase order request from the console.
// VendorName defaults to the item's selected supplier.
type PurchaseOrderInput struct {
	VendorName string  `json:"vendorName"`
	OrderID    int     `json:"orderId" validate:"required,gt=0"`
	ItemID     int     `json:"itemId" validate:"gte=0"`
	UserID     int     `json:"userId" validate:"gte=0"`
	SKU        string  `json:"sku" validate:"required"`
	Quantity   float64 `json:"quantity" validate:"gt=0"`
	VendorCost string  `json:"vendorCost" validate:"omitempty,decimal"`
}

// Request converts the input into a purchase order request.
func (in PurchaseOrderInput) Request() entity.PurchaseOrderRequest {
	return entity.PurchaseOrderRequest{
		VendorName: in.VendorName,
		OrderID:    in.OrderID,
		UserID:     in.UserID,
		Item: entity.OrderItem{
			ID:                   in.ItemID,
			OrderID:              in.OrderID,
			SKU:                  in.SKU,
			QtyOrdered:           entity.NewAmount(in.Quantity),
			SelectedSupplier:     in.VendorName,
			SelectedSupplierCost: entity.ParseAmount(in.VendorCost),
		},
	}
}

// OrderUsecase defines order reads and mutations.
type OrderUsecase interface {
	ListOrders(ctx context.Context, filter entity.OrderFilter, page, limit int) (*entity.OrderPage, error)
	Metrics(ctx context.Context) (*entity.OrderMetrics, error)
	ListVendors(ctx context.Context) ([]entity.Vendor, error)

	UpdateOrder(ctx context.Context, orderID int, update entity.OrderUpdate) (*entity.Order, error)
	DeleteOrder(ctx context.Context, orderID int) error
	UpdateLineItem(ctx context.Context, itemID int, update entity.OrderItemUpdate) (*entity.OrderItem, error)

	// SelectSupplier records the vendor offer chosen for a line item.
	SelectSupplier(ctx context.Context, orderID, itemID int, selection entity.SupplierSelection) (*entity.OrderItem, error)

	// CreatePurchaseOrder creates the purchase order and then its line item.
	// An unmapped vendor name is a validation failure.
	CreatePurchaseOrder(ctx context.Context, request entity.PurchaseOrderRequest) (*entity.PurchaseOrderResult, error)

	// SeedOrders re-syncs orders from the storefront.
	SeedOrders(ctx context.Context) error

	// View derives the grid columns of an order.
	View(order *entity.Order) OrderView

	// Drafts prepares supplier ETA requests for the whole order and for each line.
	Drafts(ctx context.Context, order *entity.Order) (*OrderDrafts, error)
}

// OrderDrafts are the ETA request drafts of one order.
type OrderDrafts struct {
	Order draft.Draft         `json:"order"`
	Items map[int]draft.Draft `json:"items"`
}

// GridState is what the order grid currently shows.
type GridState struct {
	Filter     entity.OrderFilter   `json:"filter"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	Orders     []entity.Order       `json:"orders"`
	Pagination entity.Pagination    `json:"pagination"`
	Metrics    *entity.OrderMetrics `json:"metrics,omitempty"`
	Loading    bool                 `json:"loading"`
	LastError  string               `json:"lastError,omitempty"`
}

// OrderGridController is the stateful order grid driven by explicit triggers.
type OrderGridController interface {
	SetFilter(ctx context.Context, field entity.FilterField, value string) (GridState, error)
	ClearFilters(ctx context.Context) (GridState, error)
	ChangePage(ctx context.Context, page, limit int) (GridState, error)
	Reload(ctx context.Context) (GridState, error)
	RefreshMetrics(ctx context.Context) (GridState, error)

	UpdateOrder(ctx context.Context, orderID int, update entity.OrderUpdate) (GridState, error)
	UpdateLineItem(ctx context.Context, itemID int, update entity.OrderItemUpdate) (GridState, error)
	SelectSupplier(ctx context.Context, orderID, itemID int, selection entity.SupplierSelection) (GridState, error)
	Seed(ctx context.Context) (GridState, error)

	// CreatePurchaseOrder creates a purchase order for a loaded line item from its selected supplier.
	CreatePurchaseOrder(ctx context.Context, orderID, itemID int) (*entity.PurchaseOrderResult, error)

	Snapshot() GridState
}
