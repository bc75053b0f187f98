package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// OrderRepository defines order reads and edits.
type OrderRepository interface {
	List(ctx context.Context, query entity.OrderQuery) (*entity.OrderPage, error)
	Metrics(ctx context.Context) (*entity.OrderMetrics, error)
	Update(ctx context.Context, orderID int, update entity.OrderUpdate) (*entity.Order, error)
	Delete(ctx context.Context, orderID int) error
	UpdateItem(ctx context.Context, itemID int, update entity.OrderItemUpdate) (*entity.OrderItem, error)
	SelectSupplier(ctx context.Context, itemID int, selection entity.SupplierSelection) (*entity.OrderItem, error)
	Seed(ctx context.Context) error
}

// VendorRepository lists the configured vendors.
type VendorRepository interface {
	List(ctx context.Context) ([]entity.Vendor, error)
}

// PurchaseOrderRepository creates purchase orders and their lines.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po entity.PurchaseOrder) (*entity.PurchaseOrder, error)
	CreateLineItem(ctx context.Context, line entity.PurchaseOrderLineItem) (*entity.PurchaseOrderLineItem, error)
}
