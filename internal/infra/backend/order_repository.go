package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/pkg/errors"
)

type orderRepository struct {
	client *Client
}

// NewOrderRepository creates the backend-backed OrderRepository.
func NewOrderRepository(client *Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

type orderListBody struct {
	Data       []entity.Order     `json:"data"`
	Pagination *entity.Pagination `json:"pagination"`
}

func (r *orderRepository) List(ctx context.Context, query entity.OrderQuery) (*entity.OrderPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(max(query.Page, 1)))
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	for key, value := range query.Filter.Params() {
		params.Set(key, value)
	}

	var raw json.RawMessage
	if err := r.client.get(ctx, "/api/orders", params, &raw); err != nil {
		return nil, err
	}

	return decodeOrderPage(raw, query)
}

// decodeOrderPage accepts {data, pagination} and the legacy bare array.
func decodeOrderPage(raw json.RawMessage, query entity.OrderQuery) (*entity.OrderPage, error) {
	trimmed := bytes.TrimSpace(raw)
	page := &entity.OrderPage{Orders: []entity.Order{}}

	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
	case trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &page.Orders); err != nil {
			return nil, errors.Wrap(err, "failed to decode order list")
		}
	default:
		var body orderListBody
		if err := json.Unmarshal(trimmed, &body); err != nil {
			return nil, errors.Wrap(err, "failed to decode order page")
		}
		if body.Data != nil {
			page.Orders = body.Data
		}
		if body.Pagination != nil {
			page.Pagination = *body.Pagination

			return page, nil
		}
	}

	page.Pagination = singlePage(len(page.Orders), query.Page, query.Limit)

	return page, nil
}

func (r *orderRepository) Metrics(ctx context.Context) (*entity.OrderMetrics, error) {
	var metrics entity.OrderMetrics
	if err := r.client.get(ctx, "/api/orders/metrics", nil, &metrics); err != nil {
		return nil, err
	}

	return &metrics, nil
}

func (r *orderRepository) Update(ctx context.Context, orderID int, update entity.OrderUpdate) (*entity.Order, error) {
	var order entity.Order
	if err := r.client.post(ctx, "/api/orders/"+strconv.Itoa(orderID)+"/edit", update, &order); err != nil {
		return nil, err
	}
	if order.EntityID == 0 {
		return nil, nil
	}

	return &order, nil
}

func (r *orderRepository) Delete(ctx context.Context, orderID int) error {
	return r.client.post(ctx, "/api/orders/"+strconv.Itoa(orderID)+"/delete", nil, nil)
}

func (r *orderRepository) UpdateItem(ctx context.Context, itemID int, update entity.OrderItemUpdate) (*entity.OrderItem, error) {
	var payload struct {
		Data *entity.OrderItem `json:"data"`
	}
	if err := r.client.post(ctx, "/order_products/"+strconv.Itoa(itemID)+"/edit", update, &payload); err != nil {
		return nil, err
	}

	return payload.Data, nil
}

type selectionBody struct {
	SelectedSupplierCost string `json:"selected_supplier_cost"`
	SelectedSupplier     string `json:"selected_supplier"`
}

func (r *orderRepository) SelectSupplier(ctx context.Context, itemID int, selection entity.SupplierSelection) (*entity.OrderItem, error) {
	body := selectionBody{
		SelectedSupplierCost: selection.Cost.String(),
		SelectedSupplier:     selection.Supplier,
	}

	var item entity.OrderItem
	if err := r.client.post(ctx, "/order_products/"+strconv.Itoa(itemID)+"/edit/selected_supplier", body, &item); err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}

	return &item, nil
}

func (r *orderRepository) Seed(ctx context.Context) error {
	return r.client.get(ctx, "/api/seed-orders", nil, nil)
}

type vendorRepository struct {
	client *Client
}

// NewVendorRepository creates the backend-backed VendorRepository.
func NewVendorRepository(client *Client) repository.VendorRepository {
	return &vendorRepository{client: client}
}

func (r *vendorRepository) List(ctx context.Context) ([]entity.Vendor, error) {
	var vendors []entity.Vendor
	if err := r.client.get(ctx, "/api/vendors", nil, &vendors); err != nil {
		return nil, err
	}

	return vendors, nil
}

type purchaseOrderRepository struct {
	client *Client
}

// NewPurchaseOrderRepository creates the backend-backed PurchaseOrderRepository.
func NewPurchaseOrderRepository(client *Client) repository.PurchaseOrderRepository {
	return &purchaseOrderRepository{client: client}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, po entity.PurchaseOrder) (*entity.PurchaseOrder, error) {
	var created entity.PurchaseOrder
	if err := r.client.post(ctx, "/api/purchase_orders", po, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *purchaseOrderRepository) CreateLineItem(ctx context.Context, line entity.PurchaseOrderLineItem) (*entity.PurchaseOrderLineItem, error) {
	var created entity.PurchaseOrderLineItem
	if err := r.client.post(ctx, "/purchaseOrderLineItem", line, &created); err != nil {
		return nil, err
	}

	return &created, nil
}
