package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order reads, edits and purchase orders
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC, logger: params.Logger}
}

// SelectSupplierRequest represents the request body for recording a chosen vendor offer
type SelectSupplierRequest struct {
	OrderID  int    `json:"orderId" validate:"required,gt=0"`
	Supplier string `json:"supplier" validate:"required"`
	Cost     string `json:"cost" validate:"required,decimal"`
}

// Selection converts the request, the cost is already validated
func (r SelectSupplierRequest) Selection() entity.SupplierSelection {
	cost, _ := decimal.NewFromString(strings.TrimSpace(r.Cost))

	return entity.SupplierSelection{Supplier: strings.TrimSpace(r.Supplier), Cost: cost}
}

// OrderListResponse is one page of orders with their derived columns
type OrderListResponse struct {
	Orders     []usecase.OrderView `json:"orders"`
	Pagination entity.Pagination   `json:"pagination"`
}

// ListOrders returns one page of orders. Only non-empty filters reach the backend.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	var filter entity.OrderFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order filter")
	}

	var page, limit int
	if err := echo.QueryParamsBinder(c).Int("page", &page).Int("limit", &limit).BindError(); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "page and limit must be numbers")
	}

	result, err := h.orderUC.ListOrders(c.Request().Context(), filter, page, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OrderListResponse{
		Orders:     h.views(result.Orders),
		Pagination: result.Pagination,
	})
}

func (h *OrderHandler) views(orders []entity.Order) []usecase.OrderView {
	views := make([]usecase.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, h.orderUC.View(&orders[i]))
	}

	return views
}

// GetMetrics returns the full-dataset order counters
func (h *OrderHandler) GetMetrics(c echo.Context) error {
	metrics, err := h.orderUC.Metrics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, metrics)
}

// UpdateOrder edits order fields
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	var orderID int
	if err := echo.PathParamsBinder(c).MustInt("id", &orderID).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var update entity.OrderUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order update")
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), orderID, update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// DeleteOrder removes an order
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	var orderID int
	if err := echo.PathParamsBinder(c).MustInt("id", &orderID).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), orderID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateLineItem edits a line item
func (h *OrderHandler) UpdateLineItem(c echo.Context) error {
	var itemID int
	if err := echo.PathParamsBinder(c).MustInt("id", &itemID).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	var update entity.OrderItemUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item update")
	}

	item, err := h.orderUC.UpdateLineItem(c.Request().Context(), itemID, update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// SelectSupplier records the vendor offer chosen for a line item
func (h *OrderHandler) SelectSupplier(c echo.Context) error {
	var itemID int
	if err := echo.PathParamsBinder(c).MustInt("id", &itemID).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	var req SelectSupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier selection")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	item, err := h.orderUC.SelectSupplier(c.Request().Context(), req.OrderID, itemID, req.Selection())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// CreatePurchaseOrder creates the purchase order and its line. An unmapped vendor is a 400.
func (h *OrderHandler) CreatePurchaseOrder(c echo.Context) error {
	var req usecase.PurchaseOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.orderUC.CreatePurchaseOrder(c.Request().Context(), req.Request())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// SeedOrders re-syncs orders from the storefront
func (h *OrderHandler) SeedOrders(c echo.Context) error {
	if err := h.orderUC.SeedOrders(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "seeded"})
}

// ListVendors returns the configured vendors with the ones purchase orders accept
func (h *OrderHandler) ListVendors(c echo.Context) error {
	vendors, err := h.orderUC.ListVendors(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, VendorsResponse{
		Vendors:              vendors,
		PurchaseOrderVendors: entity.PurchaseOrderVendors(),
	})
}

// VendorsResponse lists vendors and the purchase order vendor table
type VendorsResponse struct {
	Vendors              []entity.Vendor              `json:"vendors"`
	PurchaseOrderVendors []entity.PurchaseOrderVendor `json:"purchaseOrderVendors"`
}
