package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConsoleHandlerParams holds dependencies for ConsoleHandler, injected by Fx.
type ConsoleHandlerParams struct {
	fx.In

	AuthUC   usecase.AuthUsecase
	OrderUC  usecase.OrderUsecase
	Grid     usecase.OrderGridController
	Searcher usecase.CatalogSearcher
	Logger   *slog.Logger
}

// ConsoleHandler serves the console views and drives the stateful order grid and searcher
type ConsoleHandler struct {
	authUC   usecase.AuthUsecase
	orderUC  usecase.OrderUsecase
	grid     usecase.OrderGridController
	searcher usecase.CatalogSearcher
	logger   *slog.Logger
}

// NewConsoleHandler is the constructor for ConsoleHandler
func NewConsoleHandler(params ConsoleHandlerParams) *ConsoleHandler {
	return &ConsoleHandler{
		authUC:   params.AuthUC,
		orderUC:  params.OrderUC,
		grid:     params.Grid,
		searcher: params.Searcher,
		logger:   params.Logger,
	}
}

// GridView is the order grid with the derived columns of every loaded order
type GridView struct {
	usecase.GridState
	Views []usecase.OrderView `json:"views"`
}

// FilterRequest sets one grid filter
type FilterRequest struct {
	Field string `json:"field" validate:"required,oneof=filterMode status search poStatus region vendor dateFilter"`
	Value string `json:"value"`
}

// PageRequest moves the grid or the search to another page
type PageRequest struct {
	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=0"`
}

// SearchRequest is one keystroke burst of the catalog search box
type SearchRequest struct {
	Query string `json:"query"`
}

// LoginView is what the login route needs to render
type LoginView struct {
	Session  entity.SessionInfo `json:"session"`
	Redirect string             `json:"redirect"`
}

// DashboardPOView groups the orders still waiting on purchase orders
type DashboardPOView struct {
	Metrics *entity.OrderMetrics `json:"metrics"`
	NotSet  OrderListResponse    `json:"notSet"`
	Partial OrderListResponse    `json:"partial"`
}

// LoginPage is public. A signed-in operator is sent on to the redirect target.
func (h *ConsoleHandler) LoginPage(c echo.Context) error {
	info, err := h.authUC.CheckStatus(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	target := redirectTarget(c.QueryParam("redirect"))
	if info.State == entity.SessionAuthenticated || info.IsPublic() {
		if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML) {
			return c.Redirect(http.StatusFound, target)
		}
	}

	return response.Success(c, http.StatusOK, LoginView{Session: info, Redirect: target})
}

// OrdersPage serves "/" and "/orders". The grid loads on first view.
func (h *ConsoleHandler) OrdersPage(c echo.Context) error {
	state := h.grid.Snapshot()
	if state.Pagination.Page == 0 && !state.Loading && state.LastError == "" {
		var err error
		if state, err = h.grid.Reload(c.Request().Context()); err != nil {
			return response.HandleAppError(c, err)
		}
		if state, err = h.grid.RefreshMetrics(c.Request().Context()); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	return response.Success(c, http.StatusOK, h.gridView(state))
}

// SuppliersPage lists the vendors and the purchase order vendor table
func (h *ConsoleHandler) SuppliersPage(c echo.Context) error {
	vendors, err := h.orderUC.ListVendors(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, VendorsResponse{
		Vendors:              vendors,
		PurchaseOrderVendors: entity.PurchaseOrderVendors(),
	})
}

// DashboardPage shows the full-dataset order counters
func (h *ConsoleHandler) DashboardPage(c echo.Context) error {
	state, err := h.grid.RefreshMetrics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state.Metrics)
}

// DashboardPOPage shows the orders without a complete purchase order
func (h *ConsoleHandler) DashboardPOPage(c echo.Context) error {
	ctx := c.Request().Context()

	metrics, err := h.orderUC.Metrics(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view := DashboardPOView{Metrics: metrics}
	for status, target := range map[entity.POStatus]*OrderListResponse{
		entity.POStatusNotSet:  &view.NotSet,
		entity.POStatusPartial: &view.Partial,
	} {
		filter := entity.DefaultOrderFilter().With(entity.FilterFieldPOStatus, string(status))
		page, err := h.orderUC.ListOrders(ctx, filter, 1, 0)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		target.Orders = h.views(page.Orders)
		target.Pagination = page.Pagination
	}

	return response.Success(c, http.StatusOK, view)
}

// POPage is the manual purchase order form context
func (h *ConsoleHandler) POPage(c echo.Context) error {
	return h.SuppliersPage(c)
}

// ItemsPage shows the catalog search state
func (h *ConsoleHandler) ItemsPage(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.searcher.Snapshot())
}

// GridSnapshot returns the grid without loading
func (h *ConsoleHandler) GridSnapshot(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.gridView(h.grid.Snapshot()))
}

// SetFilter changes one filter and reloads. Switching filterMode clears search and vendor.
func (h *ConsoleHandler) SetFilter(c echo.Context) error {
	var req FilterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	return h.respondGrid(c)(h.grid.SetFilter(c.Request().Context(), entity.FilterField(req.Field), req.Value))
}

// ClearFilters resets every filter and reloads
func (h *ConsoleHandler) ClearFilters(c echo.Context) error {
	return h.respondGrid(c)(h.grid.ClearFilters(c.Request().Context()))
}

// ChangePage loads another grid page
func (h *ConsoleHandler) ChangePage(c echo.Context) error {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	return h.respondGrid(c)(h.grid.ChangePage(c.Request().Context(), req.Page, req.Limit))
}

// Reload reloads the current grid page
func (h *ConsoleHandler) Reload(c echo.Context) error {
	return h.respondGrid(c)(h.grid.Reload(c.Request().Context()))
}

// RefreshMetrics reloads the order counters
func (h *ConsoleHandler) RefreshMetrics(c echo.Context) error {
	return h.respondGrid(c)(h.grid.RefreshMetrics(c.Request().Context()))
}

// GridUpdateOrder edits an order and reconciles it in the grid
func (h *ConsoleHandler) GridUpdateOrder(c echo.Context) error {
	var orderID int
	if err := echo.PathParamsBinder(c).MustInt("id", &orderID).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var update entity.OrderUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order update")
	}

	return h.respondGrid(c)(h.grid.UpdateOrder(c.Request().Context(), orderID, update))
}

// GridUpdateLineItem edits a line item and reconciles it in the grid
func (h *ConsoleHandler) GridUpdateLineItem(c echo.Context) error {
	var itemID int
	if err := echo.PathParamsBinder(c).MustInt("id", &itemID).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	var update entity.OrderItemUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item update")
	}

	return h.respondGrid(c)(h.grid.UpdateLineItem(c.Request().Context(), itemID, update))
}

// GridSelectSupplier records a vendor choice and reconciles the line in the grid
func (h *ConsoleHandler) GridSelectSupplier(c echo.Context) error {
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

	return h.respondGrid(c)(h.grid.SelectSupplier(c.Request().Context(), req.OrderID, itemID, req.Selection()))
}

// Seed re-syncs orders, then reloads the grid and the counters
func (h *ConsoleHandler) Seed(c echo.Context) error {
	return h.respondGrid(c)(h.grid.Seed(c.Request().Context()))
}

// GridCreatePurchaseOrder raises a purchase order for a loaded line from its selected supplier
func (h *ConsoleHandler) GridCreatePurchaseOrder(c echo.Context) error {
	var orderID, itemID int
	if err := echo.PathParamsBinder(c).MustInt("id", &orderID).MustInt("itemId", &itemID).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order or item ID")
	}

	result, err := h.grid.CreatePurchaseOrder(c.Request().Context(), orderID, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// Drafts prepares supplier ETA requests for a loaded order
func (h *ConsoleHandler) Drafts(c echo.Context) error {
	var orderID int
	if err := echo.PathParamsBinder(c).MustInt("id", &orderID).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	state := h.grid.Snapshot()
	for i := range state.Orders {
		if state.Orders[i].EntityID != orderID {
			continue
		}

		drafts, err := h.orderUC.Drafts(c.Request().Context(), &state.Orders[i])
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, drafts)
	}

	return response.HandleAppError(c, domainerrors.ErrNotFound.WithDetails("order is not loaded"))
}

// SearchSnapshot returns the search state
func (h *ConsoleHandler) SearchSnapshot(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.searcher.Snapshot())
}

// Search records a keystroke burst. The request is dispatched after the debounce window.
func (h *ConsoleHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search")
	}

	h.searcher.Submit(req.Query)

	return response.Success(c, http.StatusAccepted, h.searcher.Snapshot())
}

// SearchPage loads another page of the current query right away
func (h *ConsoleHandler) SearchPage(c echo.Context) error {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	h.searcher.Page(req.Page, req.Limit)

	return response.Success(c, http.StatusAccepted, h.searcher.Snapshot())
}

// respondGrid renders a grid transition. A failed mutation still reports through the error path.
func (h *ConsoleHandler) respondGrid(c echo.Context) func(usecase.GridState, error) error {
	return func(state usecase.GridState, err error) error {
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, h.gridView(state))
	}
}

func (h *ConsoleHandler) gridView(state usecase.GridState) GridView {
	return GridView{GridState: state, Views: h.views(state.Orders)}
}

func (h *ConsoleHandler) views(orders []entity.Order) []usecase.OrderView {
	views := make([]usecase.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, h.orderUC.View(&orders[i]))
	}

	return views
}
