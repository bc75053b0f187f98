package impl

import (
	"context"
	"log/slog"
	"sync"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
)

// OrderGrid holds the loaded order page and reloads it on explicit triggers.
// Load failures leave an empty grid; an expired session is still returned to the caller.
type OrderGrid struct {
	orders usecase.OrderUsecase
	logger *slog.Logger

	mu    sync.Mutex
	seq   uint64
	state usecase.GridState
}

// NewOrderGrid creates an empty grid with the cleared filter.
func NewOrderGrid(orders usecase.OrderUsecase, pageSize int, logger *slog.Logger) *OrderGrid {
	return &OrderGrid{
		orders: orders,
		logger: logger,
		state: usecase.GridState{
			Filter: entity.DefaultOrderFilter(),
			Page:   1,
			Limit:  pageSize,
			Orders: []entity.Order{},
		},
	}
}

// NewConsoleOrderGrid creates the process-wide order grid of the console.
func NewConsoleOrderGrid(cfg *config.Config, orders usecase.OrderUsecase, logger *slog.Logger) usecase.OrderGridController {
	return NewOrderGrid(orders, cfg.Orders.PageSize, logger)
}

func (g *OrderGrid) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

func (g *OrderGrid) SetFilter(ctx context.Context, field entity.FilterField, value string) (usecase.GridState, error) {
	if !entity.IsValidFilterField(string(field)) {
		return g.Snapshot(), domainerrors.ErrValidationFailed.WithDetails("unknown filter " + string(field))
	}

	g.mu.Lock()
	g.state.Filter = g.state.Filter.With(field, value)
	g.state.Page = 1
	g.mu.Unlock()

	return g.load(ctx)
}

func (g *OrderGrid) ClearFilters(ctx context.Context) (usecase.GridState, error) {
	g.mu.Lock()
	g.state.Filter = entity.DefaultOrderFilter()
	g.state.Page = 1
	g.mu.Unlock()

	return g.load(ctx)
}

func (g *OrderGrid) ChangePage(ctx context.Context, page, limit int) (usecase.GridState, error) {
	g.mu.Lock()
	g.state.Page = max(page, 1)
	if limit > 0 {
		g.state.Limit = limit
	}
	g.mu.Unlock()

	return g.load(ctx)
}

func (g *OrderGrid) Reload(ctx context.Context) (usecase.GridState, error) {
	return g.load(ctx)
}

// load applies only the answer to the most recent load.
func (g *OrderGrid) load(ctx context.Context) (usecase.GridState, error) {
	g.mu.Lock()
	g.seq++
	seq := g.seq
	filter, page, limit := g.state.Filter, g.state.Page, g.state.Limit
	g.state.Loading = true
	g.mu.Unlock()

	result, err := g.orders.ListOrders(ctx, filter, page, limit)

	g.mu.Lock()
	defer g.mu.Unlock()

	if seq != g.seq {
		return g.snapshotLocked(), nil
	}

	g.state.Loading = false
	if err != nil {
		g.log(ctx).Error("Failed to load orders", slog.Int("page", page), slog.Any("error", err))
		g.state.Orders = []entity.Order{}
		g.state.Pagination = entity.Pagination{Page: page, Limit: limit}
		g.state.LastError = err.Error()
		if errors.Is(err, domainerrors.ErrSessionExpired) {
			return g.snapshotLocked(), err
		}

		return g.snapshotLocked(), nil
	}

	g.state.Orders = result.Orders
	if g.state.Orders == nil {
		g.state.Orders = []entity.Order{}
	}
	g.state.Pagination = result.Pagination
	g.state.LastError = ""

	return g.snapshotLocked(), nil
}

// RefreshMetrics fetches the full-dataset counters, independent of the loaded page.
func (g *OrderGrid) RefreshMetrics(ctx context.Context) (usecase.GridState, error) {
	metrics, err := g.orders.Metrics(ctx)
	if err != nil {
		g.log(ctx).Error("Failed to load order metrics", slog.Any("error", err))
		if errors.Is(err, domainerrors.ErrSessionExpired) {
			return g.Snapshot(), err
		}

		return g.Snapshot(), nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.Metrics = metrics

	return g.snapshotLocked(), nil
}

func (g *OrderGrid) UpdateOrder(ctx context.Context, orderID int, update entity.OrderUpdate) (usecase.GridState, error) {
	updated, err := g.orders.UpdateOrder(ctx, orderID, update)
	if err != nil {
		return g.Snapshot(), err
	}

	if updated != nil && g.replaceOrder(updated) {
		return g.Snapshot(), nil
	}

	return g.load(ctx)
}

func (g *OrderGrid) replaceOrder(updated *entity.Order) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.state.Orders {
		if g.state.Orders[i].EntityID != updated.EntityID {
			continue
		}
		next := *updated
		if next.Items == nil {
			next.Items = g.state.Orders[i].Items
		}
		g.state.Orders[i] = next

		return true
	}

	return false
}

func (g *OrderGrid) UpdateLineItem(ctx context.Context, itemID int, update entity.OrderItemUpdate) (usecase.GridState, error) {
	updated, err := g.orders.UpdateLineItem(ctx, itemID, update)
	if err != nil {
		return g.Snapshot(), err
	}

	if updated != nil && g.patchItem(itemID, func(item *entity.OrderItem) {
		product := item.Product
		*item = *updated
		if item.Product == nil {
			item.Product = product
		}
	}) {
		return g.Snapshot(), nil
	}

	return g.load(ctx)
}

func (g *OrderGrid) SelectSupplier(ctx context.Context, orderID, itemID int, selection entity.SupplierSelection) (usecase.GridState, error) {
	if _, err := g.orders.SelectSupplier(ctx, orderID, itemID, selection); err != nil {
		return g.Snapshot(), err
	}

	if g.patchItem(itemID, func(item *entity.OrderItem) {
		item.SelectedSupplier = selection.Supplier
		item.SelectedSupplierCost = entity.Amount{Value: selection.Cost, Valid: true}
	}) {
		return g.Snapshot(), nil
	}

	return g.load(ctx)
}

// patchItem applies fn to the loaded line item with the given id.
// Items are copied first since snapshots share the backing arrays.
func (g *OrderGrid) patchItem(itemID int, fn func(item *entity.OrderItem)) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.state.Orders {
		order := &g.state.Orders[i]
		if _, ok := order.ItemByID(itemID); !ok {
			continue
		}

		items := make([]entity.OrderItem, len(order.Items))
		copy(items, order.Items)
		order.Items = items

		item, _ := order.ItemByID(itemID)
		fn(item)

		return true
	}

	return false
}

// Seed re-syncs orders, then reloads the page and the counters.
func (g *OrderGrid) Seed(ctx context.Context) (usecase.GridState, error) {
	if err := g.orders.SeedOrders(ctx); err != nil {
		return g.Snapshot(), err
	}

	if _, err := g.load(ctx); err != nil {
		return g.Snapshot(), err
	}

	return g.RefreshMetrics(ctx)
}

func (g *OrderGrid) CreatePurchaseOrder(ctx context.Context, orderID, itemID int) (*entity.PurchaseOrderResult, error) {
	g.mu.Lock()
	var item *entity.OrderItem
	for i := range g.state.Orders {
		if g.state.Orders[i].EntityID != orderID {
			continue
		}
		if found, ok := g.state.Orders[i].ItemByID(itemID); ok {
			copied := *found
			item = &copied
		}

		break
	}
	g.mu.Unlock()

	if item == nil {
		return nil, domainerrors.ErrNotFound.WithDetails("order item is not loaded")
	}

	return g.orders.CreatePurchaseOrder(ctx, entity.PurchaseOrderRequest{
		VendorName: item.SelectedSupplier,
		OrderID:    orderID,
		Item:       *item,
	})
}

func (g *OrderGrid) Snapshot() usecase.GridState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshotLocked()
}

func (g *OrderGrid) snapshotLocked() usecase.GridState {
	state := g.state
	state.Orders = make([]entity.Order, len(g.state.Orders))
	copy(state.Orders, g.state.Orders)

	return state
}
