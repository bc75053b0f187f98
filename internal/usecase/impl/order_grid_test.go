package impl

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	mockUsecase "backoffice/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func gridOrders() []entity.Order {
	return []entity.Order{
		{EntityID: 1, IncrementID: "1001", CustomerEmail: "a@example.com", Items: []entity.OrderItem{{ID: 11, OrderID: 1, SKU: "A"}}},
		{EntityID: 2, IncrementID: "1002", Items: []entity.OrderItem{{ID: 21, OrderID: 2, SKU: "B"}, {ID: 22, OrderID: 2, SKU: "C"}}},
	}
}

func loadedGrid(t *testing.T) (*OrderGrid, *mockUsecase.MockOrderUsecase) {
	orders := mockUsecase.NewMockOrderUsecase(t)
	grid := NewOrderGrid(orders, 25, testLogger())

	orders.EXPECT().
		ListOrders(mock.Anything, entity.DefaultOrderFilter(), 1, 25).
		Return(&entity.OrderPage{Orders: gridOrders(), Pagination: entity.Pagination{Page: 1, Limit: 25, Total: 2, TotalPages: 1}}, nil).
		Once()
	_, err := grid.Reload(context.Background())
	require.NoError(t, err)

	return grid, orders
}

func TestOrderGrid_SetFilterResetsPage(t *testing.T) {
	grid, orders := loadedGrid(t)
	ctx := context.Background()

	orders.EXPECT().ListOrders(ctx, entity.DefaultOrderFilter(), 3, 25).Return(&entity.OrderPage{}, nil).Once()
	state, err := grid.ChangePage(ctx, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Page)
	assert.NotNil(t, state.Orders)

	want := entity.DefaultOrderFilter()
	want.Status = "pending"
	orders.EXPECT().ListOrders(ctx, want, 1, 25).Return(&entity.OrderPage{Orders: gridOrders()[:1]}, nil).Once()

	state, err = grid.SetFilter(ctx, entity.FilterFieldStatus, "pending")
	require.NoError(t, err)
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, "pending", state.Filter.Status)
	assert.Len(t, state.Orders, 1)

	_, err = grid.SetFilter(ctx, entity.FilterField("color"), "red")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderGrid_SameFilterStillReloads(t *testing.T) {
	grid, orders := loadedGrid(t)
	ctx := context.Background()

	want := entity.DefaultOrderFilter()
	want.Region = "Quebec"
	orders.EXPECT().ListOrders(ctx, want, 1, 25).Return(&entity.OrderPage{}, nil).Times(2)

	_, err := grid.SetFilter(ctx, entity.FilterFieldRegion, "Quebec")
	require.NoError(t, err)
	_, err = grid.SetFilter(ctx, entity.FilterFieldRegion, "Quebec")
	require.NoError(t, err)
}

func TestOrderGrid_LoadFailureEmptiesGrid(t *testing.T) {
	grid, orders := loadedGrid(t)
	ctx := context.Background()

	orders.EXPECT().ListOrders(ctx, mock.Anything, 1, 25).Return(nil, errors.New("backend down")).Once()
	state, err := grid.Reload(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Orders)
	assert.Equal(t, "backend down", state.LastError)
	assert.False(t, state.Loading)

	orders.EXPECT().ListOrders(ctx, mock.Anything, 1, 25).Return(nil, domainerrors.ErrSessionExpired).Once()
	_, err = grid.Reload(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestOrderGrid_LastLoadWins(t *testing.T) {
	grid, orders := loadedGrid(t)
	ctx := context.Background()

	release := make(chan struct{})
	slowDone := make(chan struct{})
	orders.EXPECT().
		ListOrders(ctx, mock.Anything, 2, 25).
		RunAndReturn(func(context.Context, entity.OrderFilter, int, int) (*entity.OrderPage, error) {
			<-release

			return &entity.OrderPage{Orders: []entity.Order{{EntityID: 200}}}, nil
		}).
		Once()
	orders.EXPECT().
		ListOrders(ctx, mock.Anything, 3, 25).
		Return(&entity.OrderPage{Orders: []entity.Order{{EntityID: 300}}}, nil).
		Once()

	go func() {
		defer close(slowDone)
		_, _ = grid.ChangePage(ctx, 2, 0)
	}()
	require.Eventually(t, func() bool { return grid.Snapshot().Loading && grid.Snapshot().Page == 2 }, time.Second, 5*time.Millisecond)

	state, err := grid.ChangePage(ctx, 3, 0)
	require.NoError(t, err)
	require.Len(t, state.Orders, 1)
	assert.Equal(t, 300, state.Orders[0].EntityID)

	close(release)
	<-slowDone

	snapshot := grid.Snapshot()
	require.Len(t, snapshot.Orders, 1)
	assert.Equal(t, 300, snapshot.Orders[0].EntityID)
}

func TestOrderGrid_UpdateOrderReconcilesById(t *testing.T) {
	grid, orders := loadedGrid(t)
	ctx := context.Background()

	email := "new@example.com"
	update := entity.OrderUpdate{CustomerEmail: &email}
	orders.EXPECT().
		UpdateOrder(ctx, 1, update).
		Return(&entity.Order{EntityID: 1, IncrementID: "1001", CustomerEmail: email}, nil)

	state, err := grid.UpdateOrder(ctx, 1, update)
	require.NoError(t, err)
	require.Len(t, state.Orders, 2)
	assert.Equal(t, email, state.Orders[0].CustomerEmail)
	// The update response carries no items, the loaded ones are kept
	require.Len(t, state.Orders[0].Items, 1)
	assert.Equal(t, "A", state.Orders[0].Items[0].SKU)
}

func TestOrderGrid_UpdateOrderFallsBackToReload(t *testing.T) {
	grid, orders := loadedGrid(t)
	ctx := context.Background()

	status := "complete"
	update := entity.OrderUpdate{Status: &status}
	orders.EXPECT().UpdateOrder(ctx, 9, update).Return(&entity.Order{EntityID: 9}, nil)
	orders.EXPECT().ListOrders(ctx, mock.Anything, 1, 25).Return(&entity.OrderPage{Orders: gridOrders()}, nil).Once()

	_, err := grid.UpdateOrder(ctx, 9, update)
	require.NoError(t, err)
}

func TestOrderGrid_SelectSupplierPatchesCopy(t *testing.T) {
	grid, orders := loadedGrid(t)
	ctx := context.Background()

	before := grid.Snapshot()
	selection := entity.SupplierSelection{Supplier: "Meyer", Cost: decimal.RequireFromString("42.10")}
	orders.EXPECT().
		SelectSupplier(ctx, 2, 22, selection).
		Return(&entity.OrderItem{ID: 22}, nil)

	state, err := grid.SelectSupplier(ctx, 2, 22, selection)
	require.NoError(t, err)

	item, ok := state.Orders[1].ItemByID(22)
	require.True(t, ok)
	assert.Equal(t, "Meyer", item.SelectedSupplier)
	assert.Equal(t, "42.1", item.SelectedSupplierCost.String())

	// An earlier snapshot is not mutated
	old, ok := before.Orders[1].ItemByID(22)
	require.True(t, ok)
	assert.Empty(t, old.SelectedSupplier)
}

func TestOrderGrid_UpdateLineItemKeepsProduct(t *testing.T) {
	orders := mockUsecase.NewMockOrderUsecase(t)
	grid := NewOrderGrid(orders, 25, testLogger())
	ctx := context.Background()

	loaded := gridOrders()
	loaded[0].Items[0].Product = &entity.Product{SKU: "A", BrandName: "Bestop"}
	orders.EXPECT().ListOrders(ctx, mock.Anything, 1, 25).Return(&entity.OrderPage{Orders: loaded}, nil).Once()
	_, err := grid.Reload(ctx)
	require.NoError(t, err)

	name := "Renamed"
	update := entity.OrderItemUpdate{Name: &name}
	orders.EXPECT().UpdateLineItem(ctx, 11, update).Return(&entity.OrderItem{ID: 11, OrderID: 1, SKU: "A", Name: name}, nil)

	state, err := grid.UpdateLineItem(ctx, 11, update)
	require.NoError(t, err)
	item, ok := state.Orders[0].ItemByID(11)
	require.True(t, ok)
	assert.Equal(t, name, item.Name)
	require.NotNil(t, item.Product)
	assert.Equal(t, "Bestop", item.Product.BrandName)
}

func TestOrderGrid_SeedReloadsAndRefreshesMetrics(t *testing.T) {
	grid, orders := loadedGrid(t)
	ctx := context.Background()

	orders.EXPECT().SeedOrders(ctx).Return(nil)
	orders.EXPECT().ListOrders(ctx, mock.Anything, 1, 25).Return(&entity.OrderPage{Orders: gridOrders()}, nil).Once()
	orders.EXPECT().Metrics(ctx).Return(&entity.OrderMetrics{NotSetCount: 4, TotalCount: 10}, nil)

	state, err := grid.Seed(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.Metrics)
	assert.Equal(t, 4, state.Metrics.NotSetCount)
}

func TestOrderGrid_CreatePurchaseOrderFromSelectedSupplier(t *testing.T) {
	grid, orders := loadedGrid(t)
	ctx := context.Background()

	_, err := grid.CreatePurchaseOrder(ctx, 1, 99)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	selection := entity.SupplierSelection{Supplier: "Keystone", Cost: decimal.RequireFromString("10")}
	orders.EXPECT().SelectSupplier(ctx, 1, 11, selection).Return(&entity.OrderItem{ID: 11}, nil)
	_, err = grid.SelectSupplier(ctx, 1, 11, selection)
	require.NoError(t, err)

	orders.EXPECT().
		CreatePurchaseOrder(ctx, mock.MatchedBy(func(r entity.PurchaseOrderRequest) bool {
			return r.VendorName == "Keystone" && r.OrderID == 1 && r.Item.ID == 11 && r.Item.SKU == "A"
		})).
		Return(&entity.PurchaseOrderResult{PurchaseOrder: entity.PurchaseOrder{ID: 5}}, nil)

	result, err := grid.CreatePurchaseOrder(ctx, 1, 11)
	require.NoError(t, err)
	assert.Equal(t, 5, result.PurchaseOrder.ID)
}
