package impl

import (
	"context"
	"net/http"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	mockRepo "backoffice/internal/mocks/repository"
	mockService "backoffice/internal/mocks/service"
	mockUsecase "backoffice/internal/mocks/usecase"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	poRepo    *mockRepo.MockPurchaseOrderRepository
	catalog   *mockUsecase.MockCatalogUsecase
	auth      *mockUsecase.MockAuthUsecase
	publisher *mockService.MockEventPublisher
}

func createTestOrderService(t *testing.T, publisher *mockService.MockEventPublisher) orderServiceFixtures {
	cfg := testConfig()
	cfg.Orders.AdminOrderURL = "https://admin.example.com/sales/order/view/order_id/"
	cfg.Orders.DefaultPurchaserID = 99

	f := orderServiceFixtures{
		orderRepo: mockRepo.NewMockOrderRepository(t),
		poRepo:    mockRepo.NewMockPurchaseOrderRepository(t),
		catalog:   mockUsecase.NewMockCatalogUsecase(t),
		auth:      mockUsecase.NewMockAuthUsecase(t),
		publisher: publisher,
	}
	f.service = NewOrderService(OrderServiceParams{
		Config:            cfg,
		OrderRepo:         f.orderRepo,
		VendorRepo:        mockRepo.NewMockVendorRepository(t),
		PurchaseOrderRepo: f.poRepo,
		Catalog:           f.catalog,
		Auth:              f.auth,
		Publisher:         publisher,
		Logger:            testLogger(),
	})

	return f
}

func TestOrderService_CreatePurchaseOrder_UnmappedVendor(t *testing.T) {
	fx := createTestOrderService(t, mockService.NewMockEventPublisher(t))

	_, err := fx.service.CreatePurchaseOrder(context.Background(), entity.PurchaseOrderRequest{
		VendorName: "Rough Country",
		OrderID:    12,
		Item:       entity.OrderItem{ID: 3, SKU: "BST-1"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnmappedVendor)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestOrderService_CreatePurchaseOrder_TwoSteps(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	fx := createTestOrderService(t, publisher)
	ctx := context.Background()

	item := entity.OrderItem{
		ID:         3,
		OrderID:    12,
		SKU:        "BST-56820-35",
		QtyOrdered: entity.NewAmount(2),
		Product: &entity.Product{
			SKU: "BST-56820-35",
			VendorProducts: []entity.VendorProduct{
				{ID: 41, VendorCost: entity.NewAmount(710.5), Vendor: entity.Vendor{Name: "Keystone"}},
				{ID: 42, VendorCost: entity.NewAmount(800), Vendor: entity.Vendor{Name: "Meyer"}},
			},
		},
	}

	fx.auth.EXPECT().Current().Return(entity.SessionInfo{
		State: entity.SessionAuthenticated,
		User:  &entity.User{ID: 7},
	})
	fx.poRepo.EXPECT().
		Create(ctx, entity.PurchaseOrder{VendorID: 1, UserID: 7, OrderID: 12}).
		Return(&entity.PurchaseOrder{ID: 500, VendorID: 1, UserID: 7, OrderID: 12}, nil)
	fx.poRepo.EXPECT().
		CreateLineItem(ctx, mock.MatchedBy(func(line entity.PurchaseOrderLineItem) bool {
			return line.PurchaseOrderID == 500 &&
				line.VendorProductID != nil && *line.VendorProductID == 41 &&
				line.QuantityPurchased == 2 &&
				line.VendorCost.Valid && line.VendorCost.Decimal.Equal(decimal.RequireFromString("710.5")) &&
				line.ProductSKU == "BST-56820-35"
		})).
		Return(&entity.PurchaseOrderLineItem{ID: 900, PurchaseOrderID: 500}, nil)
	publisher.EXPECT().
		PublishAuditEvent(ctx, mock.MatchedBy(func(e *service.AuditEvent) bool {
			return e.Action == service.AuditPurchaseOrderCreated && e.OrderID == 12 &&
				e.Attributes["purchase_order_id"] == "500" && e.Attributes["vendor"] == "keystone"
		})).
		Return(nil)

	result, err := fx.service.CreatePurchaseOrder(ctx, entity.PurchaseOrderRequest{
		VendorName: "keystone",
		OrderID:    12,
		Item:       item,
	})
	require.NoError(t, err)
	assert.Equal(t, 500, result.PurchaseOrder.ID)
	assert.Equal(t, 900, result.LineItem.ID)
}

func TestOrderService_CreatePurchaseOrder_LineItemFailure(t *testing.T) {
	fx := createTestOrderService(t, mockService.NewMockEventPublisher(t))
	ctx := context.Background()

	fx.auth.EXPECT().Current().Return(entity.SessionInfo{State: entity.SessionDisabled})
	fx.poRepo.EXPECT().
		Create(ctx, entity.PurchaseOrder{VendorID: 2, UserID: 99, OrderID: 12}).
		Return(&entity.PurchaseOrder{ID: 501}, nil)
	fx.poRepo.EXPECT().
		CreateLineItem(ctx, mock.Anything).
		Return(nil, errors.New("constraint violation"))

	_, err := fx.service.CreatePurchaseOrder(ctx, entity.PurchaseOrderRequest{
		OrderID: 12,
		Item:    entity.OrderItem{ID: 3, SKU: "BST-1", SelectedSupplier: "Meyer"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrPurchaseOrderFailed)
}

func TestOrderService_CreatePurchaseOrder_SessionExpiredPassesThrough(t *testing.T) {
	fx := createTestOrderService(t, mockService.NewMockEventPublisher(t))
	ctx := context.Background()

	fx.poRepo.EXPECT().Create(ctx, mock.Anything).Return(nil, domainerrors.ErrSessionExpired)

	_, err := fx.service.CreatePurchaseOrder(ctx, entity.PurchaseOrderRequest{
		VendorName: "Omix",
		OrderID:    12,
		UserID:     4,
		Item:       entity.OrderItem{SKU: "BST-1"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
	assert.NotErrorIs(t, err, domainerrors.ErrPurchaseOrderFailed)
}

func TestOrderService_SelectSupplier(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	fx := createTestOrderService(t, publisher)
	ctx := context.Background()

	selection := entity.SupplierSelection{Supplier: "Keystone", Cost: decimal.RequireFromString("710.50")}
	fx.orderRepo.EXPECT().
		SelectSupplier(ctx, 3, selection).
		Return(&entity.OrderItem{ID: 3, SelectedSupplier: "Keystone"}, nil)
	publisher.EXPECT().
		PublishAuditEvent(ctx, mock.MatchedBy(func(e *service.AuditEvent) bool {
			return e.Action == service.AuditSupplierSelected && e.ItemID == 3 && e.Attributes["cost"] == "710.5"
		})).
		Return(errors.New("pubsub down"))

	item, err := fx.service.SelectSupplier(ctx, 12, 3, entity.SupplierSelection{Supplier: " Keystone ", Cost: selection.Cost})
	require.NoError(t, err)
	assert.Equal(t, "Keystone", item.SelectedSupplier)

	_, err = fx.service.SelectSupplier(ctx, 12, 3, entity.SupplierSelection{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_ListOrders_Defaults(t *testing.T) {
	fx := createTestOrderService(t, mockService.NewMockEventPublisher(t))
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		List(ctx, entity.OrderQuery{Filter: entity.OrderFilter{FilterMode: entity.FilterModeOrder, Status: "pending"}, Page: 1, Limit: 25}).
		Return(&entity.OrderPage{Orders: []entity.Order{{EntityID: 1}}}, nil)

	result, err := fx.service.ListOrders(ctx, entity.OrderFilter{Status: "pending"}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, result.Orders, 1)
}

func TestOrderService_View(t *testing.T) {
	fx := createTestOrderService(t, mockService.NewMockEventPublisher(t))

	order := &entity.Order{
		EntityID:       77,
		IncrementID:    "100077",
		Status:         entity.OrderStatusPending,
		CustomPONumber: "KS-1 not set",
		Items: []entity.OrderItem{
			{ID: 1, SKU: "A", Price: entity.NewAmount(100), SelectedSupplierCost: entity.NewAmount(60), QtyOrdered: entity.NewAmount(2)},
		},
	}

	view := fx.service.View(order)
	assert.Equal(t, entity.POStatusPartial, view.POStatus)
	assert.Equal(t, "PARTIAL", view.POLabel)
	assert.Equal(t, "https://admin.example.com/sales/order/view/order_id/77", view.AdminURL)
	require.Len(t, view.Items, 1)
	assert.Equal(t, -1, view.Items[0].Comparison.BestIndex)
}

func TestOrderService_Drafts_ResolvesBrands(t *testing.T) {
	fx := createTestOrderService(t, mockService.NewMockEventPublisher(t))
	ctx := context.Background()

	order := &entity.Order{
		IncrementID:       "100077",
		CustomerFirstName: "Sam",
		Items: []entity.OrderItem{
			{ID: 1, SKU: "BST-56820-35", Name: "Trektop"},
			{ID: 2, SKU: "XX-1", Name: "Smittybilt Winch"},
		},
	}
	fx.catalog.EXPECT().Brand(ctx, "BST-56820-35").Return("Bestop", nil)
	fx.catalog.EXPECT().Brand(ctx, "XX-1").Return("", errors.New("boom"))

	drafts, err := fx.service.Drafts(ctx, order)
	require.NoError(t, err)
	require.Len(t, drafts.Items, 2)
	assert.Contains(t, drafts.Items[1].DropShipBody, "Bestop")
	assert.NotEmpty(t, drafts.Order.Subject)
	assert.Equal(t, "purchasing@example.com", drafts.Order.To)
}
