package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice/config"
	"backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/response"
	"backoffice/internal/delivery/api/router"
	"backoffice/internal/delivery/api/router/handler"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"
	mockUsecase "backoffice/internal/mocks/usecase"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testMocks struct {
	auth     *mockUsecase.MockAuthUsecase
	catalog  *mockUsecase.MockCatalogUsecase
	orders   *mockUsecase.MockOrderUsecase
	exports  *mockUsecase.MockExportUsecase
	grid     *mockUsecase.MockOrderGridController
	searcher *mockUsecase.MockCatalogSearcher
}

func newTestEcho(t *testing.T) (*echo.Echo, *testMocks) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1M"

	m := &testMocks{
		auth:     mockUsecase.NewMockAuthUsecase(t),
		catalog:  mockUsecase.NewMockCatalogUsecase(t),
		orders:   mockUsecase.NewMockOrderUsecase(t),
		exports:  mockUsecase.NewMockExportUsecase(t),
		grid:     mockUsecase.NewMockOrderGridController(t),
		searcher: mockUsecase.NewMockCatalogSearcher(t),
	}

	e := NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: m.auth, Logger: logger}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: m.catalog, Logger: logger}),
		OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: m.orders, Logger: logger}),
		ExportHandler:  handler.NewExportHandler(handler.ExportHandlerParams{ExportUC: m.exports, Logger: logger}),
		ConsoleHandler: handler.NewConsoleHandler(handler.ConsoleHandlerParams{
			AuthUC:   m.auth,
			OrderUC:  m.orders,
			Grid:     m.grid,
			Searcher: m.searcher,
			Logger:   logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: m.auth, Logger: logger}),
	}).RegisterRoutes(e)

	return e, m
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestServer_Health(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_SessionGate(t *testing.T) {
	t.Run("json route answers 401", func(t *testing.T) {
		e, m := newTestEcho(t)
		m.auth.EXPECT().Current().Return(entity.SessionInfo{State: entity.SessionUnauthenticated}).Once()

		rec := serve(e, http.MethodGet, "/api/orders", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "/login?redirect=%2Fapi%2Forders", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, "NOT_AUTHENTICATED", errorCode(t, rec))
	})

	t.Run("view redirects", func(t *testing.T) {
		e, m := newTestEcho(t)
		m.auth.EXPECT().Current().Return(entity.SessionInfo{State: entity.SessionUnauthenticated}).Once()

		rec := serve(e, http.MethodGet, "/orders", "")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login?redirect=%2Forders", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("expired session mid request", func(t *testing.T) {
		e, m := newTestEcho(t)
		m.auth.EXPECT().Current().Return(entity.SessionInfo{State: entity.SessionAuthenticated, User: &entity.User{Username: "jdoe"}}).Once()
		m.orders.EXPECT().Metrics(mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrSessionExpired)).Once()

		rec := serve(e, http.MethodGet, "/api/orders/metrics", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "SESSION_EXPIRED", errorCode(t, rec))
	})
}

func TestServer_SelectSupplier(t *testing.T) {
	t.Run("invalid cost", func(t *testing.T) {
		e, m := newTestEcho(t)
		m.auth.EXPECT().Current().Return(entity.SessionInfo{State: entity.SessionDisabled}).Once()

		rec := serve(e, http.MethodPost, "/api/order_products/55/edit/selected_supplier",
			`{"orderId":1001,"supplier":"Keystone","cost":"cheap"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("records the selection", func(t *testing.T) {
		e, m := newTestEcho(t)
		m.auth.EXPECT().Current().Return(entity.SessionInfo{State: entity.SessionDisabled}).Once()
		m.orders.EXPECT().
			SelectSupplier(mock.Anything, 1001, 55, mock.MatchedBy(func(s entity.SupplierSelection) bool {
				return s.Supplier == "Keystone" && s.Cost.String() == "710.5"
			})).
			Return(&entity.OrderItem{ID: 55, SelectedSupplier: "Keystone"}, nil).Once()

		rec := serve(e, http.MethodPost, "/api/order_products/55/edit/selected_supplier",
			`{"orderId":1001,"supplier":" Keystone ","cost":"710.50"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_CreatePurchaseOrderUnmappedVendor(t *testing.T) {
	e, m := newTestEcho(t)
	m.auth.EXPECT().Current().Return(entity.SessionInfo{State: entity.SessionDisabled}).Once()
	m.orders.EXPECT().
		CreatePurchaseOrder(mock.Anything, mock.MatchedBy(func(r entity.PurchaseOrderRequest) bool {
			return r.VendorName == "Nowhere Parts" && r.OrderID == 1001
		})).
		Return(nil, errors.WithStack(domainerrors.ErrUnmappedVendor)).Once()

	rec := serve(e, http.MethodPost, "/api/purchase_orders",
		`{"vendorName":"Nowhere Parts","orderId":1001,"sku":"BST-56820-35","quantity":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNMAPPED_VENDOR", errorCode(t, rec))
}

func TestServer_BrandExport(t *testing.T) {
	e, m := newTestEcho(t)
	m.auth.EXPECT().Current().Return(entity.SessionInfo{State: entity.SessionDisabled}).Once()
	m.exports.EXPECT().BrandExport(mock.Anything, "Smittybilt").Return(&usecase.ExportFile{
		Name:        "Smittybilt-ProductData.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("xlsx"),
		StoredKey:   "exports/brand/smittybilt.xlsx",
	}, nil).Once()

	rec := serve(e, http.MethodGet, "/api/exports/brand/Smittybilt", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="Smittybilt-ProductData.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "exports/brand/smittybilt.xlsx", rec.Header().Get("X-Export-Key"))
	assert.Equal(t, "xlsx", rec.Body.String())
}
