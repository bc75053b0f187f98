package impl

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	mockService "backoffice/internal/mocks/service"
	mockUsecase "backoffice/internal/mocks/usecase"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type exportServiceFixtures struct {
	service   usecase.ExportUsecase
	catalog   *mockUsecase.MockCatalogUsecase
	builder   *mockService.MockWorkbookBuilder
	store     *mockService.MockExportStore
	publisher *mockService.MockEventPublisher
}

func createTestExportService(t *testing.T, withStore bool) exportServiceFixtures {
	f := exportServiceFixtures{
		catalog:   mockUsecase.NewMockCatalogUsecase(t),
		builder:   mockService.NewMockWorkbookBuilder(t),
		publisher: mockService.NewMockEventPublisher(t),
	}
	params := ExportServiceParams{
		Catalog:   f.catalog,
		Builder:   f.builder,
		Publisher: f.publisher,
		Logger:    testLogger(),
	}
	if withStore {
		f.store = mockService.NewMockExportStore(t)
		params.Store = f.store
	}

	svc := NewExportService(params).(*exportService)
	svc.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }
	f.service = svc

	return f
}

func TestExportService_BrandExport_StoresCopy(t *testing.T) {
	fx := createTestExportService(t, true)
	ctx := context.Background()

	products := []entity.Product{{SKU: "A"}, {SKU: "B"}}
	fx.catalog.EXPECT().BrandReport(ctx, "Rugged Ridge").Return(&entity.BrandReport{Brand: "Rugged Ridge", Products: products}, nil)
	fx.builder.EXPECT().BrandWorkbook(products).Return([]byte("xlsx"), nil)
	fx.store.EXPECT().
		Save(ctx, "exports/brand/20260304T050607Z-rugged-ridge-ProductData.xlsx", []byte("xlsx"), xlsxContentType).
		Return("exports/brand/20260304T050607Z-rugged-ridge-ProductData.xlsx", nil)
	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.MatchedBy(func(e *service.AuditEvent) bool {
			return e.Action == service.AuditExportCreated &&
				e.Attributes["kind"] == "brand" &&
				e.Attributes["rows"] == "2" &&
				e.Attributes["brand"] == "Rugged Ridge" &&
				e.Attributes["key"] != ""
		})).
		Return(nil)

	file, err := fx.service.BrandExport(ctx, "Rugged Ridge")
	require.NoError(t, err)
	assert.Equal(t, "ProductData.xlsx", file.Name)
	assert.Equal(t, xlsxContentType, file.ContentType)
	assert.Equal(t, []byte("xlsx"), file.Data)
	assert.Equal(t, "exports/brand/20260304T050607Z-rugged-ridge-ProductData.xlsx", file.StoredKey)
}

func TestExportService_CatalogExport_StoreFailureStillReturnsFile(t *testing.T) {
	fx := createTestExportService(t, true)
	ctx := context.Background()

	fx.catalog.EXPECT().AllProducts(ctx).Return([]entity.Product{{SKU: "A"}}, nil)
	fx.builder.EXPECT().CatalogWorkbook(mock.Anything).Return([]byte("xlsx"), nil)
	fx.store.EXPECT().Save(ctx, "exports/catalog/20260304T050607Z-Catalog.xlsx", mock.Anything, mock.Anything).Return("", errors.New("bucket gone"))
	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.MatchedBy(func(e *service.AuditEvent) bool {
			_, hasKey := e.Attributes["key"]

			return e.Attributes["kind"] == "catalog" && !hasKey
		})).
		Return(nil)

	file, err := fx.service.CatalogExport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Catalog.xlsx", file.Name)
	assert.Empty(t, file.StoredKey)
}

func TestExportService_WithoutStore(t *testing.T) {
	fx := createTestExportService(t, false)
	ctx := context.Background()

	fx.catalog.EXPECT().AllProducts(ctx).Return(nil, nil)
	fx.builder.EXPECT().CatalogWorkbook([]entity.Product(nil)).Return([]byte("xlsx"), nil)
	fx.publisher.EXPECT().PublishAuditEvent(ctx, mock.Anything).Return(nil)

	file, err := fx.service.CatalogExport(ctx)
	require.NoError(t, err)
	assert.Empty(t, file.StoredKey)
}

func TestExportService_Failures(t *testing.T) {
	t.Run("builder failure", func(t *testing.T) {
		fx := createTestExportService(t, false)
		ctx := context.Background()

		fx.catalog.EXPECT().BrandReport(ctx, "Bestop").Return(&entity.BrandReport{Brand: "Bestop"}, nil)
		fx.builder.EXPECT().BrandWorkbook(mock.Anything).Return(nil, errors.New("disk full"))

		_, err := fx.service.BrandExport(ctx, "Bestop")
		assert.ErrorIs(t, err, domainerrors.ErrExportFailed)
	})

	t.Run("catalog failure", func(t *testing.T) {
		fx := createTestExportService(t, false)
		ctx := context.Background()

		fx.catalog.EXPECT().AllProducts(ctx).Return(nil, domainerrors.ErrSessionExpired)

		_, err := fx.service.CatalogExport(ctx)
		assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
	})
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Rugged Ridge":    "rugged-ridge",
		"  Dirty Dog 4x4": "dirty-dog-4x4",
		"A&B -- C":        "a-b-c",
		"":                "",
		"***":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, slug(in), in)
	}
}
