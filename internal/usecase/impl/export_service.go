package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"go.uber.org/fx"
)

const (
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	brandExportName   = "ProductData.xlsx"
	catalogExportName = "Catalog.xlsx"
)

// ExportServiceParams holds dependencies for the export service
type ExportServiceParams struct {
	fx.In

	Catalog   usecase.CatalogUsecase
	Builder   service.WorkbookBuilder
	Store     service.ExportStore `optional:"true"`
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

type exportService struct {
	catalog usecase.CatalogUsecase
	builder service.WorkbookBuilder
	store   service.ExportStore
	audit   *auditor
	logger  *slog.Logger
	now     func() time.Time
}

// NewExportService creates a new export service instance
func NewExportService(params ExportServiceParams) usecase.ExportUsecase {
	return &exportService{
		catalog: params.Catalog,
		builder: params.Builder,
		store:   params.Store,
		audit:   newAuditor(params.Publisher, params.Logger),
		logger:  params.Logger,
		now:     time.Now,
	}
}

func (s *exportService) BrandExport(ctx context.Context, brand string) (*usecase.ExportFile, error) {
	report, err := s.catalog.BrandReport(ctx, brand)
	if err != nil {
		return nil, err
	}

	data, err := s.builder.BrandWorkbook(report.Products)
	if err != nil {
		return nil, domainerrors.ErrExportFailed.WithDetails(err.Error())
	}

	return s.finish(ctx, "brand", report.Brand, brandExportName, data, len(report.Products))
}

func (s *exportService) CatalogExport(ctx context.Context) (*usecase.ExportFile, error) {
	products, err := s.catalog.AllProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	data, err := s.builder.CatalogWorkbook(products)
	if err != nil {
		return nil, domainerrors.ErrExportFailed.WithDetails(err.Error())
	}

	return s.finish(ctx, "catalog", "", catalogExportName, data, len(products))
}

// finish stores a copy when a bucket is configured. A storage failure is logged and the
// workbook is still returned.
func (s *exportService) finish(ctx context.Context, kind, brand, name string, data []byte, rows int) (*usecase.ExportFile, error) {
	file := &usecase.ExportFile{Name: name, ContentType: xlsxContentType, Data: data}
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if s.store != nil {
		key, err := s.store.Save(ctx, s.key(kind, brand, name), data, xlsxContentType)
		if err != nil {
			logger.Warn("Failed to store export", slog.String("kind", kind), slog.Any("error", err))
		} else {
			file.StoredKey = key
		}
	}

	logger.Info("Export created",
		slog.String("kind", kind),
		slog.Int("rows", rows),
		slog.Int("bytes", len(data)),
	)

	attributes := map[string]string{"kind": kind, "rows": itoa(rows)}
	if brand != "" {
		attributes["brand"] = brand
	}
	if file.StoredKey != "" {
		attributes["key"] = file.StoredKey
	}
	s.audit.record(ctx, service.AuditEvent{Action: service.AuditExportCreated, Attributes: attributes})

	return file, nil
}

// key is exports/<kind>/<timestamp>[-<brand>]-<name>.
func (s *exportService) key(kind, brand, name string) string {
	stamp := s.now().UTC().Format("20060102T150405Z")
	if brand = slug(brand); brand != "" {
		stamp += "-" + brand
	}

	return fmt.Sprintf("exports/%s/%s-%s", kind, stamp, name)
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case b.Len() > 0 && !strings.HasSuffix(b.String(), "-"):
			b.WriteByte('-')
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
