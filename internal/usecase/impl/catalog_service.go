package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/pricing"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/domain/vendorlink"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"go.uber.org/fx"
)

const (
	defaultBrandCacheTTL = 24 * time.Hour
	catalogWalkPageSize  = 500
	// catalogWalkMaxPages stops a walk over a backend that never reports its last page.
	catalogWalkMaxPages = 1000
)

// CatalogServiceParams holds dependencies for the catalog service
type CatalogServiceParams struct {
	fx.In

	Config      *config.Config
	ProductRepo repository.ProductRepository
	BrandCache  service.BrandCache
	Logger      *slog.Logger
}

type catalogService struct {
	productRepo repository.ProductRepository
	brandCache  service.BrandCache
	comparator  *pricing.Comparator
	brandTTL    time.Duration
	pageSize    int
	logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	ttl := defaultBrandCacheTTL
	if params.Config.Cache != nil && params.Config.Cache.TTL > 0 {
		ttl = params.Config.Cache.TTL
	}

	return &catalogService{
		productRepo: params.ProductRepo,
		brandCache:  params.BrandCache,
		comparator:  pricing.NewComparator(params.Config.Pricing.HealthyMarginPercent),
		brandTTL:    ttl,
		pageSize:    params.Config.Search.PageSize,
		logger:      params.Logger,
	}
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Search returns an empty page on backend failure. An expired session is still reported
// so the caller can send the operator to the login view.
func (s *catalogService) Search(ctx context.Context, query string, page, pageSize int) (*entity.ProductPage, error) {
	query = strings.TrimSpace(query)
	if query == "" || page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	result, err := s.productRepo.Search(ctx, entity.ProductQuery{Search: query, Page: page, Limit: pageSize})
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionExpired) {
			return nil, err
		}
		s.log(ctx).Error("Product search failed",
			slog.String("query", query),
			slog.Int("page", page),
			slog.Any("error", err),
		)

		return &entity.ProductPage{
			Items:      []entity.Product{},
			Pagination: entity.Pagination{Page: page, Limit: pageSize},
		}, nil
	}

	return result, nil
}

func (s *catalogService) Product(ctx context.Context, sku string) (*entity.Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sku is required")
	}

	product, err := s.productRepo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find product %s", sku)
	}
	if product == nil || product.SKU == "" {
		return nil, domainerrors.ErrNotFound.WithDetails("product " + sku)
	}

	return product, nil
}

func (s *catalogService) CompareProduct(ctx context.Context, sku string, currency entity.Currency) (*usecase.ProductComparison, error) {
	product, err := s.Product(ctx, sku)
	if err != nil {
		return nil, err
	}

	links := make(map[string]string, len(product.VendorProducts))
	for i := range product.VendorProducts {
		offer := &product.VendorProducts[i]
		if link := vendorlink.VendorLink(product, offer); link != "" {
			links[offer.VendorName()] = link
		}
	}

	competitors := make([]usecase.CompetitorView, 0, len(product.CompetitorProducts))
	for i := range product.CompetitorProducts {
		cp := &product.CompetitorProducts[i]
		competitors = append(competitors, usecase.CompetitorView{
			Name:  cp.Competitor.Name,
			Price: util.Finite(cp.CompetitorPrice.Float64()),
			Link:  vendorlink.CompetitorLink(product, cp.Competitor.Name),
		})
	}

	return &usecase.ProductComparison{
		Product:     product,
		Comparison:  s.comparator.CompareProduct(product, currency),
		VendorLinks: links,
		Competitors: competitors,
	}, nil
}

func (s *catalogService) SKUs(ctx context.Context) ([]entity.SKUEntry, error) {
	entries, err := s.productRepo.ListSKUs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skus")
	}

	return entries, nil
}

// Brand reads through the cache. Cache failures fall back to the backend.
func (s *catalogService) Brand(ctx context.Context, sku string) (string, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return "", nil
	}

	if s.brandCache != nil {
		brand, ok, err := s.brandCache.Get(ctx, sku)
		if err != nil {
			s.log(ctx).Warn("Brand cache read failed", slog.String("sku", sku), slog.Any("error", err))
		} else if ok {
			return brand, nil
		}
	}

	brand, err := s.productRepo.FindBrand(ctx, sku)
	if err != nil {
		if domainerrors.IsNotFound(err) {
			brand = ""
		} else {
			return "", errors.Wrapf(err, "failed to find brand of %s", sku)
		}
	}

	if s.brandCache != nil {
		if err := s.brandCache.Set(ctx, sku, brand, s.brandTTL); err != nil {
			s.log(ctx).Warn("Brand cache write failed", slog.String("sku", sku), slog.Any("error", err))
		}
	}

	return brand, nil
}

// BrandReport keeps the active products of the brand with a non-zero price.
func (s *catalogService) BrandReport(ctx context.Context, brand string) (*entity.BrandReport, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("brand is required")
	}

	candidates, err := s.walk(ctx, brand)
	if err != nil {
		return nil, err
	}

	report := &entity.BrandReport{Brand: brand, Products: []entity.Product{}}
	sum := 0.0
	report.MinPrice = math.Inf(1)
	report.MaxPrice = math.Inf(-1)
	for i := range candidates {
		p := &candidates[i]
		price := p.Price.Or(0)
		if !strings.EqualFold(strings.TrimSpace(p.BrandName), brand) || !p.IsActive() || price == 0 {
			continue
		}
		report.Products = append(report.Products, *p)
		sum += price
		report.MinPrice = math.Min(report.MinPrice, price)
		report.MaxPrice = math.Max(report.MaxPrice, price)
	}

	if len(report.Products) == 0 {
		report.MinPrice, report.MaxPrice = 0, 0

		return report, nil
	}
	report.AveragePrice = sum / float64(len(report.Products))

	return report, nil
}

func (s *catalogService) AllProducts(ctx context.Context) ([]entity.Product, error) {
	return s.walk(ctx, "")
}

// walk fetches every page of a search. Failures are returned, never swallowed.
func (s *catalogService) walk(ctx context.Context, query string) ([]entity.Product, error) {
	var products []entity.Product
	for page := 1; page <= catalogWalkMaxPages; page++ {
		result, err := s.productRepo.Search(ctx, entity.ProductQuery{Search: query, Page: page, Limit: catalogWalkPageSize})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fetch catalog page %d", page)
		}
		products = append(products, result.Items...)

		if len(result.Items) == 0 || page >= result.Pagination.TotalPages {
			break
		}
	}

	return products, nil
}
