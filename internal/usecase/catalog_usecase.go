package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/pricing"
)

// CompetitorView is a competitor price with its outbound search link.
type CompetitorView struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
	Link  string   `json:"link,omitempty"`
}

// ProductComparison is the catalog view of one product.
type ProductComparison struct {
	Product     *entity.Product    `json:"product"`
	Comparison  pricing.Comparison `json:"comparison"`
	VendorLinks map[string]string  `json:"vendorLinks"`
	Competitors []CompetitorView   `json:"competitors"`
}

// CatalogUsecase defines catalog reads.
type CatalogUsecase interface {
	// Search returns one page of products. Backend failures other than an expired
	// session produce an empty page.
	Search(ctx context.Context, query string, page, pageSize int) (*entity.ProductPage, error)

	// Product returns a single product with its offers.
	Product(ctx context.Context, sku string) (*entity.Product, error)

	// CompareProduct evaluates the product's vendor offers in the given currency.
	CompareProduct(ctx context.Context, sku string, currency entity.Currency) (*ProductComparison, error)

	// SKUs returns the autocomplete list.
	SKUs(ctx context.Context) ([]entity.SKUEntry, error)

	// Brand returns the brand of a SKU through the brand cache.
	Brand(ctx context.Context, sku string) (string, error)

	// BrandReport lists the active, priced products of a brand.
	BrandReport(ctx context.Context, brand string) (*entity.BrandReport, error)

	// AllProducts walks every catalog page.
	AllProducts(ctx context.Context) ([]entity.Product, error)
}

// SearchState is what the debounced searcher currently shows.
type SearchState struct {
	Query      string            `json:"query"`
	Items      []entity.Product  `json:"items"`
	Pagination entity.Pagination `json:"pagination"`
	Loading    bool              `json:"loading"`
	// Sequence of the response the state reflects, 0 before the first one.
	Sequence uint64 `json:"sequence"`
}

// CatalogSearcher is the debounced, last-request-wins search driver.
type CatalogSearcher interface {
	// Submit records a keystroke. Only the last query of a burst is dispatched.
	Submit(query string)

	// Page dispatches the current query for another page right away.
	Page(page, pageSize int)

	// Snapshot returns the current state.
	Snapshot() SearchState

	// Close cancels the pending timer.
	Close()
}
