package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// ProductRepository defines catalog reads.
type ProductRepository interface {
	// Search returns one page of products matching the query. Matching is done by the backend.
	Search(ctx context.Context, query entity.ProductQuery) (*entity.ProductPage, error)

	// FindBySKU returns a single product with its vendor and competitor offers.
	FindBySKU(ctx context.Context, sku string) (*entity.Product, error)

	// ListSKUs returns the SKU autocomplete list.
	ListSKUs(ctx context.Context) ([]entity.SKUEntry, error)

	// FindBrand returns the brand name of a SKU, "" when unknown.
	FindBrand(ctx context.Context, sku string) (string, error)
}
