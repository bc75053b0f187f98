package service

import (
	"context"

	"backoffice/internal/domain/entity"
)

// WorkbookBuilder renders product listings as xlsx workbooks.
type WorkbookBuilder interface {
	// BrandWorkbook renders the short brand report layout.
	BrandWorkbook(products []entity.Product) ([]byte, error)

	// CatalogWorkbook renders the full catalog layout.
	CatalogWorkbook(products []entity.Product) ([]byte, error)
}

// ExportStore keeps a copy of generated exports.
type ExportStore interface {
	// Save writes data under key and returns the stored object key.
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Close() error
}
