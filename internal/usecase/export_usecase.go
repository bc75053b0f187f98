package usecase

import (
	"context"
)

// ExportFile is a generated spreadsheet.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
	// StoredKey is the bucket key of the stored copy, "" when storage is disabled.
	StoredKey string
}

// ExportUsecase builds product spreadsheets.
type ExportUsecase interface {
	// BrandExport builds the brand report workbook.
	BrandExport(ctx context.Context, brand string) (*ExportFile, error)

	// CatalogExport builds the full catalog workbook.
	CatalogExport(ctx context.Context) (*ExportFile, error)
}
