package export

import (
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet both layouts write to.
const SheetName = "Product Data"

type column struct {
	header string
	value  func(p *entity.Product) any
}

type workbookBuilder struct{}

// NewWorkbookBuilder creates the excelize backed workbook builder
func NewWorkbookBuilder() service.WorkbookBuilder {
	return workbookBuilder{}
}

func (workbookBuilder) BrandWorkbook(products []entity.Product) ([]byte, error) {
	return render(brandColumns, products)
}

func (workbookBuilder) CatalogWorkbook(products []entity.Product) ([]byte, error) {
	return render(catalogColumns, products)
}

// render streams one header row and one row per product.
func render(columns []column, products []entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, errors.WithStack(err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c.header
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, errors.WithStack(err)
	}

	for i := range products {
		row := make([]any, len(columns))
		for j, c := range columns {
			row[j] = c.value(&products[i])
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, errors.Wrapf(err, "failed to write row for %s", products[i].SKU)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, errors.WithStack(err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return buf.Bytes(), nil
}
