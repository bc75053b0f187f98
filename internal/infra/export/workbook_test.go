package export

import (
	"bytes"
	"testing"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)

	return rows
}

func index(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}

	return -1
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}

	return row[i]
}

func TestBrandWorkbook(t *testing.T) {
	products := []entity.Product{
		{
			SKU:       "BST-56820-35",
			Name:      "Trektop",
			Status:    1,
			Price:     entity.NewAmount(1299.5),
			BrandName: "Bestop",
			VendorProducts: []entity.VendorProduct{
				{VendorCost: entity.NewAmount(800), VendorInventory: entity.NewAmount(3), Vendor: entity.Vendor{Name: "Keystone"}},
			},
			CompetitorProducts: []entity.CompetitorProduct{
				{CompetitorPrice: entity.NewAmount(1250), Competitor: entity.Competitor{Name: "Northridge 4x4"}},
			},
		},
		{SKU: "BST-2", Name: "Door", Status: 1},
	}

	data, err := NewWorkbookBuilder().BrandWorkbook(products)
	require.NoError(t, err)

	rows := readRows(t, data)
	require.Len(t, rows, 3)

	headers := rows[0]
	assert.Len(t, headers, len(brandColumns))
	assert.Equal(t, "SKU", headers[0])

	first := rows[1]
	assert.Equal(t, "BST-56820-35", cellAt(first, index(headers, "SKU")))
	assert.Equal(t, "1299.5", cellAt(first, index(headers, "Price")))
	assert.Equal(t, "800", cellAt(first, index(headers, "Keystone Cost")))
	assert.Equal(t, "3", cellAt(first, index(headers, "Keystone Inventory")))
	assert.Equal(t, "1250", cellAt(first, index(headers, "Northridge Price")))
	assert.Empty(t, cellAt(first, index(headers, "Meyer Cost")))

	// Missing amounts are blank cells
	assert.Empty(t, cellAt(rows[2], index(headers, "Price")))
}

func TestCatalogWorkbook_Headers(t *testing.T) {
	data, err := NewWorkbookBuilder().CatalogWorkbook(nil)
	require.NoError(t, err)

	rows := readRows(t, data)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], len(catalogColumns))
	assert.Equal(t, "JJ Prefix", rows[0][0])
	assert.Contains(t, rows[0], "Dirty Dog Cost")
	assert.Contains(t, rows[0], "PartsEngine Price")
}
