package vendorlink

import (
	"testing"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestVendorLink(t *testing.T) {
	product := &entity.Product{
		SKU:              "BST-56820-35",
		SearchableSKU:    "56820 35",
		BrandName:        "Aries Automotive",
		KeystoneCodeSite: "BES5682035",
	}

	tests := []struct {
		name   string
		vendor string
		sku    string
		want   string
	}{
		{name: "meyer", vendor: "Meyer", sku: "BES56820-35", want: "https://online.meyerdistributing.com/parts/details/BES56820-35"},
		{name: "omix", vendor: "OMIX", sku: "12345.01", want: "https://omixdealer.com/product-detail/12345.01"},
		{name: "quadratec uses product sku", vendor: "Quadratec", sku: "x", want: "https://www.quadratecwholesale.com/catalogsearch/result/?q=56820-35"},
		{name: "keystone bes dash", vendor: "Keystone", sku: "x", want: "https://wwwsc.ekeystone.com/Search/Detail?pid=BES56820-35"},
		{name: "rough country encodes", vendor: "Rough Country", sku: "RC 1/2", want: "https://www.roughcountry.com/search/RC%201%2F2"},
		{name: "ctp uses searchable sku", vendor: "CTP Distributors", sku: "x", want: "https://www.ctpdistributors.com/search-parts?find=56820%2035"},
		{name: "curt by brand", vendor: "Curt", sku: "x", want: "https://www.ariesautomotive.com/part/56820%2035"},
		{name: "turn14", vendor: "T14", sku: "ABC", want: "https://turn14.com/search/index.php?vmmPart=ABC"},
		{name: "metalcloak strips prefix", vendor: "MetalCloak", sku: "MTK-6100", want: "https://jobber.metalcloak.com/catalogsearch/result/?q=6100"},
		{name: "wheel pros", vendor: "Wheel Pros", sku: "W1", want: "https://dl.wheelpros.com/ca_en/ymm/search/?api-type=products&p=1&pageSize=24&q=W1&inventorylocations=AL"},
		{name: "unknown vendor", vendor: "Acme", sku: "A", want: ""},
		{name: "missing vendor sku", vendor: "Meyer", sku: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			offer := &entity.VendorProduct{
				VendorSKU:  tt.sku,
				ProductSKU: product.SKU,
				Vendor:     entity.Vendor{Name: tt.vendor},
			}
			assert.Equal(t, tt.want, VendorLink(product, offer))
		})
	}
}

func TestKeystonePID(t *testing.T) {
	assert.Equal(t, "Y1112345", KeystonePID(&entity.Product{KeystoneCode: " Y1112345 ", KeystoneCodeSite: "BES1234567"}))
	assert.Equal(t, "BES12345-67", KeystonePID(&entity.Product{KeystoneCodeSite: "BES1234567"}))
	assert.Equal(t, "SMT12345", KeystonePID(&entity.Product{KeystoneCodeSite: "SMT12345"}))
	assert.Empty(t, KeystonePID(nil))
}

func TestCurtLink_UnknownBrand(t *testing.T) {
	product := &entity.Product{SearchableSKU: "1234", BrandName: "Someone Else"}
	offer := &entity.VendorProduct{Vendor: entity.Vendor{Name: "curt"}}

	assert.Empty(t, VendorLink(product, offer))
}

func TestCompetitorLink(t *testing.T) {
	product := &entity.Product{SKU: "BST-56820-35", QuadratecCode: "12345.0101"}

	assert.Equal(t, "https://www.partsengine.ca/Search/?q=56820-35", CompetitorLink(product, "Parts Engine"))
	assert.Equal(t, "https://www.quadratec.com/search?keywords=12345.0101", CompetitorLink(product, "Quadratec"))
	assert.Equal(t, "https://www.extremeterrain.com/searchresults.html?q=56820-35", CompetitorLink(product, "ExtremeTerrain"))
	assert.Equal(t, "https://www.4wheelparts.com/search/?Ntt=56820-35", CompetitorLink(product, "4 Wheel Parts"))
	assert.Equal(t, "https://www.northridge4x4.ca/search?q=56820-35", CompetitorLink(product, "Northridge 4x4"))
	assert.Empty(t, CompetitorLink(product, "Unknown Shop"))

	product.PartsEngineCode = "https://www.partsengine.ca/p/123"
	assert.Equal(t, "https://www.partsengine.ca/p/123", CompetitorLink(product, "PartsEngine"))
}

func TestStripPrefix(t *testing.T) {
	assert.Equal(t, "56820-35", StripPrefix("BST-56820-35"))
	assert.Equal(t, "NODASH", StripPrefix("NODASH"))
}
