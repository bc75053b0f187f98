// Package entity contains the business objects the console reads from and
// writes to the backend API.
package entity

import (
	"strings"
)

// Currency is the order currency a margin is computed in.
type Currency string

const (
	CurrencyCAD Currency = "CAD"
	CurrencyUSD Currency = "USD"
)

// ParseCurrency maps an order currency code to a Currency. Anything other than USD is CAD.
func ParseCurrency(code string) Currency {
	if strings.EqualFold(strings.TrimSpace(code), string(CurrencyUSD)) {
		return CurrencyUSD
	}

	return CurrencyCAD
}

// Product is a catalog entry identified by its SKU.
type Product struct {
	SKU             string `json:"sku"`
	Name            string `json:"name"`
	Status          int    `json:"status"`
	Price           Amount `json:"price"`
	MAP             Amount `json:"MAP"`
	BrandName       string `json:"brand_name"`
	SearchableSKU   string `json:"searchable_sku"`
	JJPrefix        string `json:"jj_prefix"`
	URLPath         string `json:"url_path"`
	Image           string `json:"image"`
	Thumbnail       string `json:"thumbnail"`
	Vendors         string `json:"vendors"`
	BlackFridaySale string `json:"black_friday_sale"`
	ShippingFreight string `json:"shippingFreight"`
	Part            string `json:"part"`

	Weight Amount `json:"weight"`
	Length Amount `json:"length"`
	Width  Amount `json:"width"`
	Height Amount `json:"height"`

	MeyerWeight     Amount `json:"meyer_weight"`
	MeyerLength     Amount `json:"meyer_length"`
	MeyerWidth      Amount `json:"meyer_width"`
	MeyerHeight     Amount `json:"meyer_height"`
	PartStatusMeyer string `json:"partStatus_meyer"`

	// Vendor specific codes used to build outbound catalog links
	KeystoneCode     string `json:"keystone_code"`
	KeystoneCodeSite string `json:"keystone_code_site"`
	QuadratecCode    string `json:"quadratec_code"`
	PartsEngineCode  string `json:"partsEngine_code"`
	TdotURL          string `json:"tdot_url"`

	VendorProducts     []VendorProduct     `json:"vendorProducts"`
	CompetitorProducts []CompetitorProduct `json:"competitorProducts"`
}

// IsActive reports whether the product is enabled in the storefront.
func (p *Product) IsActive() bool {
	return p.Status == 1
}

// VendorProduct is one supplier's offer for a product.
type VendorProduct struct {
	ID                    int    `json:"id"`
	ProductSKU            string `json:"product_sku"`
	VendorSKU             string `json:"vendor_sku"`
	VendorCost            Amount `json:"vendor_cost"`
	VendorInventory       Amount `json:"vendor_inventory"`
	VendorInventoryString string `json:"vendor_inventory_string"`
	QuadratecSKU          string `json:"quadratec_sku,omitempty"`
	VendorID              int    `json:"vendor_id"`
	Vendor                Vendor `json:"vendor"`
}

// VendorName returns the supplier name of the offer.
func (vp *VendorProduct) VendorName() string {
	return vp.Vendor.Name
}

// CompetitorProduct is a competitor's price for a product.
type CompetitorProduct struct {
	ID              int        `json:"id"`
	ProductSKU      string     `json:"product_sku"`
	CompetitorPrice Amount     `json:"competitor_price"`
	ProductURL      string     `json:"product_url"`
	CompetitorID    int        `json:"competitor_id"`
	Competitor      Competitor `json:"competitor"`
}

// Competitor is a named competing retailer.
type Competitor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Vendor is a named supplier.
type Vendor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Pagination is the paging envelope the backend returns with list responses.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ProductPage is one page of catalog search results.
type ProductPage struct {
	Items      []Product  `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// ProductQuery is a catalog search request.
type ProductQuery struct {
	Search string
	Page   int
	Limit  int
}

// SKUEntry is an autocomplete entry.
type SKUEntry struct {
	SKU string `json:"sku"`
}

// BrandReport is the per-brand product listing with its average price.
type BrandReport struct {
	Brand        string    `json:"brand"`
	Products     []Product `json:"products"`
	MinPrice     float64   `json:"minPrice"`
	MaxPrice     float64   `json:"maxPrice"`
	AveragePrice float64   `json:"averagePrice"`
}
