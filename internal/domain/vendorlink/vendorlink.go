// Package vendorlink builds outbound catalog links for vendor offers and competitor prices.
// The order view and the catalog view both resolve links through the tables here.
package vendorlink

import (
	"net/url"
	"regexp"
	"strings"

	"backoffice/internal/domain/entity"
)

// Target carries what a link builder may need about one offer.
type Target struct {
	Product *entity.Product
	Offer   *entity.VendorProduct
}

func (t Target) vendorSKU() string {
	if t.Offer == nil {
		return ""
	}

	return strings.TrimSpace(t.Offer.VendorSKU)
}

func (t Target) productSKU() string {
	if t.Offer != nil && strings.TrimSpace(t.Offer.ProductSKU) != "" {
		return strings.TrimSpace(t.Offer.ProductSKU)
	}
	if t.Product != nil {
		return strings.TrimSpace(t.Product.SKU)
	}

	return ""
}

func (t Target) searchableSKU() string {
	if t.Product == nil {
		return ""
	}

	return strings.TrimSpace(t.Product.SearchableSKU)
}

func (t Target) brand() string {
	if t.Product == nil {
		return ""
	}

	return strings.ToLower(strings.TrimSpace(t.Product.BrandName))
}

// builder returns the link for a target, or "" when no link can be built.
type builder func(Target) string

//nolint:gochecknoglobals
var vendorBuilders = map[string]builder{
	"meyer":            meyerLink,
	"omix":             omixLink,
	"quadratec":        quadratecLink,
	"tire discounter":  tireDiscounterLink,
	"keystone":         keystoneLink,
	"wheelpros":        wheelProsLink,
	"wheel pros":       wheelProsLink,
	"rough country":    roughCountryLink,
	"roughcountry":     roughCountryLink,
	"ctp":              ctpLink,
	"ctp distributors": ctpLink,
	"curt":             curtLink,
	"t14":              turn14Link,
	"turn14":           turn14Link,
	"metalcloak":       metalCloakLink,
}

//nolint:gochecknoglobals
var curtBrandSites = map[string]string{
	"luverne truck equipment":     "https://www.luvernetruck.com/part/",
	"luverne truck equipment inc": "https://www.luvernetruck.com/part/",
	"luverne":                     "https://www.luvernetruck.com/part/",
	"aries automotive":            "https://www.ariesautomotive.com/part/",
	"curt manufacturing":          "https://www.curtmfg.com/part/",
	"uws storage":                 "https://www.uwsta.com/part/",
	"uws storage solutions":       "https://www.uwsta.com/part/",
}

//nolint:gochecknoglobals
var (
	keystoneDirectPrefixes = []string{"Y11", "RGA", "AVS"}
	trailingTwoDigits      = regexp.MustCompile(`(\d{2})$`)
)

// VendorLink resolves the supplier catalog link for an offer. The vendor name is
// matched case-insensitively. Unknown vendors and missing codes yield "".
func VendorLink(product *entity.Product, offer *entity.VendorProduct) string {
	if offer == nil {
		return ""
	}
	build, ok := vendorBuilders[strings.ToLower(strings.TrimSpace(offer.VendorName()))]
	if !ok {
		return ""
	}

	return build(Target{Product: product, Offer: offer})
}

// HasVendorLink reports whether a vendor name has a link builder.
func HasVendorLink(vendorName string) bool {
	_, ok := vendorBuilders[strings.ToLower(strings.TrimSpace(vendorName))]

	return ok
}

func meyerLink(t Target) string {
	sku := t.vendorSKU()
	if sku == "" {
		return ""
	}

	return "https://online.meyerdistributing.com/parts/details/" + sku
}

func omixLink(t Target) string {
	sku := t.vendorSKU()
	if sku == "" {
		return ""
	}

	return "https://omixdealer.com/product-detail/" + sku
}

func quadratecLink(t Target) string {
	code := StripPrefix(t.productSKU())
	if code == "" {
		return ""
	}

	return "https://www.quadratecwholesale.com/catalogsearch/result/?q=" + code
}

func tireDiscounterLink(t Target) string {
	sku := t.vendorSKU()
	if sku == "" {
		return ""
	}

	return "https://www.tdgaccess.ca/Catalog/Search/1?search=" + sku
}

func keystoneLink(t Target) string {
	pid := KeystonePID(t.Product)
	if pid == "" {
		return ""
	}

	return "https://wwwsc.ekeystone.com/Search/Detail?pid=" + pid
}

// KeystonePID derives the Keystone product id. Direct codes are used as-is, otherwise
// the site code is used with a dash before the last two digits of BES codes.
func KeystonePID(product *entity.Product) string {
	if product == nil {
		return ""
	}

	code := strings.TrimSpace(product.KeystoneCode)
	for _, prefix := range keystoneDirectPrefixes {
		if strings.HasPrefix(code, prefix) {
			return code
		}
	}

	site := strings.TrimSpace(product.KeystoneCodeSite)
	if strings.HasPrefix(site, "BES") {
		site = trailingTwoDigits.ReplaceAllString(site, "-$1")
	}

	return site
}

func wheelProsLink(t Target) string {
	sku := t.vendorSKU()
	if sku == "" {
		return ""
	}

	return "https://dl.wheelpros.com/ca_en/ymm/search/?api-type=products&p=1&pageSize=24&q=" + sku + "&inventorylocations=AL"
}

func roughCountryLink(t Target) string {
	sku := t.vendorSKU()
	if sku == "" {
		return ""
	}

	return "https://www.roughcountry.com/search/" + EncodeComponent(sku)
}

func ctpLink(t Target) string {
	sku := t.searchableSKU()
	if sku == "" {
		return ""
	}

	return "https://www.ctpdistributors.com/search-parts?find=" + EncodeComponent(sku)
}

func curtLink(t Target) string {
	sku := t.searchableSKU()
	if sku == "" {
		return ""
	}
	site, ok := curtBrandSites[t.brand()]
	if !ok {
		return ""
	}

	return site + EncodeComponent(sku)
}

func turn14Link(t Target) string {
	sku := t.vendorSKU()
	if sku == "" {
		return ""
	}

	return "https://turn14.com/search/index.php?vmmPart=" + EncodeComponent(sku)
}

func metalCloakLink(t Target) string {
	code := strings.TrimPrefix(t.vendorSKU(), "MTK-")
	if code == "" {
		return ""
	}

	return "https://jobber.metalcloak.com/catalogsearch/result/?q=" + EncodeComponent(code)
}

// StripPrefix drops the store prefix of a SKU, everything up to and including the first dash.
func StripPrefix(sku string) string {
	if _, rest, ok := strings.Cut(sku, "-"); ok {
		return rest
	}

	return sku
}

// EncodeComponent escapes s for use inside a URL component, spaces as %20.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
