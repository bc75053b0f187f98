package vendorlink

import (
	"strings"

	"backoffice/internal/domain/entity"
)

// competitorRule matches a competitor by name fragments. All fragments must be present.
type competitorRule struct {
	fragments []string
	build     func(product *entity.Product) string
}

//nolint:gochecknoglobals
var competitorRules = []competitorRule{
	{fragments: []string{"parts", "engine"}, build: partsEngineLink},
	{fragments: []string{"quadratec"}, build: quadratecRetailLink},
	{fragments: []string{"extremeterrain"}, build: skuSearch("https://www.extremeterrain.com/searchresults.html?q=")},
	{fragments: []string{"morris"}, build: skuSearch("https://www.morris4x4center.com/search.php?search_query=")},
	{fragments: []string{"4wp"}, build: skuSearch("https://www.4wheelparts.com/search/?Ntt=")},
	{fragments: []string{"4 wheel parts"}, build: skuSearch("https://www.4wheelparts.com/search/?Ntt=")},
	{fragments: []string{"northridge"}, build: skuSearch("https://www.northridge4x4.ca/search?q=")},
}

// CompetitorLink resolves the competitor search link for a product. Unknown competitors yield "".
func CompetitorLink(product *entity.Product, competitorName string) string {
	if product == nil {
		return ""
	}

	name := strings.ToLower(competitorName)
	for _, rule := range competitorRules {
		if containsAll(name, rule.fragments) {
			return rule.build(product)
		}
	}

	return ""
}

func containsAll(s string, fragments []string) bool {
	for _, f := range fragments {
		if !strings.Contains(s, f) {
			return false
		}
	}

	return true
}

func partsEngineLink(product *entity.Product) string {
	code := strings.TrimSpace(product.PartsEngineCode)
	if code == "" {
		return "https://www.partsengine.ca/Search/?q=" + EncodeComponent(StripPrefix(product.SKU))
	}
	if strings.HasPrefix(code, "http") {
		return code
	}

	return "https://www.partsengine.ca/Search/?q=" + EncodeComponent(code)
}

func quadratecRetailLink(product *entity.Product) string {
	code := strings.TrimSpace(product.QuadratecCode)
	if code == "" {
		return ""
	}

	return "https://www.quadratec.com/search?keywords=" + EncodeComponent(code)
}

func skuSearch(base string) func(*entity.Product) string {
	return func(product *entity.Product) string {
		return base + EncodeComponent(StripPrefix(product.SKU))
	}
}
