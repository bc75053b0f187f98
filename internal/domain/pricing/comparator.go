// Package pricing computes vendor margins and picks the best vendor offer for a product.
package pricing

import (
	"math"
	"strings"

	"backoffice/internal/domain/entity"
)

const (
	// USDConversionRate converts CAD base costs for USD orders.
	USDConversionRate = 1.5

	// DefaultHealthyMarginPercent is the canonical healthy margin threshold.
	DefaultHealthyMarginPercent = 18.0
)

//nolint:gochecknoglobals
var depletionMarkers = []string{
	"out",
	"0/0 stock",
	"cad stock: 0 / us stock: 0",
}

//nolint:gochecknoglobals
var saleDiscounts = []struct {
	tag      string
	multiple float64
}{
	{tag: "15%off", multiple: 0.85},
	{tag: "20%off", multiple: 0.80},
	{tag: "25%off", multiple: 0.75},
	{tag: "30%off", multiple: 0.70},
}

// AdjustCost converts a CAD base cost into the order currency.
func AdjustCost(cost float64, currency entity.Currency) float64 {
	if currency == entity.CurrencyUSD {
		return cost / USDConversionRate
	}

	return cost
}

// Margin returns the markup of sellingPrice over adjustedCost in percent.
// A zero or missing cost yields NaN.
func Margin(sellingPrice, adjustedCost float64) float64 {
	if adjustedCost == 0 || math.IsNaN(adjustedCost) || math.IsNaN(sellingPrice) {
		return math.NaN()
	}

	return (sellingPrice - adjustedCost) / adjustedCost * 100
}

// IsDepleted reports whether a free-text inventory status says the vendor is out of stock.
func IsDepleted(status string) bool {
	normalized := strings.ToLower(strings.TrimSpace(status))
	for _, marker := range depletionMarkers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}

	return false
}

// Eligible reports whether an offer may be chosen as the best offer.
// A numeric inventory decides when present; otherwise a non-empty status without
// a depletion marker qualifies. Offers with no inventory information do not.
func Eligible(offer *entity.VendorProduct) bool {
	if offer.VendorInventory.Valid {
		return offer.VendorInventory.Value.IsPositive()
	}

	status := strings.TrimSpace(offer.VendorInventoryString)
	if status == "" {
		return false
	}

	return !IsDepleted(status)
}

// DiscountedPrice applies a Black Friday sale tag to a selling price.
func DiscountedPrice(price float64, saleTag string) float64 {
	tag := strings.ToLower(saleTag)
	for _, d := range saleDiscounts {
		if strings.Contains(tag, d.tag) {
			return price * d.multiple
		}
	}

	return price
}

// Evaluation is the margin analysis of one vendor offer.
type Evaluation struct {
	Offer        entity.VendorProduct
	AdjustedCost float64
	Margin       float64
	Eligible     bool
	Healthy      bool
}

// HasMargin reports whether the margin is a number.
func (e *Evaluation) HasMargin() bool {
	return !math.IsNaN(e.Margin)
}

// Comparison is the result of comparing all offers of a product.
type Comparison struct {
	SellingPrice float64
	Currency     string
	Threshold    float64
	Evaluations  []Evaluation
	// BestIndex points into Evaluations, -1 when no offer is eligible.
	BestIndex int
}

// Best returns the best offer evaluation, or nil.
func (c *Comparison) Best() *Evaluation {
	if c.BestIndex < 0 || c.BestIndex >= len(c.Evaluations) {
		return nil
	}

	return &c.Evaluations[c.BestIndex]
}

// BestVendor returns the best vendor's name, or "-" when there is none.
func (c *Comparison) BestVendor() string {
	best := c.Best()
	if best == nil {
		return "-"
	}

	return best.Offer.VendorName()
}

// Comparator evaluates vendor offers against a healthy-margin threshold.
type Comparator struct {
	threshold float64
}

// NewComparator creates a comparator. A non-positive threshold falls back to the default.
func NewComparator(thresholdPercent float64) *Comparator {
	if thresholdPercent <= 0 || math.IsNaN(thresholdPercent) {
		thresholdPercent = DefaultHealthyMarginPercent
	}

	return &Comparator{threshold: thresholdPercent}
}

// Threshold returns the healthy margin threshold in percent.
func (c *Comparator) Threshold() float64 {
	return c.threshold
}

// Healthy reports whether margin is strictly above the threshold.
func (c *Comparator) Healthy(margin float64) bool {
	return !math.IsNaN(margin) && margin > c.threshold
}

// Compare evaluates every offer and picks the eligible one with the strictly highest margin.
// The first offer wins a tie. Offers with an undefined margin are never best.
func (c *Comparator) Compare(offers []entity.VendorProduct, sellingPrice float64, currency entity.Currency) Comparison {
	result := Comparison{
		SellingPrice: sellingPrice,
		Currency:     string(currency),
		Threshold:    c.threshold,
		Evaluations:  make([]Evaluation, 0, len(offers)),
		BestIndex:    -1,
	}

	for i := range offers {
		offer := &offers[i]
		adjusted := AdjustCost(offer.VendorCost.Float64(), currency)
		margin := Margin(sellingPrice, adjusted)
		eval := Evaluation{
			Offer:        *offer,
			AdjustedCost: adjusted,
			Margin:       margin,
			Eligible:     Eligible(offer),
			Healthy:      c.Healthy(margin),
		}
		result.Evaluations = append(result.Evaluations, eval)

		if !eval.Eligible || !eval.HasMargin() {
			continue
		}
		if best := result.Best(); best == nil || eval.Margin > best.Margin {
			result.BestIndex = len(result.Evaluations) - 1
		}
	}

	return result
}

// CompareProduct compares the product's own offers against its sale-adjusted price.
func (c *Comparator) CompareProduct(product *entity.Product, currency entity.Currency) Comparison {
	price := DiscountedPrice(product.Price.Float64(), product.BlackFridaySale)

	return c.Compare(product.VendorProducts, price, currency)
}

// CompareItem compares the offers of an order line against its unit price.
func (c *Comparator) CompareItem(item *entity.OrderItem, currency entity.Currency) Comparison {
	return c.Compare(item.Offers(), item.Price.Float64(), currency)
}
