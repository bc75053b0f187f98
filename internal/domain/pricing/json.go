package pricing

import (
	"encoding/json"

	"backoffice/internal/util"
)

type evaluationJSON struct {
	Vendor       string   `json:"vendor"`
	VendorSKU    string   `json:"vendorSku"`
	Cost         *float64 `json:"cost"`
	AdjustedCost *float64 `json:"adjustedCost"`
	Margin       *float64 `json:"margin"`
	MarginLabel  string   `json:"marginLabel"`
	Eligible     bool     `json:"eligible"`
	Healthy      bool     `json:"healthy"`
	Inventory    *float64 `json:"inventory"`
	Status       string   `json:"inventoryStatus,omitempty"`
}

// MarshalJSON encodes undefined margins as null with an N/A label.
func (e Evaluation) MarshalJSON() ([]byte, error) {
	return json.Marshal(evaluationJSON{
		Vendor:       e.Offer.VendorName(),
		VendorSKU:    e.Offer.VendorSKU,
		Cost:         util.Finite(e.Offer.VendorCost.Float64()),
		AdjustedCost: util.Finite(e.AdjustedCost),
		Margin:       util.Finite(e.Margin),
		MarginLabel:  util.FormatPercent(e.Margin),
		Eligible:     e.Eligible,
		Healthy:      e.Healthy,
		Inventory:    util.Finite(e.Offer.VendorInventory.Float64()),
		Status:       e.Offer.VendorInventoryString,
	})
}

type comparisonJSON struct {
	SellingPrice *float64     `json:"sellingPrice"`
	Currency     string       `json:"currency"`
	Threshold    float64      `json:"threshold"`
	Evaluations  []Evaluation `json:"evaluations"`
	BestVendor   string       `json:"bestVendor"`
	BestIndex    int          `json:"bestIndex"`
}

// MarshalJSON renders the best vendor as "-" when there is none.
func (c Comparison) MarshalJSON() ([]byte, error) {
	return json.Marshal(comparisonJSON{
		SellingPrice: util.Finite(c.SellingPrice),
		Currency:     c.Currency,
		Threshold:    c.Threshold,
		Evaluations:  c.Evaluations,
		BestVendor:   c.BestVendor(),
		BestIndex:    c.BestIndex,
	})
}
