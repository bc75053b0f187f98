// Package draft builds supplier ETA request emails for orders.
package draft

import (
	"regexp"
	"strings"
	"unicode"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/vendorlink"
)

const combiningLowLine = '̲'

//nolint:gochecknoglobals
var vendorEmails = map[string]string{
	"keystone":  "purchasing@keystone.com",
	"meyer":     "orders@meyerdistributing.com",
	"omix":      "orders@omix-ada.com",
	"quadratec": "purchasing@quadratec.com",
}

//nolint:gochecknoglobals
var countryLabels = map[string]string{
	"CA": "Canada",
	"US": "United States",
}

//nolint:gochecknoglobals
var brandStopWords = map[string]struct{}{
	"for": {}, "fits": {}, "with": {}, "without": {}, "and": {}, "&": {}, "the": {}, "a": {}, "an": {},
}

//nolint:gochecknoglobals
var nonWord = regexp.MustCompile(`[^\w]`)

// Draft is a prepared ETA request in both the drop-ship and ship-to-store forms.
type Draft struct {
	To             string `json:"to"`
	Subject        string `json:"subject"`
	DropShipBody   string `json:"dropShipBody"`
	StoreBody      string `json:"storeBody"`
	DropShipMailto string `json:"dropShipMailto"`
	StoreMailto    string `json:"storeMailto"`
}

// BrandFunc resolves the brand printed in front of an item SKU.
type BrandFunc func(item *entity.OrderItem) string

// Drafter builds drafts with a fallback purchasing recipient.
type Drafter struct {
	purchasingEmail string
}

// NewDrafter creates a Drafter. purchasingEmail receives drafts with no vendor-specific recipient.
func NewDrafter(purchasingEmail string) *Drafter {
	return &Drafter{purchasingEmail: purchasingEmail}
}

// ForOrder drafts one request covering every line of the order, addressed to purchasing.
func (d *Drafter) ForOrder(order *entity.Order, brandOf BrandFunc) Draft {
	if brandOf == nil {
		brandOf = ItemBrand
	}

	lines := make([]string, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		lines = append(lines, ItemLine(item, brandOf(item)))
	}
	itemLines := strings.Join(lines, "\n")

	dropShip := "Could you please confirm the " + Underline("ETA, cost, and shipping cost") +
		" for the items listed below?\n\n" + itemLines + "\n\nShip to:\n" + ShipToBlock(order) + "\n\nThank you,"
	store := "Could you please confirm the " + Underline("ETA and cost") +
		" for the items listed below?\n" + itemLines + "\n\nThank you,"

	return d.build(d.purchasingEmail, Subject(order), dropShip, store)
}

// ForItem drafts a request for a single line, addressed to the selected supplier when known.
func (d *Drafter) ForItem(order *entity.Order, item *entity.OrderItem, brand string) Draft {
	line := ItemLine(item, brand)

	dropShip := "Could you please confirm the " + Underline("ETA, cost, and shipping cost") +
		" for the item listed below?\n\n" + line + "\n\nShip to:\n" + ShipToBlock(order) + "\n\nThank you,"
	store := "Could you please confirm the " + Underline("ETA and cost") +
		" for the item listed below?\n" + line + "\n\nThank you,"

	return d.build(d.Recipient(item.SelectedSupplier), Subject(order), dropShip, store)
}

// Recipient returns the purchasing address of a vendor, or the fallback address.
func (d *Drafter) Recipient(vendor string) string {
	if to, ok := vendorEmails[strings.ToLower(strings.TrimSpace(vendor))]; ok {
		return to
	}

	return d.purchasingEmail
}

func (d *Drafter) build(to, subject, dropShip, store string) Draft {
	return Draft{
		To:             to,
		Subject:        subject,
		DropShipBody:   dropShip,
		StoreBody:      store,
		DropShipMailto: Mailto(to, subject, dropShip),
		StoreMailto:    Mailto(to, subject, store),
	}
}

// Subject is the email subject for an order.
func Subject(order *entity.Order) string {
	return "Order " + order.IncrementID + " "
}

// Mailto builds an encoded mailto URL.
func Mailto(to, subject, body string) string {
	return "mailto:" + to + "?subject=" + vendorlink.EncodeComponent(subject) + "&body=" + vendorlink.EncodeComponent(body)
}

// Underline marks every character with a combining low line for plain-text emphasis.
func Underline(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(r)
		b.WriteRune(combiningLowLine)
	}

	return b.String()
}

// FormatSKU strips the store prefix: "QTC-92806-9022" becomes "92806-9022".
func FormatSKU(sku string) string {
	return vendorlink.StripPrefix(strings.TrimSpace(sku))
}

// ItemLine renders "qty x BRAND sku" for one line item.
func ItemLine(item *entity.OrderItem, brand string) string {
	qty := "1"
	if item.QtyOrdered.Valid {
		qty = item.QtyOrdered.Value.String()
	}

	prefix := ""
	if brand != "" {
		prefix = brand + " "
	}

	return qty + " x " + prefix + FormatSKU(item.SKU)
}

// ItemBrand prefers the catalog brand and falls back to a brand inferred from the item name.
func ItemBrand(item *entity.OrderItem) string {
	if brand := item.Brand(); brand != "" {
		return brand
	}

	return InferBrand(item.Name)
}

// InferBrand guesses a brand from the leading words of a product name, stopping at
// the first word with digits or a stop word, and keeping at most two words.
func InferBrand(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	if len(words) >= 3 && strings.EqualFold(words[0], "dv8") &&
		strings.EqualFold(words[1], "off") && strings.EqualFold(words[2], "road") {
		return "DV8 Off Road"
	}

	out := make([]string, 0, 2)
	for _, raw := range words {
		w := nonWord.ReplaceAllString(raw, "")
		if w == "" || strings.ContainsFunc(w, unicode.IsDigit) {
			break
		}
		if _, stop := brandStopWords[strings.ToLower(w)]; stop {
			break
		}
		out = append(out, w)
		if len(out) == 2 {
			break
		}
	}

	return strings.Join(out, " ")
}

// ShipToBlock renders the ship-to address lines of an order.
func ShipToBlock(order *entity.Order) string {
	name := joinNonEmpty(" ", order.ShippingFirstName, order.ShippingLastName)
	if name == "" {
		name = joinNonEmpty(" ", order.CustomerFirstName, order.CustomerLastName)
	}
	if name == "" {
		name = "Customer"
	}

	region := order.ShippingRegion
	if region == "" {
		region = order.Region
	}

	country := countryLabel(order.ShippingCountryID)
	if country == "" {
		country = "Canada"
	}

	phone := ""
	if order.ShippingTelephone != "" {
		phone = "T: " + order.ShippingTelephone
	}

	lines := []string{
		name,
		order.ShippingCompany,
		order.ShippingStreet1,
		order.ShippingStreet2,
		order.ShippingStreet3,
		joinNonEmpty(", ", order.ShippingCity, region, order.ShippingPostcode),
		country,
		phone,
	}

	return joinNonEmpty("\n", lines...)
}

func countryLabel(code string) string {
	if label, ok := countryLabels[strings.ToUpper(code)]; ok {
		return label
	}

	return code
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, sep)
}
