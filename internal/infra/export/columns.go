package export

import (
	"backoffice/internal/domain/entity"
)

//nolint:gochecknoglobals
var brandColumns = []column{
	{"SKU", func(p *entity.Product) any { return p.SKU }},
	{"Name", func(p *entity.Product) any { return p.Name }},
	{"URL", func(p *entity.Product) any { return p.URLPath }},
	{"Status", func(p *entity.Product) any { return p.Status }},
	{"Price", func(p *entity.Product) any { return cell(p.Price) }},
	{"Searchable SKU", func(p *entity.Product) any { return p.SearchableSKU }},
	{"JJ Prefix", func(p *entity.Product) any { return p.JJPrefix }},
	{"Image URL", func(p *entity.Product) any { return p.Image }},
	{"Brand Name", func(p *entity.Product) any { return p.BrandName }},
	{"Vendors", func(p *entity.Product) any { return p.Vendors }},
	vendorCost("Meyer Cost", "Meyer"),
	vendorInventory("Meyer Inventory", "Meyer"),
	vendorCost("Keystone Cost", "Keystone"),
	vendorInventory("Keystone Inventory", "Keystone"),
	competitorPrice("Northridge Price", "Northridge 4x4"),
	vendorCost("Rough Country Cost", "Rough Country"),
}

//nolint:gochecknoglobals
var catalogColumns = []column{
	{"JJ Prefix", func(p *entity.Product) any { return p.JJPrefix }},
	{"JJ SKU", func(p *entity.Product) any { return p.SKU }},
	{"MANUF. SKU", func(p *entity.Product) any { return p.SearchableSKU }},
	{"Price", func(p *entity.Product) any { return cell(p.Price) }},
	{"Shipping Freight", func(p *entity.Product) any { return p.ShippingFreight }},
	{"MAP", func(p *entity.Product) any { return cell(p.MAP) }},
	{"Brand Name", func(p *entity.Product) any { return p.BrandName }},
	{"Vendors", func(p *entity.Product) any { return p.Vendors }},
	vendorCost("Meyer Cost", "Meyer"),
	vendorInventory("Meyer Inventory", "Meyer"),
	vendorCost("Keystone Cost", "Keystone"),
	vendorInventory("Keystone Inventory", "Keystone"),
	vendorCost("Omix Cost", "Omix"),
	vendorCost("Quadratec Cost", "Quadratec"),
	vendorInventory("Quadratec Inventory", "Quadratec"),
	vendorCost("WheelPros Cost", "WheelPros"),
	vendorInventory("WP inventory", "WheelPros"),
	vendorCost("Tire Discounter Cost", "Tire Discounter"),
	vendorCost("Dirty Dog Cost", "Dirty Dog 4x4"),
	vendorCost("Rough Country Cost", "Rough Country"),
	competitorPrice("TDOT Price", "TDOT"),
	competitorPrice("PartsEngine Price", "Parts Engine"),
	competitorPrice("Lowriders Price", "Lowriders"),
	{"Status", func(p *entity.Product) any { return p.Status }},
	{"Name", func(p *entity.Product) any { return p.Name }},
	{"Part Status Meyer", func(p *entity.Product) any { return p.PartStatusMeyer }},
	{"Keystone code", func(p *entity.Product) any { return p.KeystoneCode }},
	{"Weight", func(p *entity.Product) any { return cell(p.Weight) }},
	{"Length", func(p *entity.Product) any { return cell(p.Length) }},
	{"Width", func(p *entity.Product) any { return cell(p.Width) }},
	{"Height", func(p *entity.Product) any { return cell(p.Height) }},
	{"Meyer Weight", func(p *entity.Product) any { return cell(p.MeyerWeight) }},
	{"Meyer Length", func(p *entity.Product) any { return cell(p.MeyerLength) }},
	{"Meyer Width", func(p *entity.Product) any { return cell(p.MeyerWidth) }},
	{"Meyer Height", func(p *entity.Product) any { return cell(p.MeyerHeight) }},
	{"Quadratec SKU", func(p *entity.Product) any {
		if offer := findOffer(p, "Quadratec"); offer != nil {
			return offer.QuadratecSKU
		}

		return nil
	}},
	vendorInventory("Rough Country Inventory", "Rough Country"),
	vendorInventory("Omix Inventory", "Omix"),
	{"Part", func(p *entity.Product) any { return p.Part }},
	{"Image", func(p *entity.Product) any { return p.Thumbnail }},
	vendorCost("AEV Cost", "AEV"),
	vendorCost("Keyparts", "KeyParts"),
	{"PartsEngine URL", func(p *entity.Product) any { return p.PartsEngineCode }},
	{"TDOT URL", func(p *entity.Product) any { return p.TdotURL }},
	vendorCost("MetalCloak Cost", "MetalCloak"),
}

// cell leaves absent amounts blank.
func cell(a entity.Amount) any {
	if !a.Valid {
		return nil
	}

	return a.Value.InexactFloat64()
}

// findOffer matches the vendor name exactly, the way the stored names are spelled.
func findOffer(p *entity.Product, vendor string) *entity.VendorProduct {
	for i := range p.VendorProducts {
		if p.VendorProducts[i].VendorName() == vendor {
			return &p.VendorProducts[i]
		}
	}

	return nil
}

func vendorCost(header, vendor string) column {
	return column{header, func(p *entity.Product) any {
		if offer := findOffer(p, vendor); offer != nil {
			return cell(offer.VendorCost)
		}

		return nil
	}}
}

func vendorInventory(header, vendor string) column {
	return column{header, func(p *entity.Product) any {
		if offer := findOffer(p, vendor); offer != nil {
			return cell(offer.VendorInventory)
		}

		return nil
	}}
}

func competitorPrice(header, competitor string) column {
	return column{header, func(p *entity.Product) any {
		for i := range p.CompetitorProducts {
			if p.CompetitorProducts[i].Competitor.Name == competitor {
				return cell(p.CompetitorProducts[i].CompetitorPrice)
			}
		}

		return nil
	}}
}
