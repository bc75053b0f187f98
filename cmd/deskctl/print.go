package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"
	"backoffice/internal/util"
)

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func printSession(info entity.SessionInfo) {
	switch info.State {
	case entity.SessionAuthenticated:
		fmt.Printf("Signed in as %s", info.User.DisplayName())
		if info.ExpiresAt != nil {
			fmt.Printf(", session expires %s (in %s)",
				info.ExpiresAt.Local().Format(time.DateTime), util.FormatDuration(time.Until(*info.ExpiresAt)))
		}
		fmt.Println()
	case entity.SessionDisabled:
		fmt.Println("Authentication is disabled on the backend")
	default:
		fmt.Println("Not signed in")
	}
}

func printOrders(views []usecase.OrderView, pagination entity.Pagination) {
	w := newTable()
	fmt.Fprintln(w, "ID\tORDER\tCREATED\tCUSTOMER\tSTATUS\tPO\tPAYMENT\tTOTAL\tFLAGS")
	for _, v := range views {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.Order.EntityID, v.Order.IncrementID, v.Order.CreatedAt, v.CustomerName,
			v.StatusLabel, v.POLabel, v.PaymentLabel, v.Order.GrandTotal, flags(v))
	}
	_ = w.Flush()
	printPagination(pagination)
}

func flags(v usecase.OrderView) string {
	var out string
	add := func(on bool, s string) {
		if !on {
			return
		}
		if out != "" {
			out += ","
		}
		out += s
	}
	add(v.USOrder, "US")
	add(v.RemoteRegion, "remote")
	add(v.FraudWarning, "fraud")
	add(v.HeavyItem, "heavy")

	return out
}

func printPagination(p entity.Pagination) {
	fmt.Printf("Page %d of %d, %d total\n", p.Page, p.TotalPages, p.Total)
}

func printMetrics(m *entity.OrderMetrics) {
	w := newTable()
	fmt.Fprintf(w, "PO not set\t%d\n", m.NotSetCount)
	fmt.Fprintf(w, "Today\t%d\n", m.TodayCount)
	fmt.Fprintf(w, "Yesterday\t%d\n", m.YesterdayCount)
	fmt.Fprintf(w, "PM not set\t%d\n", m.PMNotSetCount)
	fmt.Fprintf(w, "GW\t%d\n", m.GWCount)
	fmt.Fprintf(w, "Total\t%d\n", m.TotalCount)
	_ = w.Flush()
}

func printComparison(pc *usecase.ProductComparison) {
	c := pc.Comparison
	fmt.Printf("%s  %s\n", pc.Product.SKU, pc.Product.Name)
	fmt.Printf("Selling price %s %s, healthy margin %.0f%%\n", util.FormatMoney(c.SellingPrice), c.Currency, c.Threshold)

	w := newTable()
	fmt.Fprintln(w, "VENDOR\tCOST\tADJUSTED\tMARGIN\tINVENTORY\t")
	for i, e := range c.Evaluations {
		margin := "-"
		if e.HasMargin() {
			margin = util.FormatPercent(e.Margin)
		}
		mark := ""
		switch {
		case i == c.BestIndex:
			mark = "best"
		case !e.Eligible:
			mark = "ineligible"
		case !e.Healthy:
			mark = "low"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Offer.Vendor.Name, e.Offer.VendorCost, util.FormatMoney(e.AdjustedCost), margin, e.Offer.VendorInventory, mark)
	}
	_ = w.Flush()

	if len(pc.Competitors) > 0 {
		w = newTable()
		fmt.Fprintln(w, "COMPETITOR\tPRICE\tLINK")
		for _, comp := range pc.Competitors {
			price := "-"
			if comp.Price != nil {
				price = util.FormatMoney(*comp.Price)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", comp.Name, price, comp.Link)
		}
		_ = w.Flush()
	}
}

func printProducts(items []entity.Product, pagination entity.Pagination) {
	w := newTable()
	fmt.Fprintln(w, "SKU\tBRAND\tPRICE\tNAME")
	for _, p := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.SKU, p.BrandName, p.Price, p.Name)
	}
	_ = w.Flush()
	printPagination(pagination)
}

func printDrafts(order *entity.Order, drafts *usecase.OrderDrafts) {
	fmt.Printf("Order %s\n", order.IncrementID)
	fmt.Printf("To: %s\nSubject: %s\n\n%s\n", drafts.Order.To, drafts.Order.Subject, drafts.Order.DropShipBody)

	for i := range order.Items {
		item := &order.Items[i]
		d, ok := drafts.Items[item.ID]
		if !ok {
			continue
		}
		fmt.Printf("\n--- %s\nTo: %s\nSubject: %s\n\n%s\n", item.SKU, d.To, d.Subject, d.DropShipBody)
	}
}
