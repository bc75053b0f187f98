package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"backoffice/internal/delivery/api/validator"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
	"backoffice/internal/usecase/impl"
	"backoffice/internal/util"

	"github.com/shopspring/decimal"
)

// requireSession resolves the session state the way the console's gate does.
func requireSession(ctx context.Context, c *console) error {
	info, err := c.Auth.CheckStatus(ctx)
	if err != nil {
		return err
	}
	if info.State == entity.SessionDisabled || info.State == entity.SessionAuthenticated {
		return nil
	}

	return domainerrors.ErrNotAuthenticated
}

func gated(fn action) action {
	return func(ctx context.Context, c *console) error {
		if err := requireSession(ctx, c); err != nil {
			return err
		}

		return fn(ctx, c)
	}
}

func loginCmd(fs *flag.FlagSet) action {
	username := fs.String("u", "", "Username")
	password := fs.String("p", "", "Password")

	return func(ctx context.Context, c *console) error {
		if *username == "" || *password == "" {
			return errors.New("-u and -p are required")
		}
		info, err := c.Auth.Login(ctx, entity.Credentials{Username: *username, Password: *password})
		if err != nil {
			return err
		}
		printSession(info)

		return nil
	}
}

func registerCmd(fs *flag.FlagSet) action {
	username := fs.String("u", "", "Username")
	password := fs.String("p", "", "Password, at least 6 characters")
	email := fs.String("email", "", "Email")
	first := fs.String("first", "", "First name")
	last := fs.String("last", "", "Last name")

	return func(ctx context.Context, c *console) error {
		if *username == "" || len(*password) < 6 {
			return errors.New("-u is required and -p needs at least 6 characters")
		}
		info, err := c.Auth.Register(ctx, entity.Registration{
			Username:  *username,
			Password:  *password,
			Email:     *email,
			FirstName: *first,
			LastName:  *last,
		})
		if err != nil {
			return err
		}
		printSession(info)

		return nil
	}
}

func logoutCmd(_ *flag.FlagSet) action {
	return func(ctx context.Context, c *console) error {
		if _, err := c.Auth.CheckStatus(ctx); err != nil {
			return err
		}
		if err := c.Auth.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("Signed out")

		return nil
	}
}

func whoamiCmd(_ *flag.FlagSet) action {
	return func(ctx context.Context, c *console) error {
		info, err := c.Auth.CheckStatus(ctx)
		if err != nil {
			return err
		}
		printSession(info)

		return nil
	}
}

func ordersCmd(fs *flag.FlagSet) action {
	mode := fs.String("mode", string(entity.FilterModeOrder), "Filter mode: order or items")
	status := fs.String("status", "", "Order status")
	search := fs.String("search", "", "Order search, or SKU/name search in items mode")
	poStatus := fs.String("po", "", "PO status: not_set, partial or set")
	region := fs.String("region", "", "Shipping region")
	vendor := fs.String("vendor", "", "Selected supplier in items mode")
	date := fs.String("date", "", "Date filter: today or yesterday")
	page := fs.Int("page", 1, "Page")
	limit := fs.Int("limit", 0, "Page size, 0 uses the configured default")

	return gated(func(ctx context.Context, c *console) error {
		// Mode first, switching it clears the mode-specific fields
		filter := entity.DefaultOrderFilter().
			With(entity.FilterFieldMode, *mode).
			With(entity.FilterFieldStatus, *status).
			With(entity.FilterFieldSearch, *search).
			With(entity.FilterFieldPOStatus, *poStatus).
			With(entity.FilterFieldRegion, *region).
			With(entity.FilterFieldVendor, *vendor).
			With(entity.FilterFieldDateFilter, *date)

		result, err := c.Orders.ListOrders(ctx, filter, *page, *limit)
		if err != nil {
			return err
		}

		views := make([]usecase.OrderView, 0, len(result.Orders))
		for i := range result.Orders {
			views = append(views, c.Orders.View(&result.Orders[i]))
		}
		printOrders(views, result.Pagination)

		return nil
	})
}

func metricsCmd(_ *flag.FlagSet) action {
	return gated(func(ctx context.Context, c *console) error {
		metrics, err := c.Orders.Metrics(ctx)
		if err != nil {
			return err
		}
		printMetrics(metrics)

		return nil
	})
}

func seedCmd(_ *flag.FlagSet) action {
	return gated(func(ctx context.Context, c *console) error {
		state, err := c.Grid.Seed(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Orders re-synced, %d total\n", state.Pagination.Total)

		return nil
	})
}

func draftsCmd(fs *flag.FlagSet) action {
	increment := fs.String("order", "", "Order increment id")

	return gated(func(ctx context.Context, c *console) error {
		order, err := findOrder(ctx, c, *increment)
		if err != nil {
			return err
		}
		drafts, err := c.Orders.Drafts(ctx, order)
		if err != nil {
			return err
		}
		printDrafts(order, drafts)

		return nil
	})
}

func selectCmd(fs *flag.FlagSet) action {
	orderID := fs.Int("order", 0, "Order entity id")
	itemID := fs.Int("item", 0, "Line item id")
	supplier := fs.String("supplier", "", "Vendor name")
	cost := fs.String("cost", "", "Vendor cost")

	return gated(func(ctx context.Context, c *console) error {
		if *itemID <= 0 || *supplier == "" {
			return errors.New("-item and -supplier are required")
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(*cost))
		if err != nil {
			return errors.Wrapf(err, "invalid -cost %q", *cost)
		}

		item, err := c.Orders.SelectSupplier(ctx, *orderID, *itemID, entity.SupplierSelection{
			Supplier: *supplier,
			Cost:     amount,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Item %d: %s at %s\n", item.ID, item.SelectedSupplier, item.SelectedSupplierCost)

		return nil
	})
}

func poCmd(fs *flag.FlagSet) action {
	var input usecase.PurchaseOrderInput
	fs.IntVar(&input.OrderID, "order", 0, "Order entity id")
	fs.IntVar(&input.ItemID, "item", 0, "Line item id")
	fs.StringVar(&input.VendorName, "vendor", "", "Vendor name")
	fs.StringVar(&input.SKU, "sku", "", "Product SKU")
	fs.Float64Var(&input.Quantity, "qty", 1, "Quantity purchased")
	fs.StringVar(&input.VendorCost, "cost", "", "Vendor cost")
	fs.IntVar(&input.UserID, "user", 0, "Purchaser id, 0 uses the signed in operator")

	return gated(func(ctx context.Context, c *console) error {
		if err := validator.New().Validate(input); err != nil {
			return err
		}
		if input.VendorName == "" {
			return errors.New("-vendor is required")
		}

		result, err := c.Orders.CreatePurchaseOrder(ctx, input.Request())
		if err != nil {
			return err
		}
		fmt.Printf("Purchase order %d created for order %d, line item %d\n",
			result.PurchaseOrder.ID, result.PurchaseOrder.OrderID, result.LineItem.ID)

		return nil
	})
}

func compareCmd(fs *flag.FlagSet) action {
	sku := fs.String("sku", "", "Product SKU")
	currency := fs.String("currency", string(entity.CurrencyCAD), "Selling currency: CAD or USD")

	return gated(func(ctx context.Context, c *console) error {
		if *sku == "" {
			return errors.New("-sku is required")
		}
		comparison, err := c.Catalog.CompareProduct(ctx, *sku, entity.Currency(strings.ToUpper(*currency)))
		if err != nil {
			return err
		}
		printComparison(comparison)

		return nil
	})
}

func searchCmd(fs *flag.FlagSet) action {
	query := fs.String("q", "", "Search query")
	page := fs.Int("page", 1, "Page")
	interactive := fs.Bool("i", false, "Read queries from stdin, each line is a keystroke burst")

	return gated(func(ctx context.Context, c *console) error {
		if !*interactive {
			result, err := c.Catalog.Search(ctx, *query, *page, c.Config.Search.PageSize)
			if err != nil {
				return err
			}
			printProducts(result.Items, result.Pagination)

			return nil
		}

		return interactiveSearch(ctx, c)
	})
}

// interactiveSearch feeds stdin lines to a debounced searcher and prints every applied result.
func interactiveSearch(ctx context.Context, c *console) error {
	searcher := impl.NewSearcher(ctx, impl.SearcherParams{
		Catalog:       c.Catalog,
		Debounce:      c.Config.Search.Debounce,
		EmptyDebounce: c.Config.Search.EmptyDebounce,
		PageSize:      c.Config.Search.PageSize,
		Logger:        c.Logger,
		OnUpdate: func(state usecase.SearchState) {
			if state.Loading {
				return
			}
			fmt.Printf("\n[%d] %q\n", state.Sequence, state.Query)
			printProducts(state.Items, state.Pagination)
			fmt.Print("> ")
		},
	})
	defer searcher.Close()

	fmt.Print("> ")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		searcher.Submit(strings.TrimSpace(scanner.Text()))
	}

	return errors.WithStack(scanner.Err())
}

func exportCmd(fs *flag.FlagSet) action {
	brand := fs.String("brand", "", "Brand to export, empty exports the whole catalog")
	out := fs.String("out", ".", "Output directory")

	return gated(func(ctx context.Context, c *console) error {
		var (
			file *usecase.ExportFile
			err  error
		)
		if *brand != "" {
			file, err = c.Exports.BrandExport(ctx, *brand)
		} else {
			file, err = c.Exports.CatalogExport(ctx)
		}
		if err != nil {
			return err
		}

		path := filepath.Join(*out, file.Name)
		if err := os.WriteFile(path, file.Data, 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
		fmt.Printf("Wrote %s (%s, sha256 %s)\n", path, util.FormatBytes(int64(len(file.Data))), util.Checksum(file.Data))
		if file.StoredKey != "" {
			fmt.Printf("Stored as %s\n", file.StoredKey)
		}

		return nil
	})
}

// findOrder looks an order up by increment id through the order search.
func findOrder(ctx context.Context, c *console, increment string) (*entity.Order, error) {
	if increment == "" {
		return nil, errors.New("-order is required")
	}

	filter := entity.DefaultOrderFilter().With(entity.FilterFieldSearch, increment)
	page, err := c.Orders.ListOrders(ctx, filter, 1, 0)
	if err != nil {
		return nil, err
	}
	for i := range page.Orders {
		if page.Orders[i].IncrementID == increment {
			return &page.Orders[i], nil
		}
	}

	return nil, domainerrors.ErrNotFound.WithDetails("order " + increment)
}
