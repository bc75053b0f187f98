package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"
)

// Supported subcommands:
// - login, register, logout, whoami: operator session
// - orders, metrics, seed, drafts:   order grid reads and sync
// - select, po:                      supplier selection and purchase orders
// - compare, search:                 catalog lookups
// - export:                          xlsx workbooks

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd, ok := commands[os.Args[1]]
	if !ok {
		printUsage()
		os.Exit(1)
	}

	fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	run := cmd.setup(fs)
	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if err := withConsole(ctx, run); err != nil {
		if errors.IsAny(err, domainerrors.ErrSessionExpired, domainerrors.ErrNotAuthenticated) {
			fmt.Fprintln(os.Stderr, "Session expired, sign in again with: deskctl login")
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// command binds its flags and returns the action to run once they are parsed.
type command struct {
	usage string
	setup func(fs *flag.FlagSet) action
}

var commands = map[string]command{
	"login":    {usage: "Sign in and store the session token", setup: loginCmd},
	"register": {usage: "Create an operator account and sign in", setup: registerCmd},
	"logout":   {usage: "End the session", setup: logoutCmd},
	"whoami":   {usage: "Show the session state", setup: whoamiCmd},
	"orders":   {usage: "List orders through the grid filter", setup: ordersCmd},
	"metrics":  {usage: "Show order dashboard counters", setup: metricsCmd},
	"seed":     {usage: "Re-sync orders from the storefront", setup: seedCmd},
	"drafts":   {usage: "Print supplier ETA request drafts for an order", setup: draftsCmd},
	"select":   {usage: "Record the supplier chosen for a line item", setup: selectCmd},
	"po":       {usage: "Create a purchase order for a line item", setup: poCmd},
	"compare":  {usage: "Compare vendor margins of a product", setup: compareCmd},
	"search":   {usage: "Search the catalog, -i reads queries from stdin", setup: searchCmd},
	"export":   {usage: "Write the brand or catalog workbook", setup: exportCmd},
}

var commandOrder = []string{
	"login", "register", "logout", "whoami",
	"orders", "metrics", "seed", "drafts", "select", "po",
	"compare", "search", "export",
}

func printUsage() {
	fmt.Println("Usage: deskctl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	for _, name := range commandOrder {
		fmt.Printf("  %-9s %s\n", name, commands[name].usage)
	}
	fmt.Println()
	fmt.Println("Use \"deskctl <command> -h\" for command options.")
}
