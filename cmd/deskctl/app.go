package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"backoffice/config"
	"backoffice/internal/infra/backend"
	"backoffice/internal/infra/cache"
	"backoffice/internal/infra/export"
	logs "backoffice/internal/infra/log"
	"backoffice/internal/infra/pubsub"
	"backoffice/internal/infra/session"
	"backoffice/internal/usecase"
	"backoffice/internal/usecase/impl"

	"go.uber.org/fx"
)

// console is what a command works with.
type console struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Auth    usecase.AuthUsecase
	Catalog usecase.CatalogUsecase
	Orders  usecase.OrderUsecase
	Exports usecase.ExportUsecase
	Grid    usecase.OrderGridController
}

type action func(ctx context.Context, c *console) error

// withConsole starts the same object graph as the server without deliveries, runs fn
// and stops the graph so publishers and stores are flushed.
func withConsole(ctx context.Context, fn action) (err error) {
	var c console
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() io.Writer { return os.Stderr },
			func() context.Context { return ctx },
			session.NewTokenStore,
			session.New,
			backend.New,
			backend.NewAuthRepository,
			backend.NewOrderRepository,
			backend.NewVendorRepository,
			backend.NewPurchaseOrderRepository,
			backend.NewProductRepository,
			cache.New,
			export.NewWorkbookBuilder,
			export.NewStore,
			pubsub.NewEventPublisher,
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewExportService,
			impl.NewConsoleOrderGrid,
		),
		fx.Populate(&c),
	)
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if stopErr := app.Stop(context.WithoutCancel(ctx)); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	return fn(ctx, &c)
}
