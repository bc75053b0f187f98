// Package router contains routing for the console HTTP delivery.
package router

import (
	"backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
	ExportHandler  *handler.ExportHandler
	ConsoleHandler *handler.ConsoleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
	exportHandler  *handler.ExportHandler
	consoleHandler *handler.ConsoleHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		orderHandler:   params.OrderHandler,
		exportHandler:  params.ExportHandler,
		consoleHandler: params.ConsoleHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up the console views, the JSON API and the stateful console endpoints.
// Everything except health, the auth endpoints and the login view is gated on the session.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public routes
	e.GET(middleware.LoginPath, r.consoleHandler.LoginPage)
	authGroup := e.Group("/api/auth")
	{
		authGroup.GET("/status", r.authHandler.Status)
		authGroup.GET("/me", r.authHandler.Me)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Console views
	views := e.Group("", r.authMiddleware.RequireSession)
	{
		views.GET("/", r.consoleHandler.OrdersPage)
		views.GET("/orders", r.consoleHandler.OrdersPage)
		views.GET("/suppliers", r.consoleHandler.SuppliersPage)
		views.GET("/dashboard", r.consoleHandler.DashboardPage)
		views.GET("/dashboard/po", r.consoleHandler.DashboardPOPage)
		views.GET("/po", r.consoleHandler.POPage)
		views.GET("/items", r.consoleHandler.ItemsPage)
	}

	api := e.Group("/api", r.authMiddleware.RequireSession)

	ordersGroup := api.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/metrics", r.orderHandler.GetMetrics)
		ordersGroup.POST("/:id/edit", r.orderHandler.UpdateOrder)
		ordersGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
		ordersGroup.POST("/seed", r.orderHandler.SeedOrders)
	}

	itemsGroup := api.Group("/order_products")
	{
		itemsGroup.POST("/:id/edit", r.orderHandler.UpdateLineItem)
		itemsGroup.POST("/:id/edit/selected_supplier", r.orderHandler.SelectSupplier)
	}

	api.POST("/purchase_orders", r.orderHandler.CreatePurchaseOrder)
	api.GET("/vendors", r.orderHandler.ListVendors)

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.SearchProducts)
		productsGroup.GET("/:sku", r.catalogHandler.GetProduct)
		productsGroup.GET("/:sku/compare", r.catalogHandler.CompareProduct)
		productsGroup.GET("/:sku/brand", r.catalogHandler.GetBrand)
	}
	api.GET("/products_sku", r.catalogHandler.ListSKUs)
	api.GET("/brands/:brand", r.catalogHandler.BrandReport)

	exportsGroup := api.Group("/exports")
	{
		exportsGroup.GET("/brand/:brand", r.exportHandler.BrandExport)
		exportsGroup.GET("/catalog", r.exportHandler.CatalogExport)
	}

	// Stateful console endpoints backing the views
	console := e.Group("/console", r.authMiddleware.RequireSession)

	gridGroup := console.Group("/orders")
	{
		gridGroup.GET("", r.consoleHandler.GridSnapshot)
		gridGroup.POST("/filter", r.consoleHandler.SetFilter)
		gridGroup.POST("/clear", r.consoleHandler.ClearFilters)
		gridGroup.POST("/page", r.consoleHandler.ChangePage)
		gridGroup.POST("/reload", r.consoleHandler.Reload)
		gridGroup.POST("/metrics", r.consoleHandler.RefreshMetrics)
		gridGroup.POST("/seed", r.consoleHandler.Seed)
		gridGroup.POST("/:id/edit", r.consoleHandler.GridUpdateOrder)
		gridGroup.GET("/:id/drafts", r.consoleHandler.Drafts)
		gridGroup.POST("/:id/items/:itemId/purchase_order", r.consoleHandler.GridCreatePurchaseOrder)
	}

	consoleItems := console.Group("/items")
	{
		consoleItems.POST("/:id/edit", r.consoleHandler.GridUpdateLineItem)
		consoleItems.POST("/:id/supplier", r.consoleHandler.GridSelectSupplier)
	}

	searchGroup := console.Group("/search")
	{
		searchGroup.GET("", r.consoleHandler.SearchSnapshot)
		searchGroup.POST("", r.consoleHandler.Search)
		searchGroup.POST("/page", r.consoleHandler.SearchPage)
	}
}
