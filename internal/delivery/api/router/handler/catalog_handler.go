package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves product reads
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC, logger: params.Logger}
}

// SearchProducts returns one page of the catalog. The backend decides what matches.
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	var page, limit int
	if err := echo.QueryParamsBinder(c).Int("page", &page).Int("limit", &limit).BindError(); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "page and limit must be numbers")
	}

	result, err := h.catalogUC.Search(c.Request().Context(), c.QueryParam("search"), page, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetProduct returns a product with its vendor and competitor offers
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.Product(c.Request().Context(), c.Param("sku"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CompareProduct evaluates the product's offers in the requested currency, CAD by default
func (h *CatalogHandler) CompareProduct(c echo.Context) error {
	currency := entity.ParseCurrency(c.QueryParam("currency"))

	comparison, err := h.catalogUC.CompareProduct(c.Request().Context(), c.Param("sku"), currency)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comparison)
}

// GetBrand returns the brand of a SKU
func (h *CatalogHandler) GetBrand(c echo.Context) error {
	sku := c.Param("sku")

	brand, err := h.catalogUC.Brand(c.Request().Context(), sku)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"sku": sku, "brand": brand})
}

// ListSKUs returns the autocomplete list
func (h *CatalogHandler) ListSKUs(c echo.Context) error {
	skus, err := h.catalogUC.SKUs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, skus)
}

// BrandReport lists the active priced products of a brand with the average price
func (h *CatalogHandler) BrandReport(c echo.Context) error {
	report, err := h.catalogUC.BrandReport(c.Request().Context(), c.Param("brand"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
