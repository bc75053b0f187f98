package handler

import (
	"log/slog"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExportHandlerParams holds dependencies for ExportHandler, injected by Fx.
type ExportHandlerParams struct {
	fx.In

	ExportUC usecase.ExportUsecase
	Logger   *slog.Logger
}

// ExportHandler streams product workbooks
type ExportHandler struct {
	exportUC usecase.ExportUsecase
	logger   *slog.Logger
}

// NewExportHandler is the constructor for ExportHandler
func NewExportHandler(params ExportHandlerParams) *ExportHandler {
	return &ExportHandler{exportUC: params.ExportUC, logger: params.Logger}
}

// BrandExport downloads the brand report workbook
func (h *ExportHandler) BrandExport(c echo.Context) error {
	file, err := h.exportUC.BrandExport(c.Request().Context(), c.Param("brand"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.send(c, file)
}

// CatalogExport downloads the full catalog workbook
func (h *ExportHandler) CatalogExport(c echo.Context) error {
	file, err := h.exportUC.CatalogExport(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.send(c, file)
}

func (h *ExportHandler) send(c echo.Context, file *usecase.ExportFile) error {
	if file.StoredKey != "" {
		c.Response().Header().Set("X-Export-Key", file.StoredKey)
	}

	return response.Attachment(c, file.Name, file.ContentType, file.Data)
}
