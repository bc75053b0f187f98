package handler

import (
	"net/http"

	"backoffice/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the console process is up. It does not contact the backend.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
