package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Healthz reports that the dashboard process itself is serving requests.
// It does not contact the scraping backend.
func Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
