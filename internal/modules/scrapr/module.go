// Package scrapr is the lead scraping dashboard: the page, its htmx
// fragments and the JSON status endpoint.
package scrapr

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/scrapriq/dashboard/internal/middleware"
	"github.com/scrapriq/dashboard/internal/module"
	"github.com/scrapriq/dashboard/internal/registry"
)

// Module wires the dashboard routes.
type Module struct {
	module.BaseModule
	handler *Handler
}

// New creates the dashboard module. Its backend client is resolved from the
// registry at boot.
func New() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "scrapr"
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	m.handler = NewHandler(
		registry.MustGet(reg, registry.BackendKey),
		registry.MustGet(reg, registry.RendererKey),
	)

	limit := reg.Config().GetScrapeRateLimit()

	group.GET("/", m.handler.Get)
	group.POST("/health/check", m.handler.HealthCheck)
	group.POST("/scrape", m.handler.Scrape, middleware.RateLimiter(limit))
	group.POST("/clear", m.handler.Clear)
	group.GET("/api/status", m.handler.Status)
	return nil
}
