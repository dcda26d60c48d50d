package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/scrapriq/dashboard/internal/registry"
)

// Module is a self-contained dashboard feature: it owns its routes and any
// services it shares with other modules.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register publishes the module's services. Every module registers before
	// any module boots.
	Register(reg *registry.Registry) error

	// Boot mounts the module's routes on router and resolves the services it
	// needs from reg.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown releases resources during graceful shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op Register and Shutdown for modules to embed.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Shutdown(ctx context.Context) error    { return nil }
