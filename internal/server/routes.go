package server

import (
	"github.com/labstack/echo/v4"
	"github.com/scrapriq/dashboard/internal/handlers"
	"github.com/scrapriq/dashboard/web"
)

// RegisterRoutes mounts the routes that belong to the service itself rather
// than to a module.
func (s *Server) RegisterRoutes() {
	s.E.GET("/healthz", handlers.Healthz)
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
}
