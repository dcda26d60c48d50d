package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/scrapriq/dashboard/internal/app"
	"github.com/scrapriq/dashboard/internal/backend"
	"github.com/scrapriq/dashboard/internal/config"
	"github.com/scrapriq/dashboard/internal/dashboard"
	"github.com/scrapriq/dashboard/internal/handlers"
	"github.com/scrapriq/dashboard/internal/logging"
	"github.com/scrapriq/dashboard/internal/middleware"
	"github.com/scrapriq/dashboard/internal/module"
	"github.com/scrapriq/dashboard/internal/registry"
	"github.com/scrapriq/dashboard/internal/rendering"
)

// Dependencies are the services the server is built from.
type Dependencies struct {
	Config  config.Provider
	Backend dashboard.Backend
	Modules []module.Module
}

// Server holds the echo instance and the modules mounted on it.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	registry *registry.Registry
	modules  []module.Module
}

// New creates a Server from explicit dependencies. Routes are not mounted
// until RegisterRoutes and InitModules are called.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config provider is required")
	}
	if deps.Backend == nil {
		return nil, errors.New("server: backend client is required")
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger)
	e.Use(accessLog())
	e.Use(echomw.Recover())

	secret := deps.Config.GetSessionSecret()
	if secret == config.DefaultSessionSecret {
		slog.Warn("SESSION_SECRET is not set; session cookies are signed with the public development secret")
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	reg := registry.New(deps.Config)
	registry.Set(reg, registry.BackendKey, deps.Backend)
	registry.Set(reg, registry.RendererKey, rendering.Renderer(rendering.NewUniversalRenderer()))

	return &Server{
		E:        e,
		Cfg:      deps.Config,
		registry: reg,
		modules:  deps.Modules,
	}, nil
}

// NewFromEnv wires a Server from the environment: logging, configuration and
// the backend client.
func NewFromEnv() (*Server, error) {
	logging.New()
	cfg := config.New()

	client := backend.NewClient(cfg.GetBackendURL(), backend.WithTimeout(cfg.GetBackendTimeout()))
	slog.Info("Using scraping backend", "url", cfg.GetBackendURL(), "timeout", cfg.GetBackendTimeout())

	return New(Dependencies{
		Config:  cfg,
		Backend: client,
		Modules: app.NewModules(),
	})
}

// InitModules registers every module's services, then boots each one on the
// root route group.
func (s *Server) InitModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.registry); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	for _, m := range s.modules {
		if err := m.Boot(ctx, s.E.Group(""), s.registry); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Info("Module booted", "module", m.Name())
	}
	return nil
}

// accessLog writes one structured line per request.
func accessLog() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger := middleware.FromContext(c.Request().Context())
			if v.Error != nil {
				logger.Warn("request", "uri", v.URI, "status", v.Status, "latency", v.Latency, "error", v.Error)
				return nil
			}
			logger.Info("request", "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	})
}

// setupErrorHandling installs an error handler that answers with an
// ErrorResponse body and logs unhandled errors with a stack trace.
// *echo.HTTPError values keep their status code.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = http.StatusText(code)
			if m, ok := he.Message.(string); ok && m != "" {
				message = m
			}
			if he.Internal != nil {
				slog.Warn("HTTP error", "code", he.Code, "error", he.Internal)
			}
		} else {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(code)
		} else {
			respErr = c.JSON(code, handlers.ErrorResponse{Code: errorCode(code), Message: message})
		}
		if respErr != nil {
			slog.Error("Failed to write error response", "error", respErr)
		}
	}
}

// errorCode turns a status code into a stable identifier such as "not_found".
func errorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "error"
	}
	return strings.ToLower(strings.ReplaceAll(text, " ", "_"))
}
