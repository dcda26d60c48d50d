package scrapr

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/scrapriq/dashboard/internal/dashboard"
	"github.com/scrapriq/dashboard/internal/handlers"
	"github.com/scrapriq/dashboard/internal/middleware"
	"github.com/scrapriq/dashboard/internal/rendering"
	"github.com/scrapriq/dashboard/internal/view"
	"github.com/scrapriq/dashboard/web/src/templates/layouts"
	"github.com/scrapriq/dashboard/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

const (
	pageTitle       = "Dashboard"
	pageDescription = "ScraprIQ Lead Scraper Dashboard"

	msgTargetURLTooLong = "The URL is too long (2048 characters max)."
)

// Handler serves the dashboard page and its fragments.
type Handler struct {
	backend  dashboard.Backend
	renderer rendering.Renderer
}

// NewHandler creates a new dashboard handler.
func NewHandler(b dashboard.Backend, r rendering.Renderer) *Handler {
	return &Handler{backend: b, renderer: r}
}

// Get renders the full page. Every load starts from a fresh View and probes
// the backend once.
func (h *Handler) Get(c echo.Context) error {
	v := dashboard.New(h.backend)
	h.probe(c, v)

	page := layouts.Base(c.Request().Context(), pageTitle, pageDescription, pages.Dashboard(v))
	return h.renderer.RenderPage(c, http.StatusOK, page)
}

// HealthCheck re-probes the backend for the retry button. When connectivity
// changed, the scrape panel is swapped out of band so its form is enabled or
// locked to match.
func (h *Handler) HealthCheck(c echo.Context) error {
	previous, known := view.LoadSnapshot(c)

	v := dashboard.New(h.backend)
	v.TargetURL = c.FormValue("target_url")
	h.probe(c, v)

	fragment := g.Group{pages.StatusPanel(v)}
	if !known || previous.Connected != v.Connected {
		fragment = append(fragment, pages.ScrapePanel(v, true))
	}
	return h.renderer.RenderPage(c, http.StatusOK, fragment)
}

// Scrape submits the posted URL to the backend and renders the scrape panel
// with the results or the failure message.
func (h *Handler) Scrape(c echo.Context) error {
	var req handlers.ScrapeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid scrape form")
	}

	ctx := c.Request().Context()
	var v *dashboard.View
	if strings.TrimSpace(req.TargetURL) == "" {
		v = h.cached(c)
	} else {
		v = h.restore(c)
	}
	v.TargetURL = req.TargetURL

	if err := c.Validate(&req); err != nil {
		v.ScrapeError = msgTargetURLTooLong
		return h.renderer.RenderPage(c, http.StatusOK, pages.ScrapePanel(v, false))
	}

	if err := v.HandleScrape(ctx); err != nil && dashboard.IsValidation(err) {
		middleware.FromContext(ctx).Info("scrape rejected", "reason", err)
	}
	return h.renderer.RenderPage(c, http.StatusOK, pages.ScrapePanel(v, false))
}

// Clear resets the scrape panel.
func (h *Handler) Clear(c echo.Context) error {
	v := h.restore(c)
	v.HandleClear()
	return h.renderer.RenderPage(c, http.StatusOK, pages.ScrapePanel(v, false))
}

// Status probes the backend and returns the outcome as JSON.
func (h *Handler) Status(c echo.Context) error {
	v := dashboard.New(h.backend)
	_ = v.CheckAPIHealth(c.Request().Context())

	code := http.StatusOK
	if !v.Connected {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, handlers.NewStatusResponse(v))
}

// restore rebuilds a View from this browser's last probe, probing now if
// there is none.
func (h *Handler) restore(c echo.Context) *dashboard.View {
	v, ok := h.fromSnapshot(c)
	if !ok {
		h.probe(c, v)
	}
	return v
}

// cached rebuilds a View from the last probe without touching the backend.
// With no probe on record the form is left enabled so the user can resubmit.
func (h *Handler) cached(c echo.Context) *dashboard.View {
	v, ok := h.fromSnapshot(c)
	if !ok {
		v.Connected = true
	}
	return v
}

func (h *Handler) fromSnapshot(c echo.Context) (*dashboard.View, bool) {
	v := dashboard.New(h.backend)
	snap, ok := view.LoadSnapshot(c)
	if !ok {
		return v, false
	}
	v.Connected = snap.Connected
	v.Status = snap.Status
	v.CheckedAt = snap.CheckedAt
	return v, true
}

// probe checks the backend and remembers the outcome for this browser.
func (h *Handler) probe(c echo.Context, v *dashboard.View) {
	_ = v.CheckAPIHealth(c.Request().Context())
	h.saveSnapshot(c, v)
}

func (h *Handler) saveSnapshot(c echo.Context, v *dashboard.View) {
	err := view.SaveSnapshot(c, view.BackendSnapshot{
		Connected: v.Connected,
		Status:    v.Status,
		CheckedAt: v.CheckedAt,
		LatencyMs: v.Latency.Milliseconds(),
	})
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("could not save backend snapshot", "error", err)
	}
}
