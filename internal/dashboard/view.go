// Package dashboard holds the state of the lead scraping dashboard and the
// operations a user can trigger on it. A View is built per page load and
// mutated only by the request that owns it.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/scrapriq/dashboard/internal/backend"
	"github.com/scrapriq/dashboard/internal/domain"
)

// Status strings shown in the backend status panel.
const (
	StatusLoading      = "Loading..."
	StatusChecking     = "Checking..."
	StatusDisconnected = "Disconnected"
)

// User-facing messages.
const (
	MsgEmptyTargetURL = "Please enter a URL to scrape."
	MsgDisconnected   = "The backend is disconnected. Retry the connection before scraping."
	MsgNoLeads        = "No leads found on the provided page, or all leads were duplicates."
)

// Backend is the subset of the backend client the dashboard calls.
type Backend interface {
	Health(ctx context.Context) (*domain.HealthStatus, error)
	Scrape(ctx context.Context, targetURL string) ([]domain.Lead, error)
}

// View is the dashboard's ephemeral state.
type View struct {
	// Backend connectivity.
	Status    string
	Connected bool
	Error     string
	CheckedAt time.Time
	Latency   time.Duration

	// Scrape form and results.
	TargetURL    string
	Leads        []domain.Lead
	Scraping     bool
	ScrapeError  string
	ScrapeNotice string

	backend Backend
	now     func() time.Time
}

// New creates a View in its initial, not yet probed state.
func New(b Backend) *View {
	return &View{
		Status:  StatusLoading,
		backend: b,
		now:     time.Now,
	}
}

// Checking reports whether a health probe is in progress.
func (v *View) Checking() bool {
	return v.Status == StatusChecking
}

// CheckAPIHealth probes the backend and records the outcome.
func (v *View) CheckAPIHealth(ctx context.Context) error {
	v.Status = StatusChecking
	v.Error = ""

	start := v.now()
	status, err := v.backend.Health(ctx)
	v.CheckedAt = v.now()
	v.Latency = v.CheckedAt.Sub(start)

	if err != nil {
		v.Status = StatusDisconnected
		v.Connected = false
		v.Error = fmt.Sprintf("Failed to connect to backend: %s.", backend.Message(err))
		slog.WarnContext(ctx, "backend health check failed", "error", eris.ToString(err, false))
		return err
	}

	v.Status = fmt.Sprintf("API Status: %s (DB Connected: %t)", status.Status, status.DBConnected)
	v.Connected = true
	return nil
}

// HandleScrape submits TargetURL to the backend and replaces the results.
// A blank URL or a disconnected backend never reaches the network.
func (v *View) HandleScrape(ctx context.Context) error {
	target := strings.TrimSpace(v.TargetURL)
	if target == "" {
		v.ScrapeError = MsgEmptyTargetURL
		return domain.ErrEmptyTargetURL
	}
	if !v.Connected {
		v.ScrapeError = MsgDisconnected
		return domain.ErrBackendDisconnected
	}

	v.Scraping = true
	v.Leads = nil
	v.ScrapeError = ""
	v.ScrapeNotice = ""
	defer func() { v.Scraping = false }()

	leads, err := v.backend.Scrape(ctx, target)
	if err != nil {
		v.ScrapeError = fmt.Sprintf("Scraping failed: %s", backend.Message(err))
		slog.ErrorContext(ctx, "scrape failed", "target_url", target, "error", eris.ToString(err, false))
		return err
	}

	v.Leads = leads
	if len(leads) == 0 {
		v.ScrapeNotice = MsgNoLeads
	}
	slog.InfoContext(ctx, "scrape completed", "target_url", target, "leads", len(leads))
	return nil
}

// HandleClear resets the form and results.
func (v *View) HandleClear() {
	v.TargetURL = ""
	v.Leads = nil
	v.ScrapeError = ""
	v.ScrapeNotice = ""
}

// InputDisabled reports whether the URL input and scrape button are locked.
func (v *View) InputDisabled() bool {
	return v.Scraping || !v.Connected
}

// ClearDisabled reports whether the clear button is locked: while scraping,
// or when there is no URL and no output to clear.
func (v *View) ClearDisabled() bool {
	return v.Scraping || (strings.TrimSpace(v.TargetURL) == "" && !v.HasOutput())
}

// HasOutput reports whether the scrape panel shows anything besides the form.
func (v *View) HasOutput() bool {
	return len(v.Leads) > 0 || v.ScrapeError != "" || v.ScrapeNotice != ""
}

// IsValidation reports whether err came from a local check rather than the backend.
func IsValidation(err error) bool {
	return errors.Is(err, domain.ErrEmptyTargetURL) || errors.Is(err, domain.ErrBackendDisconnected)
}
