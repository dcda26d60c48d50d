package scrapr_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/scrapriq/dashboard/internal/backend"
	"github.com/scrapriq/dashboard/internal/dashboard"
	"github.com/scrapriq/dashboard/internal/handlers"
	"github.com/scrapriq/dashboard/internal/modules/scrapr"
	"github.com/scrapriq/dashboard/internal/registry"
	"github.com/scrapriq/dashboard/internal/rendering"
	"github.com/scrapriq/dashboard/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDashboard(t *testing.T, fake *testutils.FakeBackend) *echo.Echo {
	t.Helper()

	cfg := testutils.ConfigForTests(t, fake.URL)

	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))))

	reg := registry.New(cfg)
	registry.Set(reg, registry.BackendKey, dashboard.Backend(backend.NewClient(cfg.GetBackendURL())))
	registry.Set(reg, registry.RendererKey, rendering.Renderer(rendering.NewUniversalRenderer()))

	m := scrapr.New()
	require.NoError(t, m.Register(reg))
	require.NoError(t, m.Boot(context.Background(), e.Group(""), reg))
	return e
}

func do(e *echo.Echo, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	req.Header.Set("HX-Request", "true")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// loadPage performs the initial page load and returns the session cookies.
func loadPage(t *testing.T, e *echo.Echo) (string, []*http.Cookie) {
	t.Helper()
	rec := do(e, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String(), rec.Result().Cookies()
}

var inputTag = regexp.MustCompile(`<input[^>]*id="target_url"[^>]*>`)
var scrapeButtonTag = regexp.MustCompile(`<button[^>]*id="scrape-button"[^>]*>`)

func formDisabled(t *testing.T, body string) bool {
	t.Helper()
	input := inputTag.FindString(body)
	button := scrapeButtonTag.FindString(body)
	require.NotEmpty(t, input, "target_url input should be rendered")
	require.NotEmpty(t, button, "scrape button should be rendered")
	inputDisabled := strings.Contains(input, " disabled")
	assert.Equal(t, inputDisabled, strings.Contains(button, " disabled"), "input and button share their disabled state")
	return inputDisabled
}

func TestDashboardPage(t *testing.T) {
	t.Run("connected backend enables the form", func(t *testing.T) {
		e := setupDashboard(t, testutils.NewFakeBackend(t))

		body, cookies := loadPage(t, e)

		assert.Contains(t, body, "<title>Dashboard - ScraprIQ</title>")
		assert.Contains(t, body, "API Status: ok (DB Connected: true)")
		assert.False(t, formDisabled(t, body))
		assert.NotEmpty(t, cookies, "the backend snapshot should be stored in the session")
	})

	t.Run("unhealthy backend disables the form", func(t *testing.T) {
		fake := testutils.NewFakeBackend(t)
		fake.SetHealth(http.StatusServiceUnavailable, "")
		e := setupDashboard(t, fake)

		body, _ := loadPage(t, e)

		assert.Contains(t, body, "Disconnected")
		assert.Contains(t, body, "Failed to connect to backend: HTTP error! status: 503.")
		assert.True(t, formDisabled(t, body))
	})
}

func TestScrape(t *testing.T) {
	t.Run("one lead renders a one-row table", func(t *testing.T) {
		fake := testutils.NewFakeBackend(t)
		fake.SetScrape(http.StatusOK, testutils.OneLeadBody)
		e := setupDashboard(t, fake)
		_, cookies := loadPage(t, e)

		rec := do(e, http.MethodPost, "/scrape", url.Values{"target_url": {"https://example.com/team"}}, cookies)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Equal(t, 1, fake.ScrapeCalls())
		assert.Equal(t, "https://example.com/team", fake.LastTarget())
		assert.Contains(t, body, "Scraped Leads (1)")
		assert.Equal(t, 1, strings.Count(body, "<tr data-key="))
		assert.Contains(t, body, `data-key="7"`)
		for _, field := range []string{"Ada Lovelace", "CTO", "Analytical", "ada@analytical.io", "valid", "mx ok"} {
			assert.Contains(t, body, field)
		}
		assert.Contains(t, body, `value="https://example.com/team"`)
	})

	t.Run("empty result shows the no leads notice", func(t *testing.T) {
		fake := testutils.NewFakeBackend(t)
		e := setupDashboard(t, fake)
		_, cookies := loadPage(t, e)

		rec := do(e, http.MethodPost, "/scrape", url.Values{"target_url": {"https://example.com/about"}}, cookies)

		body := rec.Body.String()
		assert.Contains(t, body, "No leads found on the provided page, or all leads were duplicates.")
		assert.NotContains(t, body, "<table")
	})

	t.Run("blank url never reaches the backend", func(t *testing.T) {
		fake := testutils.NewFakeBackend(t)
		e := setupDashboard(t, fake)
		_, cookies := loadPage(t, e)
		before := fake.Requests()

		rec := do(e, http.MethodPost, "/scrape", url.Values{"target_url": {"   "}}, cookies)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please enter a URL to scrape.")
		assert.Equal(t, before, fake.Requests())
		assert.Equal(t, 0, fake.ScrapeCalls())
	})

	t.Run("blank url without a session never reaches the backend", func(t *testing.T) {
		fake := testutils.NewFakeBackend(t)
		e := setupDashboard(t, fake)

		rec := do(e, http.MethodPost, "/scrape", url.Values{"target_url": {"  "}}, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Please enter a URL to scrape.")
		assert.False(t, formDisabled(t, body))
		assert.Equal(t, 0, fake.Requests())
	})

	t.Run("overlong url is rejected locally", func(t *testing.T) {
		fake := testutils.NewFakeBackend(t)
		e := setupDashboard(t, fake)
		_, cookies := loadPage(t, e)

		long := "https://example.com/" + strings.Repeat("a", 2100)
		rec := do(e, http.MethodPost, "/scrape", url.Values{"target_url": {long}}, cookies)

		assert.Contains(t, rec.Body.String(), "The URL is too long")
		assert.Equal(t, 0, fake.ScrapeCalls())
	})

	t.Run("backend detail is shown", func(t *testing.T) {
		fake := testutils.NewFakeBackend(t)
		fake.SetScrape(http.StatusBadRequest, `{"detail":"Could not fetch the page"}`)
		e := setupDashboard(t, fake)
		_, cookies := loadPage(t, e)

		rec := do(e, http.MethodPost, "/scrape", url.Values{"target_url": {"https://example.com"}}, cookies)

		assert.Contains(t, rec.Body.String(), "Scraping failed: Could not fetch the page")
	})

	t.Run("generic error without detail", func(t *testing.T) {
		fake := testutils.NewFakeBackend(t)
		fake.SetScrape(http.StatusInternalServerError, `oops`)
		e := setupDashboard(t, fake)
		_, cookies := loadPage(t, e)

		rec := do(e, http.MethodPost, "/scrape", url.Values{"target_url": {"https://example.com"}}, cookies)

		assert.Contains(t, rec.Body.String(), "Scraping failed: HTTP error! status: 500")
	})

	t.Run("disconnected session is refused", func(t *testing.T) {
		fake := testutils.NewFakeBackend(t)
		fake.SetHealth(http.StatusServiceUnavailable, "")
		e := setupDashboard(t, fake)
		_, cookies := loadPage(t, e)

		rec := do(e, http.MethodPost, "/scrape", url.Values{"target_url": {"https://example.com"}}, cookies)

		assert.Contains(t, rec.Body.String(), "The backend is disconnected")
		assert.Equal(t, 0, fake.ScrapeCalls())
	})

	t.Run("probes the backend when the session has no snapshot", func(t *testing.T) {
		fake := testutils.NewFakeBackend(t)
		fake.SetScrape(http.StatusOK, testutils.OneLeadBody)
		e := setupDashboard(t, fake)

		rec := do(e, http.MethodPost, "/scrape", url.Values{"target_url": {"https://example.com"}}, nil)

		assert.Contains(t, rec.Body.String(), "Scraped Leads (1)")
	})
}

func TestClear(t *testing.T) {
	fake := testutils.NewFakeBackend(t)
	e := setupDashboard(t, fake)
	_, cookies := loadPage(t, e)

	rec := do(e, http.MethodPost, "/clear", url.Values{"target_url": {"https://example.com"}}, cookies)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="scrape-panel"`)
	assert.Contains(t, body, `value=""`)
	assert.NotContains(t, body, `role="alert"`)
	assert.NotContains(t, body, "<table")
	assert.False(t, formDisabled(t, body))
}

func TestHealthCheck(t *testing.T) {
	t.Run("unchanged connectivity only refreshes the status panel", func(t *testing.T) {
		e := setupDashboard(t, testutils.NewFakeBackend(t))
		_, cookies := loadPage(t, e)

		rec := do(e, http.MethodPost, "/health/check", url.Values{}, cookies)

		body := rec.Body.String()
		assert.Contains(t, body, `id="status-panel"`)
		assert.Contains(t, body, "API Status: ok")
		assert.NotContains(t, body, "hx-swap-oob")
	})

	t.Run("recovered backend re-enables the form out of band", func(t *testing.T) {
		fake := testutils.NewFakeBackend(t)
		fake.SetHealth(http.StatusServiceUnavailable, "")
		e := setupDashboard(t, fake)
		_, cookies := loadPage(t, e)

		fake.SetHealth(http.StatusOK, testutils.HealthyBody)
		rec := do(e, http.MethodPost, "/health/check", url.Values{"target_url": {"https://example.com"}}, cookies)

		body := rec.Body.String()
		assert.Contains(t, body, "API Status: ok")
		assert.Contains(t, body, `hx-swap-oob="true"`)
		assert.Contains(t, body, `value="https://example.com"`)
		assert.False(t, formDisabled(t, body))
	})
}

func TestStatusAPI(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		e := setupDashboard(t, testutils.NewFakeBackend(t))

		rec := do(e, http.MethodGet, "/api/status", nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp handlers.StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Connected)
		assert.Equal(t, "API Status: ok (DB Connected: true)", resp.Status)
		assert.False(t, resp.CheckedAt.IsZero())
	})

	t.Run("disconnected", func(t *testing.T) {
		fake := testutils.NewFakeBackend(t)
		fake.SetHealth(http.StatusBadGateway, "")
		e := setupDashboard(t, fake)

		rec := do(e, http.MethodGet, "/api/status", nil, nil)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var resp handlers.StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Connected)
		assert.Contains(t, resp.Error, "HTTP error! status: 502")
	})
}
