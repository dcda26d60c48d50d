package testutils

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

const (
	HealthyBody = `{"status":"ok","db_connected":true}`
	OneLeadBody = `[{"id":7,"name":"Ada Lovelace","job_title":"CTO","company":"Analytical","inferred_email":"ada@analytical.io","verified_status":"valid","verification_details":"mx ok"}]`
)

// FakeBackend stands in for the scraping service. Responses can be changed
// between requests.
type FakeBackend struct {
	URL string

	mu           sync.Mutex
	healthStatus int
	healthBody   string
	scrapeStatus int
	scrapeBody   string
	lastTarget   string

	requests    atomic.Int32
	scrapeCalls atomic.Int32
}

// NewFakeBackend starts a healthy backend that returns no leads. It is
// closed when the test ends.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	f := &FakeBackend{
		healthStatus: http.StatusOK,
		healthBody:   HealthyBody,
		scrapeStatus: http.StatusOK,
		scrapeBody:   `[]`,
	}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	f.URL = srv.URL
	return f
}

// SetHealth sets the health endpoint's response.
func (f *FakeBackend) SetHealth(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.healthStatus, f.healthBody = status, body
}

// SetScrape sets the scrape endpoint's response.
func (f *FakeBackend) SetScrape(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scrapeStatus, f.scrapeBody = status, body
}

// ScrapeCalls returns how many scrape requests reached the backend.
func (f *FakeBackend) ScrapeCalls() int {
	return int(f.scrapeCalls.Load())
}

// Requests returns how many requests of any kind reached the backend.
func (f *FakeBackend) Requests() int {
	return int(f.requests.Load())
}

// LastTarget returns the target_url of the latest scrape request.
func (f *FakeBackend) LastTarget() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastTarget
}

func (f *FakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/health":
		w.WriteHeader(f.healthStatus)
		w.Write([]byte(f.healthBody))
	case r.Method == http.MethodPost && r.URL.Path == "/scrapr-iq/":
		f.scrapeCalls.Add(1)
		f.lastTarget = r.URL.Query().Get("target_url")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.scrapeStatus)
		w.Write([]byte(f.scrapeBody))
	default:
		http.NotFound(w, r)
	}
}
