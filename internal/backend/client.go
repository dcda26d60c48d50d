// Package backend is the HTTP client for the external ScraprIQ service that
// performs scraping, lead inference and email verification.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/scrapriq/dashboard/internal/domain"
)

const (
	healthPath = "/health"
	scrapePath = "/scrapr-iq/"

	defaultTimeout = 60 * time.Second
)

// Client defines the backend operations the dashboard depends on.
type Client interface {
	Health(ctx context.Context) (*domain.HealthStatus, error)
	Scrape(ctx context.Context, targetURL string) ([]domain.Lead, error)
}

// APIError is returned when the backend responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Detail     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend: HTTP %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend: HTTP %d", e.StatusCode)
}

// Message is the user-facing text: the backend's detail when it sent one,
// otherwise a generic status line.
func (e *APIError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// Option configures the httpClient.
type Option func(*httpClient)

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout overrides the per-request timeout of the default *http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// httpClient implements Client using net/http.
type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) Client {
	c := &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Health(ctx context.Context) (*domain.HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return nil, eris.Wrap(err, "backend: health: create request")
	}

	var status domain.HealthStatus
	if err := c.do(req, &status); err != nil {
		return nil, eris.Wrap(err, "backend: health")
	}
	return &status, nil
}

func (c *httpClient) Scrape(ctx context.Context, targetURL string) ([]domain.Lead, error) {
	query := url.Values{"target_url": {targetURL}}
	endpoint := c.baseURL + scrapePath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, eris.Wrap(err, "backend: scrape: create request")
	}

	var leads []domain.Lead
	if err := c.do(req, &leads); err != nil {
		return nil, eris.Wrap(err, fmt.Sprintf("backend: scrape %s", targetURL))
	}
	if leads == nil {
		leads = []domain.Lead{}
	}
	return leads, nil
}

func (c *httpClient) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "execute request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(data),
			Body:       string(data),
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return eris.Wrap(err, "decode response")
	}
	return nil
}

// parseDetail extracts a string "detail" field from an error body. Bodies
// that are not JSON, or whose detail is not a string, yield "".
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return ""
	}
	return detail
}
