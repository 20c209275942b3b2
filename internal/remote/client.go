package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muurk/weather/internal/logging"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// maxBodySize caps how much of a response body is read
	maxBodySize = 4 << 20
)

// JSONClient performs GET requests against a JSON API and decodes the reply
type JSONClient struct {
	// Service names the remote service in errors and logs
	Service string

	// UserAgent is sent with every request (Nominatim requires one)
	UserAgent string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewJSONClient creates a client for the named service
func NewJSONClient(service, userAgent string, timeout time.Duration) *JSONClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &JSONClient{
		Service:    service,
		UserAgent:  userAgent,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// GetJSON requests rawURL and decodes the JSON body into out
func (c *JSONClient) GetJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return NewNetworkError(c.Service, "failed to create GET request", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	logging.LogHTTPRequest(c.Service, req.Method, rawURL)
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError(c.Service, "GET request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return NewNetworkError(c.Service, "failed to read response body", err)
	}

	logging.LogHTTPResponse(c.Service, resp.StatusCode, len(body), time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return NewHTTPError(c.Service, resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return NewParseError(c.Service, "failed to parse JSON response", err)
	}

	return nil
}
