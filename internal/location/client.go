package location

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/muurk/weather/internal/remote"
)

const (
	// ServiceName identifies the geocoding service in errors and logs
	ServiceName = "geocoding"

	// DefaultLimit is the maximum number of candidates requested
	DefaultLimit = 5

	// DefaultInterval is the minimum spacing between requests
	DefaultInterval = time.Second
)

// Resolver looks up candidate locations for a place name
type Resolver interface {
	Search(ctx context.Context, query string) ([]Location, error)
}

// Client is a Nominatim search API client
type Client struct {
	// BaseURL is the service root (e.g., "https://nominatim.openstreetmap.org")
	BaseURL string

	// Limit is the maximum number of candidates returned
	Limit int

	http    *remote.JSONClient
	limiter *rate.Limiter
}

// NewClient creates a geocoding client
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Limit:   DefaultLimit,
		http:    remote.NewJSONClient(ServiceName, userAgent, timeout),
		limiter: rate.NewLimiter(rate.Every(DefaultInterval), 1),
	}
}

// SetRateLimit replaces the request throttle. rate.Inf disables it.
func (c *Client) SetRateLimit(limit rate.Limit) {
	c.limiter = rate.NewLimiter(limit, 1)
}

// Search returns candidate locations for query, best match first
func (c *Client) Search(ctx context.Context, query string) ([]Location, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, remote.ClassifyNetworkError(ctx.Err(), ServiceName)
		}
		return nil, &remote.Error{
			Type:    remote.ErrTypeRateLimited,
			Service: ServiceName,
			Message: "request throttle",
			Err:     err,
		}
	}

	var results []Location
	if err := c.http.GetJSON(ctx, c.searchURL(query), &results); err != nil {
		return nil, err
	}

	// Drop entries the service returned without coordinates
	candidates := results[:0]
	for _, loc := range results {
		if loc.Lat == "" || loc.Lon == "" {
			continue
		}
		candidates = append(candidates, loc)
	}

	return candidates, nil
}

func (c *Client) searchURL(query string) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	limit := c.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	params.Set("limit", strconv.Itoa(limit))
	return c.BaseURL + "/search?" + params.Encode()
}
