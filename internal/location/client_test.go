package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/muurk/weather/internal/remote"
)

const mockSearchResponse = `[
 {"place_id":1,"lat":"39.7392364","lon":"-104.984862","display_name":"Denver, Colorado, United States"},
 {"place_id":2,"lat":"","lon":"","display_name":"Broken"},
 {"place_id":3,"lat":"40.44","lon":"-79.99","display_name":"Denver, Pennsylvania, United States"}
]`

func newTestClient(url string) *Client {
	client := NewClient(url, "weather-test/1.0", time.Second)
	client.SetRateLimit(rate.Inf)
	return client
}

func TestSearch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("Path = %s, want /search", r.URL.Path)
		}
		if q := r.URL.Query().Get("q"); q != "Denver" {
			t.Errorf("q = %q, want Denver", q)
		}
		if f := r.URL.Query().Get("format"); f != "jsonv2" {
			t.Errorf("format = %q, want jsonv2", f)
		}
		w.Write([]byte(mockSearchResponse))
	}))
	defer server.Close()

	results, err := newTestClient(server.URL).Search(context.Background(), "Denver")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2 (entry without coordinates dropped)", len(results))
	}
	if results[0].DisplayName != "Denver, Colorado, United States" {
		t.Errorf("results[0].DisplayName = %q", results[0].DisplayName)
	}
	if results[0].Lat != "39.7392364" || results[0].Lon != "-104.984862" {
		t.Errorf("results[0] coords = %s,%s", results[0].Lat, results[0].Lon)
	}
}

func TestSearch_EmptyIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	results, err := newTestClient(server.URL).Search(context.Background(), "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestSearch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Search(context.Background(), "Paris")
	if !remote.IsHTTPError(err) {
		t.Errorf("Search() error = %v, want HTTP error", err)
	}
}

func TestSearch_CanceledWhileThrottled(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "", time.Second)
	client.SetRateLimit(rate.Every(time.Hour))

	// First token is free, the second would wait an hour
	client.limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "Paris")
	if !remote.IsCanceled(err) {
		t.Errorf("Search() error = %v, want canceled", err)
	}
}

func TestSearchURLEncodesQuery(t *testing.T) {
	client := NewClient("https://example.test/", "", time.Second)
	got := client.searchURL("São Paulo")
	want := "https://example.test/search?format=jsonv2&limit=5&q=S%C3%A3o+Paulo"
	if got != want {
		t.Errorf("searchURL() = %s, want %s", got, want)
	}
}
