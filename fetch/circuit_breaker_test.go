package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCircuitBreakerFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/gzip")
		_, _ = w.Write([]byte("tarball"))
	}))
	defer server.Close()

	cbf := NewCircuitBreakerFetcher(NewFetcher())

	artifact, err := cbf.Fetch(context.Background(), server.URL+"/pkg-1.0.0.tgz")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	defer func() { _ = artifact.Body.Close() }()

	body, _ := io.ReadAll(artifact.Body)
	if string(body) != "tarball" {
		t.Errorf("body = %q, want tarball", string(body))
	}
}

func TestCircuitBreakerFetchJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"lodash"}`))
	}))
	defer server.Close()

	cbf := NewCircuitBreakerFetcher(NewFetcher())

	var doc struct {
		Name string `json:"name"`
	}
	if err := cbf.FetchJSON(context.Background(), server.URL+"/lodash", &doc); err != nil {
		t.Fatalf("FetchJSON failed: %v", err)
	}
	if doc.Name != "lodash" {
		t.Errorf("Name = %q, want lodash", doc.Name)
	}
}

func TestCircuitBreakerTrips(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cbf := NewCircuitBreakerFetcher(NewFetcher(WithMaxRetries(0), WithBaseDelay(time.Millisecond)))

	// Trip the breaker with consecutive failures.
	for i := 0; i < 6; i++ {
		_, _ = cbf.Fetch(context.Background(), server.URL+"/x")
	}

	_, err := cbf.Fetch(context.Background(), server.URL+"/x")
	if !errors.Is(err, ErrUpstreamDown) {
		t.Errorf("Fetch with open breaker = %v, want ErrUpstreamDown", err)
	}
}

func TestBreakerHost(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://registry.npmjs.org/lodash/-/lodash-4.17.21.tgz", "registry.npmjs.org"},
		{"https://example.com:8080/path", "example.com:8080"},
		{"not-a-valid-url", "not-a-valid-url"},
	}

	for _, tt := range tests {
		if got := breakerHost(tt.url); got != tt.want {
			t.Errorf("breakerHost(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
