package fetch

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
)

// CircuitBreakerFetcher wraps a Fetcher with per-host circuit breakers so a
// failing registry mirror cannot stall resolution of specifiers served by
// healthy hosts.
type CircuitBreakerFetcher struct {
	fetcher  *Fetcher
	breakers map[string]*circuit.Breaker
	mu       sync.RWMutex
}

// NewCircuitBreakerFetcher creates a circuit breaker wrapper for a fetcher.
func NewCircuitBreakerFetcher(f *Fetcher) *CircuitBreakerFetcher {
	return &CircuitBreakerFetcher{
		fetcher:  f,
		breakers: make(map[string]*circuit.Breaker),
	}
}

// getBreaker returns or creates the circuit breaker for a registry host.
func (cbf *CircuitBreakerFetcher) getBreaker(host string) *circuit.Breaker {
	cbf.mu.RLock()
	breaker, exists := cbf.breakers[host]
	cbf.mu.RUnlock()

	if exists {
		return breaker
	}

	cbf.mu.Lock()
	defer cbf.mu.Unlock()

	// Double-check after acquiring write lock
	if breaker, exists := cbf.breakers[host]; exists {
		return breaker
	}

	// Trips after 5 consecutive failures, reopening on an exponential
	// schedule between 30s and 5m.
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 30 * time.Second
	expBackoff.MaxInterval = 5 * time.Minute
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	breaker = circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(5),
	})

	cbf.breakers[host] = breaker
	return breaker
}

// Fetch wraps the underlying fetcher's Fetch with circuit breaker logic.
func (cbf *CircuitBreakerFetcher) Fetch(ctx context.Context, fetchURL string) (*Artifact, error) {
	breaker := cbf.getBreaker(breakerHost(fetchURL))

	if !breaker.Ready() {
		return nil, fmt.Errorf("circuit breaker open for %s: %w", breakerHost(fetchURL), ErrUpstreamDown)
	}

	var artifact *Artifact
	err := breaker.Call(func() error {
		var fetchErr error
		artifact, fetchErr = cbf.fetcher.Fetch(ctx, fetchURL)
		return fetchErr
	}, 0)
	if err != nil {
		return nil, err
	}
	return artifact, nil
}

// FetchJSON wraps the underlying fetcher's FetchJSON with circuit breaker logic.
func (cbf *CircuitBreakerFetcher) FetchJSON(ctx context.Context, docURL string, out any) error {
	breaker := cbf.getBreaker(breakerHost(docURL))

	if !breaker.Ready() {
		return fmt.Errorf("circuit breaker open for %s: %w", breakerHost(docURL), ErrUpstreamDown)
	}

	return breaker.Call(func() error {
		return cbf.fetcher.FetchJSON(ctx, docURL, out)
	}, 0)
}

// breakerHost extracts the host used to group requests under one breaker.
func breakerHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		// Fallback to simple truncation
		if len(rawURL) > 50 {
			return rawURL[:50]
		}
		return rawURL
	}
	return parsed.Host
}
