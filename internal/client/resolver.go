package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"
)

// ErrUnavailable means every configured endpoint failed its probe.
var ErrUnavailable = errors.New("no reachable api endpoint")

// probeTimeout bounds each individual endpoint probe.
const probeTimeout = 5 * time.Second

// Resolver finds a working API base URL by probing a prioritized list of
// candidates. The first success is cached for the resolver's lifetime;
// after a total failure the resolver stays unavailable (callers switch to
// sample data for the rest of the session, no re-probe).
//
// All state lives on the resolver itself, never in package globals, so
// tests can run resolvers side by side.
type Resolver struct {
	endpoints []string
	client    *http.Client

	mu      sync.Mutex
	baseURL string
	failed  bool
}

func NewResolver(endpoints []string) *Resolver {
	return &Resolver{
		endpoints: endpoints,
		client:    &http.Client{Timeout: probeTimeout},
	}
}

// BaseURL returns the cached base URL, probing on first use. Probing is
// serialized under the mutex so concurrent callers cannot race a second
// probe sweep.
func (r *Resolver) BaseURL(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.baseURL != "" {
		return r.baseURL, nil
	}
	if r.failed {
		return "", ErrUnavailable
	}

	for _, endpoint := range r.endpoints {
		if r.probe(ctx, endpoint) {
			r.baseURL = endpoint
			return endpoint, nil
		}
	}

	r.failed = true
	return "", ErrUnavailable
}

// probe issues a minimal list request against one candidate.
func (r *Resolver) probe(ctx context.Context, base string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/Books?pageNumber=1&pageSize=1", nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}
