package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jobsathi/jobsathi/internal/model"
)

// ProviderRateLimiter enforces a minimum delay between requests to the
// same job-search provider. Shared across searches in server mode so
// back-to-back HTTP requests cannot hammer one provider.
type ProviderRateLimiter struct {
	mu        sync.Mutex
	lastCall  map[string]time.Time // key: provider name
	minDelay  time.Duration
	overrides map[string]time.Duration // per-provider overrides
}

// NewProviderRateLimiter creates a rate limiter that enforces minDelay
// between consecutive requests to the same provider. overrides may be
// nil.
func NewProviderRateLimiter(minDelay time.Duration, overrides map[string]time.Duration) *ProviderRateLimiter {
	return &ProviderRateLimiter{
		lastCall:  make(map[string]time.Time),
		minDelay:  minDelay,
		overrides: overrides,
	}
}

func (r *ProviderRateLimiter) delayFor(provider string) time.Duration {
	if d, ok := r.overrides[provider]; ok {
		return d
	}
	return r.minDelay
}

// Wait blocks until enough time has passed since the last request to
// the given provider. Returns an error if the context is cancelled
// while waiting.
func (r *ProviderRateLimiter) Wait(ctx context.Context, provider string) error {
	r.mu.Lock()
	last, ok := r.lastCall[provider]
	now := time.Now()

	if !ok {
		// First request for this provider, no wait needed.
		r.lastCall[provider] = now
		r.mu.Unlock()
		return nil
	}

	elapsed := now.Sub(last)
	if elapsed >= r.delayFor(provider) {
		// Enough time has passed, proceed immediately.
		r.lastCall[provider] = now
		r.mu.Unlock()
		return nil
	}

	// Need to wait for the remainder.
	remaining := r.delayFor(provider) - elapsed
	r.mu.Unlock()

	select {
	case <-ctx.Done():
		return fmt.Errorf("rate limiter wait for %s: %w", provider, ctx.Err())
	case <-time.After(remaining):
	}

	// Record the actual time after waiting.
	r.mu.Lock()
	r.lastCall[provider] = time.Now()
	r.mu.Unlock()

	return nil
}

// RateLimitedProvider is a decorator that enforces provider-level rate
// limiting before delegating to the wrapped Provider.
type RateLimitedProvider struct {
	inner   model.Provider
	limiter *ProviderRateLimiter
}

// NewRateLimitedProvider wraps a Provider with rate limiting. All
// wrapped providers should share the same limiter instance.
func NewRateLimitedProvider(inner model.Provider, limiter *ProviderRateLimiter) *RateLimitedProvider {
	return &RateLimitedProvider{
		inner:   inner,
		limiter: limiter,
	}
}

// Name reports the wrapped provider's name.
func (p *RateLimitedProvider) Name() string { return p.inner.Name() }

// Fetch waits for the rate limiter to allow a request, then delegates
// to the wrapped provider.
func (p *RateLimitedProvider) Fetch(ctx context.Context, keywords []string, location string) ([]model.JobRecord, error) {
	if err := p.limiter.Wait(ctx, p.inner.Name()); err != nil {
		return nil, err
	}
	return p.inner.Fetch(ctx, keywords, location)
}
