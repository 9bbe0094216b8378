package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// API represents the external APIs we interact with
type API string

const (
	// APIOpenAI represents the chat-completions service
	APIOpenAI API = "openai"
)

// Limiter manages rate limits for different APIs. It is shared by every
// in-flight classification call so the run as a whole respects the
// completion service's request quota. Construct one with New and pass it
// down explicitly; tests inject their own limits.
type Limiter struct {
	limiters map[API]*rate.Limiter
	mu       sync.RWMutex
}

// New creates a limiter allowing requestsPerSecond calls to the
// completion service. A non-positive rate disables limiting.
func New(requestsPerSecond float64) *Limiter {
	l := &Limiter{
		limiters: make(map[API]*rate.Limiter),
	}

	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	l.limiters[APIOpenAI] = rate.NewLimiter(limit, 1)

	return l
}

// Wait blocks until the rate limiter permits an event for the given API
// It returns an error if the context is canceled before the event can proceed
func (l *Limiter) Wait(ctx context.Context, api API) error {
	l.mu.RLock()
	limiter, exists := l.limiters[api]
	l.mu.RUnlock()

	if !exists {
		// If no limiter exists for this API, allow the request without limiting
		return nil
	}

	return limiter.Wait(ctx)
}

// Allow reports whether an event for the given API may happen now
func (l *Limiter) Allow(api API) bool {
	l.mu.RLock()
	limiter, exists := l.limiters[api]
	l.mu.RUnlock()

	if !exists {
		// If no limiter exists for this API, allow the request
		return true
	}

	return limiter.Allow()
}
