// Package ratelimit provides a rate-limited decorator for bookseek.Fetcher.
package ratelimit

import (
	"context"
	"time"

	"github.com/fwojciec/bookseek"
	"golang.org/x/time/rate"
)

// Ensure Fetcher implements bookseek.Fetcher at compile time.
var _ bookseek.Fetcher = (*Fetcher)(nil)

// Fetcher wraps another Fetcher with a token-bucket rate limit so repeated
// searches stay polite to the scraped site. The bucket has a burst of 1
// (no bursting allowed).
type Fetcher struct {
	next    bookseek.Fetcher
	limiter *rate.Limiter
}

// NewFetcher creates a rate-limited Fetcher allowing rps requests per second.
func NewFetcher(next bookseek.Fetcher, rps float64) *Fetcher {
	return &Fetcher{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Fetch blocks until the rate limit allows a request, then delegates.
// Returns an error if the context is canceled before the wait completes.
func (f *Fetcher) Fetch(ctx context.Context, url, waitSelector string, timeout time.Duration) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return f.next.Fetch(ctx, url, waitSelector, timeout)
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
