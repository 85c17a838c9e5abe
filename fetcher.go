package bookseek

import (
	"context"
	"time"
)

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch navigates to the URL, waits until waitSelector matches an
	// element (pages render their results client-side), and returns the
	// rendered HTML. timeout bounds the whole operation in addition to
	// any deadline already carried by ctx.
	Fetch(ctx context.Context, url, waitSelector string, timeout time.Duration) (string, error)

	// Close releases fetch resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// ProxyFetcher retrieves HTML through an anti-bot solving proxy. It is the
// secondary strategy, attempted only after the primary Fetcher fails.
type ProxyFetcher interface {
	// FetchViaProxy requests the URL through the proxy and returns the
	// solved page HTML. timeout is the proxy's challenge-solving budget.
	FetchViaProxy(ctx context.Context, url string, timeout time.Duration) (string, error)
}
