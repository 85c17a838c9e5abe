// Package slog provides logging decorators for bookseek interfaces.
package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/bookseek"
)

// Ensure LoggingFetcher implements bookseek.Fetcher.
var _ bookseek.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with fetch logging. The logged digest is a
// fast hash of the returned HTML, which makes layout drift between runs of
// the same query visible in logs.
type LoggingFetcher struct {
	next   bookseek.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next bookseek.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the fetch outcome and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url, waitSelector string, timeout time.Duration) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"wait_selector", waitSelector,
			"bytes", len(html),
			"digest", fmt.Sprintf("%016x", xxhash.Sum64String(html)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url, waitSelector, timeout)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingProxyFetcher implements bookseek.ProxyFetcher.
var _ bookseek.ProxyFetcher = (*LoggingProxyFetcher)(nil)

// LoggingProxyFetcher wraps a ProxyFetcher with fetch logging.
type LoggingProxyFetcher struct {
	next   bookseek.ProxyFetcher
	logger *slog.Logger
}

// NewLoggingProxyFetcher creates a new LoggingProxyFetcher.
func NewLoggingProxyFetcher(next bookseek.ProxyFetcher, logger *slog.Logger) *LoggingProxyFetcher {
	return &LoggingProxyFetcher{next: next, logger: logger}
}

// FetchViaProxy logs the fetch outcome and delegates to the wrapped fetcher.
func (f *LoggingProxyFetcher) FetchViaProxy(ctx context.Context, url string, timeout time.Duration) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("proxy fetch",
			"url", url,
			"bytes", len(html),
			"digest", fmt.Sprintf("%016x", xxhash.Sum64String(html)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchViaProxy(ctx, url, timeout)
}
