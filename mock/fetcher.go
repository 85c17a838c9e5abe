package mock

import (
	"context"
	"time"

	"github.com/fwojciec/bookseek"
)

var _ bookseek.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of bookseek.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url, waitSelector string, timeout time.Duration) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url, waitSelector string, timeout time.Duration) (string, error) {
	return f.FetchFn(ctx, url, waitSelector, timeout)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ bookseek.ProxyFetcher = (*ProxyFetcher)(nil)

// ProxyFetcher is a mock implementation of bookseek.ProxyFetcher.
type ProxyFetcher struct {
	FetchViaProxyFn func(ctx context.Context, url string, timeout time.Duration) (string, error)
}

func (f *ProxyFetcher) FetchViaProxy(ctx context.Context, url string, timeout time.Duration) (string, error) {
	return f.FetchViaProxyFn(ctx, url, timeout)
}
