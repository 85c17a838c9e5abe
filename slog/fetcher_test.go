package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/bookseek"
	"github.com/fwojciec/bookseek/mock"
	bsslog "github.com/fwojciec/bookseek/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure decorators implement the domain interfaces.
var (
	_ bookseek.Fetcher      = (*bsslog.LoggingFetcher)(nil)
	_ bookseek.ProxyFetcher = (*bsslog.LoggingProxyFetcher)(nil)
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the outcome", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, _, _ string, _ time.Duration) (string, error) {
				return "<html></html>", nil
			},
		}

		buf := &bytes.Buffer{}
		f := bsslog.NewLoggingFetcher(next, newLogger(buf))

		html, err := f.Fetch(context.Background(), "https://example.com", "a[href]", time.Minute)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)

		out := buf.String()
		assert.Contains(t, out, "msg=fetch")
		assert.Contains(t, out, "url=https://example.com")
		assert.Contains(t, out, "bytes=13")
		assert.Contains(t, out, "digest=")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, _, _ string, _ time.Duration) (string, error) {
				return "", errors.New("browser crashed")
			},
		}

		buf := &bytes.Buffer{}
		f := bsslog.NewLoggingFetcher(next, newLogger(buf))

		_, err := f.Fetch(context.Background(), "https://example.com", "a[href]", time.Minute)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "browser crashed")
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		next := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		f := bsslog.NewLoggingFetcher(next, newLogger(&bytes.Buffer{}))

		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}

func TestLoggingProxyFetcher_FetchViaProxy(t *testing.T) {
	t.Parallel()

	next := &mock.ProxyFetcher{
		FetchViaProxyFn: func(_ context.Context, _ string, _ time.Duration) (string, error) {
			return "<html></html>", nil
		},
	}

	buf := &bytes.Buffer{}
	f := bsslog.NewLoggingProxyFetcher(next, newLogger(buf))

	html, err := f.FetchViaProxy(context.Background(), "https://example.com", time.Minute)

	require.NoError(t, err)
	assert.Equal(t, "<html></html>", html)
	assert.Contains(t, buf.String(), "msg=\"proxy fetch\"")
	assert.Contains(t, buf.String(), "url=https://example.com")
}
