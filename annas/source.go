// Package annas implements the Anna's Archive search source.
package annas

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/bookseek"
)

const (
	// BaseURL is the site root; root-relative result links are resolved
	// against it.
	BaseURL = "https://annas-archive.org"

	// Prefix identifies this source to the plugin host and is stamped on
	// every record.
	Prefix = "annas_archive"

	// testQuery is a query known to return results on a healthy site.
	testQuery = "fiction"

	// waitSelector is satisfied once the result links have rendered.
	waitSelector = "a[href]"

	fetchTimeout = 45 * time.Second
	proxyTimeout = 60 * time.Second
)

// categories is the category set this source serves (books/eBook).
var categories = []string{"7020"}

// DetailPattern matches detail-page URLs and captures the MD5 identifier
// used for deduplication.
var DetailPattern = regexp.MustCompile(`/md5/([a-f0-9]+)`)

// Ensure Source implements bookseek.Source at compile time.
var _ bookseek.Source = (*Source)(nil)

// Source searches annas-archive.org for ebooks. The site renders results
// client-side and sits behind anti-bot protection, so the primary fetch
// uses browser automation with an anti-bot solving proxy as fallback.
//
// Concurrent Search calls are safe: all parse state is local to the call
// and the last-error state is guarded.
type Source struct {
	fetcher bookseek.Fetcher
	proxy   bookseek.ProxyFetcher
	parser  bookseek.Parser
	logger  *slog.Logger

	mu      sync.Mutex
	lastErr string
}

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger used for fallback and per-record drop logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// NewSource creates the Anna's Archive source from its collaborators.
func NewSource(fetcher bookseek.Fetcher, proxy bookseek.ProxyFetcher, parser bookseek.Parser, opts ...Option) *Source {
	s := &Source{
		fetcher: fetcher,
		proxy:   proxy,
		parser:  parser,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search runs one query against the site. Failures never propagate to the
// caller: the result list is empty and the reason is available from
// LastError until the next call.
func (s *Source) Search(ctx context.Context, query, category string) []bookseek.Record {
	s.setLastError("")

	if strings.TrimSpace(query) == "" {
		s.setLastError("Missing query")
		return nil
	}

	searchURL := BaseURL + "/search?" + url.Values{"q": {query}}.Encode()

	html, err := s.fetcher.Fetch(ctx, searchURL, waitSelector, fetchTimeout)
	if err != nil {
		s.logger.Warn("primary fetch failed, falling back to solver",
			"source", Prefix,
			"err", err,
		)
		html, err = s.proxy.FetchViaProxy(ctx, searchURL, proxyTimeout)
		if err != nil {
			s.setLastError(err.Error())
			return nil
		}
	}

	books, err := s.parser.Parse(html)
	if err != nil {
		s.setLastError(err.Error())
		return nil
	}

	var records []bookseek.Record
	for _, book := range books {
		record, err := bookseek.Normalize(book, category, Prefix)
		if err != nil {
			s.logger.Warn("dropping record",
				"source", Prefix,
				"id", book.ID,
				"err", err,
			)
			continue
		}
		records = append(records, record)
	}

	// Distinguish "fetch ok, nothing parsed" from fetch failure.
	if len(records) == 0 {
		s.setLastError("No results returned")
	}

	return records
}

// TestQuery returns the self-test query for this source.
func (s *Source) TestQuery() string {
	return testQuery
}

// Prefix returns the source identifier.
func (s *Source) Prefix() string {
	return Prefix
}

// Categories returns the category tokens this source serves.
func (s *Source) Categories() []string {
	return append([]string(nil), categories...)
}

// LastError describes why the most recent Search returned no results, or
// "" if it produced results.
func (s *Source) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Source) setLastError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
}
