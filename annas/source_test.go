package annas_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/bookseek"
	"github.com/fwojciec/bookseek/annas"
	bsgoquery "github.com/fwojciec/bookseek/goquery"
	"github.com/fwojciec/bookseek/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Source implements bookseek.Source.
var _ bookseek.Source = (*annas.Source)(nil)

func staticFetcher(html string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, _, _ string, _ time.Duration) (string, error) {
			return html, nil
		},
	}
}

func failingFetcher(err error) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, _, _ string, _ time.Duration) (string, error) {
			return "", err
		},
	}
}

func failingProxy(err error) *mock.ProxyFetcher {
	return &mock.ProxyFetcher{
		FetchViaProxyFn: func(_ context.Context, _ string, _ time.Duration) (string, error) {
			return "", err
		},
	}
}

func unusedProxy(t *testing.T) *mock.ProxyFetcher {
	t.Helper()
	return &mock.ProxyFetcher{
		FetchViaProxyFn: func(_ context.Context, _ string, _ time.Duration) (string, error) {
			t.Fatal("proxy must not be called")
			return "", nil
		},
	}
}

func realParser() bookseek.Parser {
	return bsgoquery.NewParser(annas.BaseURL, annas.DetailPattern)
}

func TestSource_Search(t *testing.T) {
	t.Parallel()

	t.Run("returns standardized records on success", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div><a href="/md5/abc123">Great Book</a> by Jane Doe | 2.5MB | epub | English</div>
</body></html>`

		source := annas.NewSource(staticFetcher(html), unusedProxy(t), realParser())

		records := source.Search(context.Background(), "fiction", "7020")

		require.Len(t, records, 1)
		assert.Equal(t, "https://annas-archive.org/md5/abc123", records[0].Link)
		assert.Equal(t, "Great Book - Jane Doe (EPUB)", records[0].Title)
		assert.Equal(t, "Great Book | Jane Doe | English | EPUB", records[0].Description)
		assert.Equal(t, "2621440", records[0].Size)
		assert.Equal(t, "7020", records[0].Category)
		assert.Equal(t, "annas_archive", records[0].Prefix)
		assert.Empty(t, source.LastError())
	})

	t.Run("requests the search URL for the query", func(t *testing.T) {
		t.Parallel()

		var gotURL, gotSelector string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url, waitSelector string, _ time.Duration) (string, error) {
				gotURL = url
				gotSelector = waitSelector
				return "<html><body></body></html>", nil
			},
		}

		source := annas.NewSource(fetcher, unusedProxy(t), realParser())
		source.Search(context.Background(), "war & peace", "7020")

		assert.Equal(t, "https://annas-archive.org/search?q=war+%26+peace", gotURL)
		assert.Equal(t, "a[href]", gotSelector)
	})

	t.Run("empty query returns nothing and records the reason", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _, _ string, _ time.Duration) (string, error) {
				t.Fatal("fetcher must not be called for an empty query")
				return "", nil
			},
		}

		source := annas.NewSource(fetcher, unusedProxy(t), realParser())

		records := source.Search(context.Background(), "", "7020")

		assert.Empty(t, records)
		assert.Equal(t, "Missing query", source.LastError())
	})

	t.Run("whitespace-only query is treated as missing", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _, _ string, _ time.Duration) (string, error) {
				t.Fatal("fetcher must not be called for a blank query")
				return "", nil
			},
		}

		source := annas.NewSource(fetcher, unusedProxy(t), realParser())

		records := source.Search(context.Background(), "   \t", "7020")

		assert.Empty(t, records)
		assert.Equal(t, "Missing query", source.LastError())
	})

	t.Run("falls back to the proxy when the primary fetch fails", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div><a href="/md5/abc123">Great Book</a></div>
</body></html>`
		proxy := &mock.ProxyFetcher{
			FetchViaProxyFn: func(_ context.Context, _ string, _ time.Duration) (string, error) {
				return html, nil
			},
		}

		source := annas.NewSource(failingFetcher(errors.New("browser crashed")), proxy, realParser())

		records := source.Search(context.Background(), "fiction", "7020")

		require.Len(t, records, 1)
		assert.Empty(t, source.LastError())
	})

	t.Run("records the fallback failure when both strategies fail", func(t *testing.T) {
		t.Parallel()

		source := annas.NewSource(
			failingFetcher(errors.New("browser crashed")),
			failingProxy(errors.New("flaresolverr unreachable")),
			realParser(),
		)

		records := source.Search(context.Background(), "fiction", "7020")

		assert.Empty(t, records)
		assert.Equal(t, "flaresolverr unreachable", source.LastError())
	})

	t.Run("distinguishes empty results from fetch failure", func(t *testing.T) {
		t.Parallel()

		source := annas.NewSource(staticFetcher("<html><body></body></html>"), unusedProxy(t), realParser())

		records := source.Search(context.Background(), "fiction", "7020")

		assert.Empty(t, records)
		assert.Equal(t, "No results returned", source.LastError())
	})

	t.Run("records a parse failure", func(t *testing.T) {
		t.Parallel()

		parser := &mock.Parser{
			ParseFn: func(_ string) ([]bookseek.Book, error) {
				return nil, bookseek.Errorf(bookseek.EINVALID, "failed to parse HTML")
			},
		}

		source := annas.NewSource(staticFetcher("<html>"), unusedProxy(t), parser)

		records := source.Search(context.Background(), "fiction", "7020")

		assert.Empty(t, records)
		assert.Equal(t, "failed to parse HTML", source.LastError())
	})

	t.Run("drops invalid raw records without aborting the batch", func(t *testing.T) {
		t.Parallel()

		parser := &mock.Parser{
			ParseFn: func(_ string) ([]bookseek.Book, error) {
				return []bookseek.Book{
					{ID: "aaa111", Link: "https://annas-archive.org/md5/aaa111", Title: "Good Record"},
					{ID: "bbb222", Link: "", Title: "Missing Link"}, // dropped
					{ID: "ccc333", Link: "https://annas-archive.org/md5/ccc333", Title: "Another Good One"},
				}, nil
			},
		}

		source := annas.NewSource(staticFetcher("<html>"), unusedProxy(t), parser)

		records := source.Search(context.Background(), "fiction", "7020")

		require.Len(t, records, 2)
		assert.Equal(t, "Good Record", records[0].BookTitle)
		assert.Equal(t, "Another Good One", records[1].BookTitle)
	})

	t.Run("last error resets between searches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div><a href="/md5/abc123">Great Book</a></div>
</body></html>`

		source := annas.NewSource(staticFetcher(html), unusedProxy(t), realParser())

		source.Search(context.Background(), "", "7020")
		assert.Equal(t, "Missing query", source.LastError())

		source.Search(context.Background(), "fiction", "7020")
		assert.Empty(t, source.LastError())
	})

	t.Run("identical input yields identical output", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div><a href="/md5/aaa111">Book One</a> by Jane Doe | 2.5MB | epub | English</div>
<div><a href="/md5/bbb222">Book Two</a> by John Roe | 700 KB | pdf | German</div>
</body></html>`

		source := annas.NewSource(staticFetcher(html), unusedProxy(t), realParser())

		first := source.Search(context.Background(), "fiction", "7020")
		second := source.Search(context.Background(), "fiction", "7020")

		assert.Equal(t, first, second)
	})
}

func TestSource_HostContract(t *testing.T) {
	t.Parallel()

	source := annas.NewSource(staticFetcher(""), unusedProxy(t), realParser())

	assert.Equal(t, "annas_archive", source.Prefix())
	assert.Equal(t, "fiction", source.TestQuery())
	assert.Equal(t, []string{"7020"}, source.Categories())
	assert.Empty(t, source.LastError())
}
