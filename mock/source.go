package mock

import (
	"context"

	"github.com/fwojciec/bookseek"
)

var _ bookseek.Source = (*Source)(nil)

// Source is a mock implementation of bookseek.Source.
type Source struct {
	SearchFn     func(ctx context.Context, query, category string) []bookseek.Record
	TestQueryFn  func() string
	PrefixFn     func() string
	CategoriesFn func() []string
	LastErrorFn  func() string
}

func (s *Source) Search(ctx context.Context, query, category string) []bookseek.Record {
	return s.SearchFn(ctx, query, category)
}

func (s *Source) TestQuery() string {
	return s.TestQueryFn()
}

func (s *Source) Prefix() string {
	return s.PrefixFn()
}

func (s *Source) Categories() []string {
	return s.CategoriesFn()
}

func (s *Source) LastError() string {
	return s.LastErrorFn()
}
