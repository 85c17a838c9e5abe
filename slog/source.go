package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookseek"
	"github.com/google/uuid"
)

// Ensure LoggingSource implements bookseek.Source.
var _ bookseek.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with per-search logging. Each search is
// tagged with a request ID so summaries can be told apart when several
// sources run the same query concurrently.
type LoggingSource struct {
	next   bookseek.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next bookseek.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Search logs the search outcome and delegates to the wrapped source.
func (s *LoggingSource) Search(ctx context.Context, query, category string) (records []bookseek.Record) {
	requestID := uuid.NewString()
	defer func(begin time.Time) {
		s.logger.Info("search",
			"request_id", requestID,
			"source", s.next.Prefix(),
			"query", query,
			"category", category,
			"count", len(records),
			"last_error", s.next.LastError(),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Search(ctx, query, category)
}

// TestQuery delegates to the wrapped source.
func (s *LoggingSource) TestQuery() string {
	return s.next.TestQuery()
}

// Prefix delegates to the wrapped source.
func (s *LoggingSource) Prefix() string {
	return s.next.Prefix()
}

// Categories delegates to the wrapped source.
func (s *LoggingSource) Categories() []string {
	return s.next.Categories()
}

// LastError delegates to the wrapped source.
func (s *LoggingSource) LastError() string {
	return s.next.LastError()
}
