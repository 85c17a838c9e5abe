package bookseek

import "context"

// Source is one searchable site exposed to the plugin host.
//
// Search never reports failure through its return value: invalid input,
// fetch failure, and parse failure all yield an empty result list, with the
// reason available from LastError until the next Search call. The host
// treats sources as best-effort and inspects the error state only for
// observability.
type Source interface {
	// Search runs one query and returns standardized records. The category
	// token is passed through to the records unchanged.
	Search(ctx context.Context, query, category string) []Record

	// TestQuery returns a query the host can use for self-testing the
	// source after registration.
	TestQuery() string

	// Prefix returns the stable identifier for this source, stamped on
	// every record it produces.
	Prefix() string

	// Categories returns the category tokens this source serves.
	Categories() []string

	// LastError describes why the most recent Search returned no results,
	// or "" if it produced results.
	LastError() string
}
