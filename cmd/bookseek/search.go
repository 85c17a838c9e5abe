package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/bookseek"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.All {
		results := deps.Sources.SearchAll(deps.Ctx, c.Query, c.Category)
		for _, prefix := range deps.Sources.List() {
			if err := c.print(deps, prefix, results[prefix]); err != nil {
				return err
			}
		}
		return nil
	}

	source := deps.Sources.Get(c.Source)
	if source == nil {
		return bookseek.Errorf(bookseek.ENOTFOUND, "unknown source %q", c.Source)
	}

	return c.print(deps, c.Source, source.Search(deps.Ctx, c.Query, c.Category))
}

// print writes one source's records to stdout, or the source's last error
// to stderr when there are none.
func (c *SearchCmd) print(deps *Dependencies, prefix string, records []bookseek.Record) error {
	if len(records) == 0 {
		reason := "no results"
		if source := deps.Sources.Get(prefix); source != nil && source.LastError() != "" {
			reason = source.LastError()
		}
		fmt.Fprintf(deps.Stderr, "%s: %s\n", prefix, reason)
		return nil
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s bytes  %s\n", prefix, r.Title, r.Size, r.Link)
	}
	return nil
}
