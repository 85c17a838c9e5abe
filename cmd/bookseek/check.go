package main

import (
	"fmt"

	"github.com/fwojciec/bookseek"
)

// Run executes the check command. Each source runs its own self-test query;
// a source passes when the query produces at least one record.
func (c *CheckCmd) Run(deps *Dependencies) error {
	prefixes := deps.Sources.List()
	if len(prefixes) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources registered.")
		return nil
	}

	failed := 0
	for _, prefix := range prefixes {
		source := deps.Sources.Get(prefix)
		records := source.Search(deps.Ctx, source.TestQuery(), c.Category)
		if len(records) > 0 {
			fmt.Fprintf(deps.Stdout, "ok    %s  %d records\n", prefix, len(records))
			continue
		}
		failed++
		fmt.Fprintf(deps.Stdout, "fail  %s  %s\n", prefix, source.LastError())
	}

	if failed > 0 {
		return bookseek.Errorf(bookseek.EUNAVAILABLE, "%d of %d sources failed self-test", failed, len(prefixes))
	}
	return nil
}
