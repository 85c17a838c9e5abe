package main

import (
	"fmt"
	"strings"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	prefixes := deps.Sources.List()
	if len(prefixes) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources registered.")
		return nil
	}

	for _, prefix := range prefixes {
		source := deps.Sources.Get(prefix)
		fmt.Fprintf(deps.Stdout, "%s  categories=%s  test_query=%q\n",
			prefix, strings.Join(source.Categories(), ","), source.TestQuery())
	}

	return nil
}
