package main

import (
	"context"
	"io"

	"github.com/fwojciec/bookseek"
)

// Dependencies holds the services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Sources *bookseek.Registry
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search  SearchCmd  `cmd:"" help:"Search a source and print standardized records"`
	Sources SourcesCmd `cmd:"" help:"List registered sources"`
	Check   CheckCmd   `cmd:"" help:"Run each source's self-test query"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string `arg:"" help:"Search query"`
	Source   string `short:"s" default:"annas_archive" help:"Source prefix to search"`
	Category string `short:"c" default:"7020" help:"Category token passed through to records"`
	All      bool   `help:"Search every registered source"`
	JSON     bool   `help:"Emit records as JSON"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Category string `short:"c" default:"7020" help:"Category token for the self-test searches"`
}
