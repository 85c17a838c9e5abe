package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bookseek"
	"github.com/fwojciec/bookseek/annas"
	bsgoquery "github.com/fwojciec/bookseek/goquery"
	bshttp "github.com/fwojciec/bookseek/http"
	"github.com/fwojciec/bookseek/ratelimit"
	"github.com/fwojciec/bookseek/rod"
	bsslog "github.com/fwojciec/bookseek/slog"
)

// fetchRPS limits how often the browser fetcher hits a single site.
const fetchRPS = 0.5

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// FlareSolverr endpoint. Set before calling Run().
	SolverURL string

	// Browser fetcher shared by all sources; closed by Close.
	Fetcher bookseek.Fetcher

	// Registered sources, exposed for end-to-end testing.
	Registry *bookseek.Registry
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		SolverURL: os.Getenv("BOOKSEEK_SOLVER_URL"),
		Registry:  bookseek.NewRegistry(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the program with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Sources: m.Registry,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bookseek"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bookseek --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Only the commands that hit the network pay the browser startup cost;
	// the others get a fetcher that fails fast if anything tries to use it.
	var primary bookseek.Fetcher = unavailableFetcher{}
	if cmd == "search" || cmd == "check" {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		m.Fetcher = fetcher
		primary = bsslog.NewLoggingFetcher(ratelimit.NewFetcher(fetcher, fetchRPS), logger)
	}

	fallback := bsslog.NewLoggingProxyFetcher(bshttp.NewSolver(m.SolverURL), logger)

	m.Registry.Register(bsslog.NewLoggingSource(
		annas.NewSource(
			primary,
			fallback,
			bsgoquery.NewParser(annas.BaseURL, annas.DetailPattern, bsgoquery.WithLogger(logger)),
			annas.WithLogger(logger),
		),
		logger,
	))

	return kongCtx.Run(deps)
}

// unavailableFetcher serves commands that never fetch.
type unavailableFetcher struct{}

func (unavailableFetcher) Fetch(context.Context, string, string, time.Duration) (string, error) {
	return "", bookseek.Errorf(bookseek.EUNAVAILABLE, "browser fetcher not initialized")
}

func (unavailableFetcher) Close() error { return nil }
