package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ngoscan"
	"github.com/fwojciec/ngoscan/excelize"
	"github.com/fwojciec/ngoscan/goquery"
	ngohttp "github.com/fwojciec/ngoscan/http"
	"github.com/fwojciec/ngoscan/scrape"
	ngoslog "github.com/fwojciec/ngoscan/slog"
	"github.com/fwojciec/ngoscan/yaml"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program. The service fields are nil in normal
// operation and exist so end-to-end tests can inject fakes.
type Main struct {
	Loader  ngoscan.ConfigLoader
	Fetcher ngoscan.Fetcher
	Writer  ngoscan.RecordWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ngoscan"),
		kong.Description("Extract NGO contact records from configured web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ngoscan --help' to see available commands")
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

	deps.Logger = slog.New(slog.NewTextHandler(stderr, nil)).With("run", uuid.NewString())

	deps.Loader = m.Loader
	if deps.Loader == nil {
		deps.Loader = yaml.NewLoader()
	}

	if cmd == "scrape" {
		fetcher := m.Fetcher
		if fetcher == nil {
			opts := []ngohttp.Option{ngohttp.WithTimeout(cli.Scrape.Timeout)}
			if cli.Scrape.UserAgent != "" {
				opts = append(opts, ngohttp.WithUserAgent(cli.Scrape.UserAgent))
			}
			fetcher = ngohttp.NewFetcher(opts...)
		}
		if cli.Scrape.Verbose {
			fetcher = ngoslog.NewLoggingFetcher(fetcher, deps.Logger)
		}
		defer fetcher.Close()

		deps.Scraper = &scrape.Scraper{
			Fetcher:     fetcher,
			Parser:      goquery.NewParser(),
			RateLimiter: scrape.NewDomainLimiter(cli.Scrape.Rate),
			Concurrency: cli.Scrape.Concurrency,
		}

		deps.Writer = m.Writer
		if deps.Writer == nil {
			deps.Writer = excelize.NewWriter(cli.Scrape.Out)
		}
	}

	return kongCtx.Run(deps)
}
