package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/ngoscan"
	"github.com/fwojciec/ngoscan/scrape"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Loader  ngoscan.ConfigLoader
	Scraper *scrape.Scraper
	Writer  ngoscan.RecordWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape contact records for every configured organization"`
	Check  CheckCmd  `cmd:"" help:"Validate a configuration file without fetching anything"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Config      string        `arg:"" help:"Path to the YAML configuration file"`
	Out         string        `short:"o" default:"out" help:"Output directory for the spreadsheet"`
	Concurrency int           `short:"c" default:"1" help:"Organizations processed in parallel"`
	Rate        float64       `default:"1" help:"Maximum requests per second per domain"`
	Timeout     time.Duration `default:"20s" help:"Per-request fetch timeout"`
	UserAgent   string        `help:"Override the User-Agent header"`
	Verbose     bool          `short:"v" help:"Log individual page fetches"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Config string `arg:"" help:"Path to the YAML configuration file"`
}
