package main

import (
	"fmt"

	"github.com/fwojciec/ngoscan"
	"github.com/fwojciec/ngoscan/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	deps.Logger.Info("loading config", "path", c.Config)
	cfg, err := deps.Loader.Load(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ngoscan.ErrorMessage(err))
		return err
	}

	records, err := deps.Scraper.Run(deps.Ctx, cfg, func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "(%d/%d) scraping: %s\n", event.Completed+1, event.Total, event.Domain)
		case scrape.ProgressFailed:
			deps.Logger.Error("scrape failed", "domain", event.Domain, "error", event.Err)
		case scrape.ProgressFinished:
			deps.Logger.Info("validation passed", "organizations", event.Total)
		}
	})
	if err != nil {
		return err
	}

	path, err := deps.Writer.WriteRecords(deps.Ctx, records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ngoscan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done. Saved %d record(s) -> %s\n", len(records), path)
	return nil
}
