package main

import (
	"fmt"

	"github.com/fwojciec/ngoscan"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	cfg, err := deps.Loader.Load(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ngoscan.ErrorMessage(err))
		return err
	}

	for _, org := range cfg.Organizations {
		fmt.Fprintf(deps.Stdout, "%s  %d page(s)\n", org.Domain, len(org.ContactPages))
	}
	fmt.Fprintf(deps.Stdout, "OK: %d organization(s) configured\n", len(cfg.Organizations))
	return nil
}
