// Package scrape provides contact record extraction orchestration.
// It coordinates page fetching, parsing, rule resolution, and
// required-field validation for each configured organization.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/ngoscan"
	"golang.org/x/sync/errgroup"
)

// Scraper builds contact records from configured organizations.
type Scraper struct {
	Fetcher     ngoscan.Fetcher
	Parser      ngoscan.Parser
	RateLimiter ngoscan.DomainLimiter

	// Concurrency is the number of organizations processed in
	// parallel. Values below 1 mean sequential processing.
	// Organizations are independent, so no locking is needed; output
	// order always follows declaration order.
	Concurrency int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Domain    string
	Completed int
	Total     int
	Err       error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// Run processes every organization in declared order and returns their
// records in the same order. The first failure cancels the batch;
// callers wanting per-organization isolation should call ScrapeDomain
// directly. The progress callback, if provided, receives events as
// organizations are processed and must be safe for concurrent use when
// Concurrency > 1.
func (s *Scraper) Run(ctx context.Context, cfg *ngoscan.Config, progress ProgressFunc) ([]*ngoscan.ContactRecord, error) {
	notify := func(event ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}

	total := len(cfg.Organizations)
	records := make([]*ngoscan.ContactRecord, total)

	concurrency := s.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var completed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, org := range cfg.Organizations {
		i, org := i, org
		g.Go(func() error {
			notify(ProgressEvent{
				Type:      ProgressStarted,
				Domain:    org.Domain,
				Completed: int(completed.Load()),
				Total:     total,
			})

			record, err := s.ScrapeDomain(gctx, org)
			if err != nil {
				notify(ProgressEvent{
					Type:      ProgressFailed,
					Domain:    org.Domain,
					Completed: int(completed.Load()),
					Total:     total,
					Err:       err,
				})
				return err
			}

			records[i] = record
			notify(ProgressEvent{
				Type:      ProgressCompleted,
				Domain:    org.Domain,
				Completed: int(completed.Add(1)),
				Total:     total,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return records, nil
}

// ScrapeDomain builds the contact record for one organization. Every
// declared contact page is fetched exactly once; pages are cached by
// URL for the duration of the call so that name and contact-person
// overrides pointing at an already-fetched page cost no extra fetch.
// A fetch failure or an empty required field aborts the organization.
func (s *Scraper) ScrapeDomain(ctx context.Context, org *ngoscan.OrganizationConfig) (*ngoscan.ContactRecord, error) {
	if err := org.Validate(); err != nil {
		return nil, err
	}

	cache := make(map[string]ngoscan.Page, len(org.ContactPages))
	texts := make([]string, 0, len(org.ContactPages))
	for _, pageURL := range org.ContactPages {
		page, err := s.page(ctx, cache, pageURL)
		if err != nil {
			return nil, err
		}
		texts = append(texts, page.VisibleText())
	}
	combined := strings.Join(texts, " ")

	sel := org.Selectors

	namePage, err := s.page(ctx, cache, org.NamePageURL())
	if err != nil {
		return nil, err
	}
	name, ok := ngoscan.SiteName(namePage)
	if name, err = require(name, ok, org.Domain, ngoscan.ColumnName); err != nil {
		return nil, err
	}

	v, ok := sel.Address.Resolve(combined)
	address, err := require(v, ok, org.Domain, ngoscan.ColumnAddress)
	if err != nil {
		return nil, err
	}

	v, ok = sel.Phones.Resolve(combined)
	phones, err := require(v, ok, org.Domain, ngoscan.ColumnContactNumber)
	if err != nil {
		return nil, err
	}

	// Services rules run against an empty baseline rather than the
	// page text, so only static services values resolve. See DESIGN.md
	// for the reasoning behind keeping this behavior.
	v, ok = sel.Services.Resolve("")
	services, err := require(v, ok, org.Domain, ngoscan.ColumnServices)
	if err != nil {
		return nil, err
	}

	contactText := combined
	if sel.ContactPerson.Static == "" && sel.ContactPerson.Page != "" &&
		!slices.Contains(org.ContactPages, sel.ContactPerson.Page) {
		page, err := s.page(ctx, cache, sel.ContactPerson.Page)
		if err != nil {
			return nil, err
		}
		contactText = page.VisibleText()
	}
	v, ok = sel.ContactPerson.Resolve(contactText)
	contact, err := require(v, ok, org.Domain, ngoscan.ColumnContactPerson)
	if err != nil {
		return nil, err
	}

	return &ngoscan.ContactRecord{
		Name:          name,
		Website:       fmt.Sprintf("https://%s/", org.Domain),
		Address:       address,
		Services:      services,
		ContactPerson: contact,
		ContactNumber: phones,
		SourcePages:   strings.Join(org.ContactPages, "; "),
	}, nil
}

// page returns the parsed page for pageURL, fetching and caching it on
// first use.
func (s *Scraper) page(ctx context.Context, cache map[string]ngoscan.Page, pageURL string) (ngoscan.Page, error) {
	if page, ok := cache[pageURL]; ok {
		return page, nil
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, hostOf(pageURL)); err != nil {
			return nil, err
		}
	}

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	page, err := s.Parser.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	cache[pageURL] = page
	return page, nil
}

// require enforces that a resolved field value is non-blank.
func require(value string, ok bool, domain, field string) (string, error) {
	if !ok || strings.TrimSpace(value) == "" {
		return "", &ngoscan.MissingFieldError{Domain: domain, Field: field}
	}
	return value, nil
}

// hostOf extracts the host for rate limiting. Unparseable URLs fall
// back to the raw string so they still share a single bucket.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
