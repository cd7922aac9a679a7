package ngoscan

// Config holds the scrape configuration for a batch run. Organizations
// keep the order they were declared in, which determines both
// processing and output row order.
type Config struct {
	Organizations []*OrganizationConfig
}

// OrganizationConfig describes how to extract one organization's
// contact record.
type OrganizationConfig struct {
	// Domain identifies the organization and is used to synthesize the
	// Website field.
	Domain string

	// ContactPages are the URLs to fetch, in order. The first page is
	// the default source for name extraction. Must be non-empty.
	ContactPages []string

	// Selectors hold the per-field extraction rules.
	Selectors Selectors
}

// Selectors map record fields to their extraction rules. Address,
// Phones, Services and ContactPerson are required by the config
// loader; OGName is optional.
type Selectors struct {
	Address       Rule
	Phones        PhoneRule
	Services      Rule
	ContactPerson ContactPersonRule
	OGName        OGNameRule
}

// OGNameRule optionally overrides which page the organization name is
// extracted from.
type OGNameRule struct {
	// URL of the page to read metadata from. Empty means the first
	// declared contact page.
	URL string
}

// Validate returns an error if the organization config is structurally
// invalid. Rule contents are validated by the config loader.
func (c *OrganizationConfig) Validate() error {
	if c.Domain == "" {
		return Errorf(EINVALID, "organization domain required")
	}
	if len(c.ContactPages) == 0 {
		return Errorf(EINVALID, "%s: at least one contact page required", c.Domain)
	}
	return nil
}

// NamePageURL returns the URL the organization name should be
// extracted from.
func (c *OrganizationConfig) NamePageURL() string {
	if c.Selectors.OGName.URL != "" {
		return c.Selectors.OGName.URL
	}
	return c.ContactPages[0]
}

// ConfigLoader loads a configuration document into a Config. The core
// never parses configuration syntax itself.
type ConfigLoader interface {
	Load(path string) (*Config, error)
}
