// Package yaml provides a yaml.v3-based implementation of
// ngoscan.ConfigLoader. The configuration document is a mapping from
// organization domain to contact pages and field selectors; document
// order is preserved because it determines processing and output row
// order.
package yaml

import (
	"fmt"
	"os"
	"regexp"

	"github.com/fwojciec/ngoscan"
	"gopkg.in/yaml.v3"
)

// Ensure Loader implements ngoscan.ConfigLoader at compile time.
var _ ngoscan.ConfigLoader = (*Loader)(nil)

// Loader loads scrape configuration from a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// organizationDoc mirrors the YAML shape of one organization entry.
type organizationDoc struct {
	ContactPages []string     `yaml:"contact_pages"`
	Selectors    selectorsDoc `yaml:"selectors"`
}

type selectorsDoc struct {
	Address       *ruleDoc          `yaml:"address"`
	Phones        *phoneDoc         `yaml:"phones"`
	Services      *ruleDoc          `yaml:"services"`
	ContactPerson *contactPersonDoc `yaml:"contact_person"`
	OGName        *ogNameDoc        `yaml:"og_name"`
}

type ruleDoc struct {
	Static   yaml.Node `yaml:"static"`
	RegexAny []string  `yaml:"regex_any"`
}

type phoneDoc struct {
	RegexAny    []string `yaml:"regex_any"`
	Prefer      []string `yaml:"prefer"`
	RequiredMin int      `yaml:"required_min"`
}

type contactPersonDoc struct {
	Static string `yaml:"static"`
	Page   string `yaml:"page"`
	Regex  string `yaml:"regex"`
	Format string `yaml:"format"`
}

type ogNameDoc struct {
	URL string `yaml:"url"`
}

// Load reads and parses the configuration file at path. The top-level
// mapping is walked node by node so organizations keep their declared
// order, which encoding into a Go map would destroy.
func (l *Loader) Load(path string) (*ngoscan.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ngoscan.Errorf(ngoscan.ENOTFOUND, "reading config %q: %v", path, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, ngoscan.Errorf(ngoscan.EINVALID, "parsing config %q: %v", path, err)
	}
	if len(root.Content) == 0 {
		return nil, ngoscan.Errorf(ngoscan.EINVALID, "config %q is empty", path)
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, ngoscan.Errorf(ngoscan.EINVALID, "config %q: top level must be a mapping of domains", path)
	}

	cfg := &ngoscan.Config{}
	for i := 0; i < len(mapping.Content); i += 2 {
		keyNode, valueNode := mapping.Content[i], mapping.Content[i+1]

		var doc organizationDoc
		if err := valueNode.Decode(&doc); err != nil {
			return nil, ngoscan.Errorf(ngoscan.EINVALID, "%s: %v", keyNode.Value, err)
		}

		org, err := buildOrganization(keyNode.Value, &doc)
		if err != nil {
			return nil, err
		}
		cfg.Organizations = append(cfg.Organizations, org)
	}

	if len(cfg.Organizations) == 0 {
		return nil, ngoscan.Errorf(ngoscan.EINVALID, "config %q declares no organizations", path)
	}
	return cfg, nil
}

// buildOrganization converts a decoded organization entry into domain
// types, compiling patterns and enforcing required selector keys.
func buildOrganization(domain string, doc *organizationDoc) (*ngoscan.OrganizationConfig, error) {
	sel := doc.Selectors
	required := []struct {
		key     string
		present bool
	}{
		{"address", sel.Address != nil},
		{"phones", sel.Phones != nil},
		{"services", sel.Services != nil},
		{"contact_person", sel.ContactPerson != nil},
	}
	for _, r := range required {
		if !r.present {
			return nil, ngoscan.Errorf(ngoscan.EINVALID, "%s: selector %q required", domain, r.key)
		}
	}

	address, err := buildRule(domain, "address", sel.Address)
	if err != nil {
		return nil, err
	}
	services, err := buildRule(domain, "services", sel.Services)
	if err != nil {
		return nil, err
	}
	phones, err := buildPhoneRule(domain, sel.Phones)
	if err != nil {
		return nil, err
	}
	contact, err := buildContactPersonRule(domain, sel.ContactPerson)
	if err != nil {
		return nil, err
	}

	org := &ngoscan.OrganizationConfig{
		Domain:       domain,
		ContactPages: doc.ContactPages,
		Selectors: ngoscan.Selectors{
			Address:       address,
			Phones:        phones,
			Services:      services,
			ContactPerson: contact,
		},
	}
	if sel.OGName != nil {
		org.Selectors.OGName = ngoscan.OGNameRule{URL: sel.OGName.URL}
	}

	if err := org.Validate(); err != nil {
		return nil, err
	}
	return org, nil
}

func buildRule(domain, key string, doc *ruleDoc) (ngoscan.Rule, error) {
	static, err := stringOrList(&doc.Static)
	if err != nil {
		return ngoscan.Rule{}, ngoscan.Errorf(ngoscan.EINVALID, "%s: selector %q static value: %v", domain, key, err)
	}
	patterns, err := compilePatterns(doc.RegexAny, "(?is)")
	if err != nil {
		return ngoscan.Rule{}, ngoscan.Errorf(ngoscan.EINVALID, "%s: selector %q: %v", domain, key, err)
	}
	return ngoscan.Rule{Static: static, Patterns: patterns}, nil
}

func buildPhoneRule(domain string, doc *phoneDoc) (ngoscan.PhoneRule, error) {
	patterns, err := compilePatterns(doc.RegexAny, "(?i)")
	if err != nil {
		return ngoscan.PhoneRule{}, ngoscan.Errorf(ngoscan.EINVALID, "%s: selector \"phones\": %v", domain, err)
	}
	prefer, err := compilePatterns(doc.Prefer, "(?i)")
	if err != nil {
		return ngoscan.PhoneRule{}, ngoscan.Errorf(ngoscan.EINVALID, "%s: selector \"phones\" prefer: %v", domain, err)
	}
	return ngoscan.PhoneRule{
		Patterns:    patterns,
		Prefer:      prefer,
		RequiredMin: doc.RequiredMin,
	}, nil
}

func buildContactPersonRule(domain string, doc *contactPersonDoc) (ngoscan.ContactPersonRule, error) {
	rule := ngoscan.ContactPersonRule{
		Static: doc.Static,
		Page:   doc.Page,
		Format: doc.Format,
	}
	if doc.Regex != "" {
		re, err := regexp.Compile("(?is)" + doc.Regex)
		if err != nil {
			return ngoscan.ContactPersonRule{}, ngoscan.Errorf(ngoscan.EINVALID, "%s: selector \"contact_person\" regex %q: %v", domain, doc.Regex, err)
		}
		if re.NumSubexp() < 1 {
			return ngoscan.ContactPersonRule{}, ngoscan.Errorf(ngoscan.EINVALID, "%s: selector \"contact_person\" regex %q needs a capture group for the name", domain, doc.Regex)
		}
		rule.Pattern = re
	}
	return rule, nil
}

// compilePatterns compiles each pattern with the given flag prefix.
func compilePatterns(patterns []string, flags string) ([]*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(flags + pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// stringOrList accepts a scalar or a sequence of scalars. Empty
// scalars and empty sequences are normalized to absent.
func stringOrList(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case 0: // absent
		return nil, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" || node.Value == "" {
			return nil, nil
		}
		return []string{node.Value}, nil
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return nil, err
		}
		if len(values) == 0 {
			return nil, nil
		}
		return values, nil
	default:
		return nil, fmt.Errorf("must be a string or a list of strings")
	}
}
