// Package locale provides the multi-locale dictionary resolver for all
// user-facing strings.
//
// The dictionary is loaded once from an embedded YAML file and is immutable
// afterwards. It is an injected value, never a package-level global, so tests
// can build their own dictionaries and several locale contexts can coexist.
//
// Fallback chain (Resolve never fails):
//  1. Requested locale, requested key
//  2. Default locale ("en"), requested key
//  3. Caller-supplied fallback string, if given
//  4. The raw key itself
package locale

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultTag is the default and reference locale. The embedded dictionary
// must carry an "en" table that is a superset of every other locale's keys.
const DefaultTag = "en"

//go:embed locales.yaml
var embeddedLocales []byte

// Dictionary maps locale tags to key→string tables. Treat as read-only
// after construction.
type Dictionary struct {
	tables map[string]map[string]string
}

// New builds a Dictionary from the given tables.
//
// Returns an error when the default locale is missing or when another
// locale carries a key the default locale does not: the "en" table is the
// authoritative key set, other locales may only be partial subsets of it.
func New(tables map[string]map[string]string) (*Dictionary, error) {
	base, ok := tables[DefaultTag]
	if !ok {
		return nil, fmt.Errorf("locale dictionary must contain the %q table", DefaultTag)
	}
	for tag, table := range tables {
		if tag == DefaultTag {
			continue
		}
		for key := range table {
			if _, ok := base[key]; !ok {
				return nil, fmt.Errorf("locale %q has key %q missing from %q", tag, key, DefaultTag)
			}
		}
	}
	return &Dictionary{tables: tables}, nil
}

// Load parses the embedded dictionary shipped with the binary.
func Load() (*Dictionary, error) {
	var tables map[string]map[string]string
	if err := yaml.Unmarshal(embeddedLocales, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse embedded locales: %w", err)
	}
	return New(tables)
}

// Resolve returns the best available string for key in the given locale.
//
// Unrecognized locale tags fall back to "en". A key absent from both the
// requested and the default table resolves to the optional fallback, and
// with no fallback to the key itself, so the UI degrades to showing the key
// rather than nothing. Total over all inputs, pure, no side effects.
func (d *Dictionary) Resolve(tag, key string, fallback ...string) string {
	table, ok := d.tables[tag]
	if !ok {
		table = d.tables[DefaultTag]
	}
	if value, ok := table[key]; ok {
		return value
	}
	// Partial locale: fall through to the default table.
	if value, ok := d.tables[DefaultTag][key]; ok {
		return value
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return key
}

// Has reports whether the dictionary carries a table for the given tag.
func (d *Dictionary) Has(tag string) bool {
	_, ok := d.tables[tag]
	return ok
}

// Tags returns the locale tags available in the dictionary.
func (d *Dictionary) Tags() []string {
	tags := make([]string, 0, len(d.tables))
	for tag := range d.tables {
		tags = append(tags, tag)
	}
	return tags
}
