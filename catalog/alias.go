package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// AliasMapping is one canonical person plus every alternate slug known to
// refer to them (nicknames, full legal names, title variants).
type AliasMapping struct {
	CanonicalSlug string   `json:"canonical_slug"`
	CanonicalName string   `json:"canonical_name"`
	Aliases       []string `json:"aliases"`
}

// AliasTable resolves alternate slugs to their canonical slug. it is built
// once at startup and treated as immutable for the process lifetime.
type AliasTable struct {
	mappings         map[string]AliasMapping
	aliasToCanonical map[string]string
}

// NewAliasTable builds the reverse lookup from a mapping keyed by canonical
// slug. an alias claimed by two canonical entries is a data-integrity bug in
// the source file; it is logged and the last-registered entry wins.
func NewAliasTable(mappings map[string]AliasMapping) *AliasTable {
	t := &AliasTable{
		mappings:         make(map[string]AliasMapping, len(mappings)),
		aliasToCanonical: make(map[string]string),
	}
	for canonical, mapping := range mappings {
		canonical = strings.ToLower(canonical)
		t.mappings[canonical] = mapping
		for _, alias := range mapping.Aliases {
			alias = strings.ToLower(alias)
			if prev, ok := t.aliasToCanonical[alias]; ok && prev != canonical {
				log.Printf("catalog: alias %q claimed by both %q and %q, keeping last", alias, prev, canonical)
			}
			t.aliasToCanonical[alias] = canonical
		}
	}
	return t
}

// LoadAliasTable reads the alias mapping file and builds the table. a missing
// file is not an error; the site runs fine with no alias configuration.
func LoadAliasTable(path string) (*AliasTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("catalog: no alias mapping at %s, continuing without aliases", path)
			return NewAliasTable(nil), nil
		}
		return nil, fmt.Errorf("failed to read alias mapping %s: %w", path, err)
	}

	var mappings map[string]AliasMapping
	if err := json.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("failed to parse alias mapping %s: %w", path, err)
	}
	return NewAliasTable(mappings), nil
}

// Resolve returns the canonical slug for slug. an unknown slug resolves to
// itself; "no alias relationship" is a no-op, not an error.
func (t *AliasTable) Resolve(slug string) string {
	slug = strings.ToLower(slug)
	if canonical, ok := t.aliasToCanonical[slug]; ok {
		return canonical
	}
	if _, ok := t.mappings[slug]; ok {
		return slug
	}
	return slug
}

// AllSlugsFor returns the canonical slug followed by every alias, or just
// the slug itself when no mapping exists.
func (t *AliasTable) AllSlugsFor(canonicalSlug string) []string {
	canonicalSlug = strings.ToLower(canonicalSlug)
	mapping, ok := t.mappings[canonicalSlug]
	if !ok {
		return []string{canonicalSlug}
	}
	slugs := make([]string, 0, len(mapping.Aliases)+1)
	slugs = append(slugs, canonicalSlug)
	slugs = append(slugs, mapping.Aliases...)
	return slugs
}

// SameEntity reports whether two slugs refer to the same real-world person.
func (t *AliasTable) SameEntity(slugA, slugB string) bool {
	return t.Resolve(slugA) == t.Resolve(slugB)
}

// CanonicalName returns the display name registered for a canonical slug,
// or "" when the slug has no mapping entry.
func (t *AliasTable) CanonicalName(canonicalSlug string) string {
	return t.mappings[strings.ToLower(canonicalSlug)].CanonicalName
}
