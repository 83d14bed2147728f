package catalog

import "strings"

// Resolver answers "who is this query about?" against the current catalog
// snapshot. it owns no state of its own beyond the store and alias table it
// was built with; every lookup is a pure computation over one snapshot, so
// concurrent lookups are safe.
type Resolver struct {
	store   *Store
	aliases *AliasTable
}

func NewResolver(store *Store, aliases *AliasTable) *Resolver {
	return &Resolver{store: store, aliases: aliases}
}

// Aliases exposes the alias table for callers that need canonical identity
// checks (dedup, exclusion).
func (r *Resolver) Aliases() *AliasTable {
	return r.aliases
}

// Store exposes the underlying catalog store.
func (r *Resolver) Store() *Store {
	return r.store
}

// GetPerson returns the single best person for query, or nil when nobody
// matches. alias-registered people are looked up by exact slug across all
// their alias variants and consolidated into one record; anything else falls
// back to the tiered slug matcher. catalog load failures propagate unchanged.
func (r *Resolver) GetPerson(query string) (*Person, error) {
	idx, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)

	canonical := r.aliases.Resolve(query)
	slugs := r.aliases.AllSlugsFor(canonical)

	slugSet := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		slugSet[strings.ToLower(slug)] = true
	}

	var entries []Person
	for i := range idx.People {
		if slugSet[strings.ToLower(idx.People[i].Slug)] {
			entries = append(entries, idx.People[i])
		}
	}
	if len(entries) > 0 {
		merged := Consolidate(entries)
		// the registered canonical name wins over whichever catalog entry
		// happened to come first
		if name := r.aliases.CanonicalName(canonical); name != "" {
			merged.DisplayName = name
		}
		return merged, nil
	}

	// no alias relationship known; try the heuristic tiers on the raw query
	return MatchOne(idx.People, query), nil
}

// FindAllMatches returns every distinct person the query could refer to, in
// catalog order, with alias variants collapsed to one entry per identity.
// excludeCanonical (optional) removes that identity from the result.
func (r *Resolver) FindAllMatches(query, excludeCanonical string) ([]Person, error) {
	idx, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	matched := MatchAll(idx.People, strings.ToLower(query))
	return FilterDuplicates(matched, r.aliases, excludeCanonical), nil
}
