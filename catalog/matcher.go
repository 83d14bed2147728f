package catalog

import "strings"

// slug matching runs three progressively looser tiers. tier order and the
// first-match-in-catalog-order tie-break are part of the observable contract,
// not an accident of iteration order:
//
//  1. exact:  person.slug == query
//  2. suffix: person.slug ends with "-"+query or with query itself
//     ("obama" matches "barack-obama")
//  3. token:  query equals one of the hyphen-separated tokens of person.slug
//     ("clinton" matches "bill-clinton" but not "clintonville")

func matchExact(slug, query string) bool {
	return slug == query
}

func matchSuffix(slug, query string) bool {
	return strings.HasSuffix(slug, "-"+query) || strings.HasSuffix(slug, query)
}

func matchToken(slug, query string) bool {
	for _, token := range strings.Split(slug, "-") {
		if token == query {
			return true
		}
	}
	return false
}

var matchTiers = []func(slug, query string) bool{matchExact, matchSuffix, matchToken}

// MatchOne returns the single best match for query, trying each tier in
// order and stopping at the first tier that produces a hit. the empty query
// matches nobody. returns nil when no tier matches.
func MatchOne(people []Person, query string) *Person {
	query = strings.ToLower(query)
	if query == "" {
		return nil
	}
	for _, tier := range matchTiers {
		for i := range people {
			if tier(strings.ToLower(people[i].Slug), query) {
				return &people[i]
			}
		}
	}
	return nil
}

// MatchAll returns every person matched by any tier, in catalog order. used
// for disambiguation lists; callers dedup alias variants afterwards.
func MatchAll(people []Person, query string) []Person {
	query = strings.ToLower(query)
	if query == "" {
		return nil
	}
	var matched []Person
	for i := range people {
		slug := strings.ToLower(people[i].Slug)
		for _, tier := range matchTiers {
			if tier(slug, query) {
				matched = append(matched, people[i])
				break
			}
		}
	}
	return matched
}
