package catalog

import "github.com/sahilm/fuzzy"

// Suggestion is one fuzzy-search result for the search-as-you-type box.
type Suggestion struct {
	Slug              string `json:"slug"`
	DisplayName       string `json:"display_name"`
	FoundInDocuments  bool   `json:"found_in_documents"`
	PinpointFileCount int    `json:"pinpoint_file_count"`
	Score             int    `json:"score"`
}

// peopleSource implements fuzzy.Source over the catalog, matching against
// display name and slug together so "bill c" hits "Bill Clinton".
type peopleSource []Person

func (s peopleSource) String(i int) string {
	return s[i].DisplayName + " " + s[i].Slug
}

func (s peopleSource) Len() int {
	return len(s)
}

// Suggest returns up to limit fuzzy matches for query, best score first.
// this is the search-suggestion facility, separate from the tiered slug
// matcher used for page resolution.
func Suggest(people []Person, query string, limit int) []Suggestion {
	if query == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.FindFrom(query, peopleSource(people))
	if len(matches) > limit {
		matches = matches[:limit]
	}

	suggestions := make([]Suggestion, 0, len(matches))
	for _, match := range matches {
		p := &people[match.Index]
		suggestions = append(suggestions, Suggestion{
			Slug:              p.Slug,
			DisplayName:       p.DisplayName,
			FoundInDocuments:  p.IsFound(),
			PinpointFileCount: p.PinpointFileCount,
			Score:             match.Score,
		})
	}
	return suggestions
}
