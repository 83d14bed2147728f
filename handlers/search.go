package handlers

import (
	"net/http"

	"github.com/camden-git/filecheckbackend/catalog"
)

// SuggestionLimit caps the search-as-you-type dropdown.
const SuggestionLimit = 8

type SearchHandler struct {
	Resolver *catalog.Resolver
}

type searchResponse struct {
	Results []catalog.Suggestion `json:"results"`
}

// Search returns fuzzy suggestions for the query box. an empty query is an
// empty result set, not an error.
func (sh *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusOK, searchResponse{Results: []catalog.Suggestion{}})
		return
	}

	idx, err := sh.Resolver.Store().Load()
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	results := catalog.Suggest(idx.People, query, SuggestionLimit)
	if results == nil {
		results = []catalog.Suggestion{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

// FindAll returns every distinct person a query could mean; the search page
// uses it for its disambiguation view.
func (sh *SearchHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{"matches": []OtherMatch{}})
		return
	}

	people, err := sh.Resolver.FindAllMatches(query, "")
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	matches := make([]OtherMatch, 0, len(people))
	for i := range people {
		matches = append(matches, OtherMatch{
			Slug:        people[i].Slug,
			DisplayName: people[i].DisplayName,
			Found:       people[i].IsFound(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}
