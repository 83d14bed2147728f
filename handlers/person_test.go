package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camden-git/filecheckbackend/catalog"
	"github.com/camden-git/filecheckbackend/config"
)

const handlerCatalog = `{
	"_metadata": {"version": "1.0", "total_names": 4, "total_documents": 3},
	"people": [
		{"slug": "bill-clinton", "display_name": "Bill Clinton", "found_in_documents": true, "total_matches": 3,
		 "documents": [
			{"filename": "flight-logs.pdf", "source_url": "https://example.org/a", "classification": "Flight Logs", "match_count": 3}
		 ]},
		{"slug": "william-clinton", "display_name": "William Clinton", "found_in_documents": true, "total_matches": 5,
		 "documents": [
			{"filename": "contact-book.pdf", "source_url": "https://example.org/b", "classification": "Contact Book", "match_count": 5}
		 ]},
		{"slug": "hillary-clinton", "display_name": "Hillary Clinton", "found_in_documents": false, "total_matches": 0, "documents": [],
		 "custom_content": {"one_liner": "editorial note", "youtube_embed_id": "dQw4w9WgXcQ", "youtube_timestamp": 30}},
		{"slug": "barack-obama", "display_name": "Barack Obama", "found_in_documents": false, "total_matches": 0,
		 "pinpoint_file_count": 2, "documents": []}
	]
}`

func newTestPersonHandler(t *testing.T) *PersonHandler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people_index.json")
	require.NoError(t, os.WriteFile(path, []byte(handlerCatalog), 0644))

	store := catalog.NewStore(path, time.Minute)
	aliases := catalog.NewAliasTable(map[string]catalog.AliasMapping{
		"bill-clinton": {
			CanonicalSlug: "bill-clinton",
			CanonicalName: "Bill Clinton",
			Aliases:       []string{"william-clinton"},
		},
	})
	return &PersonHandler{
		Resolver: catalog.NewResolver(store, aliases),
		Cfg:      config.Config{SiteURL: "https://filecheck.example"},
	}
}

func getPerson(t *testing.T, ph *PersonHandler, slug string) (*httptest.ResponseRecorder, PersonResponse) {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/api/people/{slug}", ph.GetPerson)

	req := httptest.NewRequest(http.MethodGet, "/api/people/"+slug, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp PersonResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestGetPersonFound(t *testing.T) {
	ph := newTestPersonHandler(t)

	rec, resp := getPerson(t, ph, "bill-clinton")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Known)
	assert.True(t, resp.Found)
	assert.Equal(t, 8, resp.TotalMatches, "alias entries consolidated")
	require.Len(t, resp.Documents, 2)
	assert.Equal(t, "flight-logs.pdf", resp.Documents[0].Filename, "flight logs rank above contact book")
	assert.Equal(t, "https://filecheck.example/bill-clinton", resp.ShareURL)
}

func TestGetPersonPinpointOnlyIsFound(t *testing.T) {
	ph := newTestPersonHandler(t)

	rec, resp := getPerson(t, ph, "barack-obama")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Found, "pinpoint file count alone makes the verdict YES")
	assert.Equal(t, 0, resp.TotalMatches)
}

func TestGetPersonUnknownName(t *testing.T) {
	ph := newTestPersonHandler(t)

	rec, resp := getPerson(t, ph, "definitely-not-a-real-person-xyz")
	assert.Equal(t, http.StatusOK, rec.Code, "unknown names still render a NO page")
	assert.False(t, resp.Known)
	assert.False(t, resp.Found)
	assert.Equal(t, "Definitely Not A Real Person Xyz", resp.DisplayName)
}

func TestGetPersonInvalidSlug(t *testing.T) {
	ph := newTestPersonHandler(t)

	rec, _ := getPerson(t, ph, "Bill%20Clinton")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPersonOtherMatchesExcludesSelfAndAliases(t *testing.T) {
	ph := newTestPersonHandler(t)

	_, resp := getPerson(t, ph, "clinton")
	// the heuristic resolves "clinton" to bill-clinton; other matches must
	// not contain him or his william-clinton alias entry
	for _, m := range resp.OtherMatches {
		assert.NotEqual(t, "bill-clinton", m.Slug)
		assert.NotEqual(t, "william-clinton", m.Slug)
	}
}

func TestGetPersonSanitizesCustomContent(t *testing.T) {
	ph := newTestPersonHandler(t)

	_, resp := getPerson(t, ph, "hillary-clinton")
	require.NotNil(t, resp.CustomContent)
	assert.Equal(t, "editorial note", resp.CustomContent.OneLiner)
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ?start=30", resp.CustomContent.YouTubeEmbedURL)
}

func TestGetPersonCatalogUnavailable(t *testing.T) {
	store := catalog.NewStore(filepath.Join(t.TempDir(), "missing.json"), time.Minute)
	ph := &PersonHandler{
		Resolver: catalog.NewResolver(store, catalog.NewAliasTable(nil)),
		Cfg:      config.Config{SiteURL: "https://filecheck.example"},
	}

	rec, _ := getPerson(t, ph, "anyone")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "missing.json", "file paths must not leak to clients")
}

func TestGetCatalogInfo(t *testing.T) {
	ph := newTestPersonHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/people", nil)
	rec := httptest.NewRecorder()
	ph.GetCatalogInfo(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var meta catalog.Metadata
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meta))
	assert.Equal(t, "1.0", meta.Version)
}
