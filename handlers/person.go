package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/camden-git/filecheckbackend/catalog"
	"github.com/camden-git/filecheckbackend/config"
	"github.com/camden-git/filecheckbackend/utils"
	"github.com/camden-git/filecheckbackend/workers"
)

// OtherMatchesLimit caps the disambiguation list; the core matcher has no
// cap, truncation is this presentation layer's job.
const OtherMatchesLimit = 6

type PersonHandler struct {
	Resolver *catalog.Resolver
	Tracker  *workers.SearchTracker
	Cfg      config.Config
}

// RankedDocument is DocumentEvidence plus its display ordering metadata.
type RankedDocument struct {
	catalog.DocumentEvidence
	RankScore int    `json:"rank_score"`
	RankTier  int    `json:"rank_tier"`
	TierLabel string `json:"tier_label"`
}

// OtherMatch is one entry in the "search instead for" list.
type OtherMatch struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
	Found       bool   `json:"found"`
}

// SafeCustomContent is editorial content with embeds validated.
type SafeCustomContent struct {
	OneLiner        string `json:"one_liner,omitempty"`
	OneLinerLink    string `json:"one_liner_link,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
	YouTubeEmbedURL string `json:"youtube_embed_url,omitempty"`
	CustomShareText string `json:"custom_share_text,omitempty"`
}

// PersonResponse is the verdict payload the page renderer consumes.
type PersonResponse struct {
	Query             string             `json:"query"`
	Slug              string             `json:"slug"`
	DisplayName       string             `json:"display_name"`
	Known             bool               `json:"known"`
	Found             bool               `json:"found"`
	TotalMatches      int                `json:"total_matches"`
	PinpointFileCount int                `json:"pinpoint_file_count"`
	Documents         []RankedDocument   `json:"documents"`
	CustomContent     *SafeCustomContent `json:"custom_content,omitempty"`
	OtherMatches      []OtherMatch       `json:"other_matches"`
	ShareURL          string             `json:"share_url"`
	OGImageURL        string             `json:"og_image_url"`
}

// GetPerson resolves a name query to the verdict payload. unknown names get
// a synthesized not-found record (the page still renders a NO verdict), so
// 404 is reserved for invalid slugs, not unknown people.
func (ph *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !utils.IsValidSlug(slug) {
		WriteAPIError(w, http.StatusBadRequest, "invalid_slug", "Name must be a lowercase hyphenated slug")
		return
	}

	person, err := ph.Resolver.GetPerson(slug)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	resp := ph.buildResponse(slug, person)

	// tracking is fire-and-forget; a full queue must not block the page
	if ph.Tracker != nil {
		ph.Tracker.Track(resp.Slug, resp.DisplayName, resp.Found)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (ph *PersonHandler) buildResponse(query string, person *catalog.Person) PersonResponse {
	if person == nil {
		slug := query
		return PersonResponse{
			Query:        query,
			Slug:         slug,
			DisplayName:  utils.DisplayNameFromSlug(slug),
			Known:        false,
			Found:        false,
			Documents:    []RankedDocument{},
			OtherMatches: ph.otherMatches(query, ""),
			ShareURL:     fmt.Sprintf("%s/%s", ph.Cfg.SiteURL, slug),
			OGImageURL:   fmt.Sprintf("%s/api/og/%s", ph.Cfg.SiteURL, slug),
		}
	}

	ranked := catalog.RankDocuments(person.Documents)
	docs := make([]RankedDocument, 0, len(ranked))
	for i := range ranked {
		tier := catalog.RankTier(ranked[i].Classification)
		docs = append(docs, RankedDocument{
			DocumentEvidence: ranked[i],
			RankScore:        catalog.RankScore(&ranked[i]),
			RankTier:         tier,
			TierLabel:        catalog.TierLabel(tier),
		})
	}

	canonical := ph.Resolver.Aliases().Resolve(person.Slug)

	return PersonResponse{
		Query:             query,
		Slug:              person.Slug,
		DisplayName:       person.DisplayName,
		Known:             true,
		Found:             person.IsFound(),
		TotalMatches:      person.TotalMatches,
		PinpointFileCount: person.PinpointFileCount,
		Documents:         docs,
		CustomContent:     sanitizeCustomContent(person.CustomContent),
		OtherMatches:      ph.otherMatches(query, canonical),
		ShareURL:          fmt.Sprintf("%s/%s", ph.Cfg.SiteURL, person.Slug),
		OGImageURL:        fmt.Sprintf("%s/api/og/%s", ph.Cfg.SiteURL, person.Slug),
	}
}

// otherMatches builds the deduplicated disambiguation list, excluding the
// identity already being displayed.
func (ph *PersonHandler) otherMatches(query, excludeCanonical string) []OtherMatch {
	people, err := ph.Resolver.FindAllMatches(query, excludeCanonical)
	if err != nil {
		// the main lookup already surfaced the catalog failure; degrading
		// the suggestion list here is fine
		log.Printf("person: other-matches lookup failed for %q: %v", query, err)
		return []OtherMatch{}
	}

	if len(people) > OtherMatchesLimit {
		people = people[:OtherMatchesLimit]
	}

	matches := make([]OtherMatch, 0, len(people))
	for i := range people {
		matches = append(matches, OtherMatch{
			Slug:        people[i].Slug,
			DisplayName: people[i].DisplayName,
			Found:       people[i].IsFound(),
		})
	}
	return matches
}

func sanitizeCustomContent(cc *catalog.CustomContent) *SafeCustomContent {
	if cc == nil {
		return nil
	}
	safe := &SafeCustomContent{
		OneLiner:        cc.OneLiner,
		OneLinerLink:    cc.OneLinerLink,
		ImageURL:        cc.ImageURL,
		CustomShareText: cc.CustomShareText,
	}
	if cc.YouTubeEmbedID != "" {
		safe.YouTubeEmbedURL = utils.BuildYouTubeEmbedURL(cc.YouTubeEmbedID, cc.YouTubeTimestamp)
	}
	return safe
}

// GetCatalogInfo returns the catalog metadata summary.
func (ph *PersonHandler) GetCatalogInfo(w http.ResponseWriter, r *http.Request) {
	idx, err := ph.Resolver.Store().Load()
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, idx.Metadata)
}

// writeCatalogError maps catalog load failures to generic client-safe
// responses; paths and parser details stay in the server log.
func writeCatalogError(w http.ResponseWriter, err error) {
	log.Printf("catalog load failed: %v", err)
	switch {
	case errors.Is(err, catalog.ErrDataUnavailable):
		WriteAPIError(w, http.StatusServiceUnavailable, "data_unavailable", "Data source unavailable. Please try again later.")
	case errors.Is(err, catalog.ErrDataFormat), errors.Is(err, catalog.ErrDataShape):
		WriteAPIError(w, http.StatusServiceUnavailable, "data_invalid", "Data temporarily unavailable. Please try again later.")
	default:
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to load data. Please try again later.")
	}
}
