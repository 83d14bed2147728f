package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/camden-git/filecheckbackend/catalog"
	"github.com/camden-git/filecheckbackend/config"
	"github.com/camden-git/filecheckbackend/sharecard"
	"github.com/camden-git/filecheckbackend/utils"
)

type OGHandler struct {
	Resolver *catalog.Resolver
	Renderer *sharecard.Renderer
	Cfg      config.Config
}

// GetCard serves the share-card JPEG for a name. unknown names still get a
// card (the NO verdict), matching the page behavior.
func (oh *OGHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !utils.IsValidSlug(slug) {
		WriteAPIError(w, http.StatusBadRequest, "invalid_slug", "Name must be a lowercase hyphenated slug")
		return
	}

	person, err := oh.Resolver.GetPerson(slug)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	card := sharecard.Card{SiteName: siteHost(oh.Cfg.SiteURL)}
	if person != nil {
		card.DisplayName = person.DisplayName
		card.Found = person.IsFound()
		card.Matches = person.TotalMatches
		slug = person.Slug
	} else {
		card.DisplayName = utils.DisplayNameFromSlug(slug)
	}

	key := sharecard.CacheKey(slug, card.Found, card.Matches)
	path, err := oh.Renderer.Render(key, card)
	if err != nil {
		log.Printf("og: failed to render card for %s: %v", slug, err)
		WriteAPIError(w, http.StatusInternalServerError, "card_failed", "Failed to generate image")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=300")
	http.ServeFile(w, r, path)
}

func siteHost(siteURL string) string {
	u, err := url.Parse(siteURL)
	if err != nil || u.Host == "" {
		return siteURL
	}
	return u.Host
}
