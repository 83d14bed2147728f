package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/camden-git/filecheckbackend/catalog"
	"github.com/camden-git/filecheckbackend/config"
)

type SitemapHandler struct {
	Store *catalog.Store
	Cfg   config.Config
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// GetSitemap lists the homepage plus one URL per catalog person.
func (sh *SitemapHandler) GetSitemap(w http.ResponseWriter, r *http.Request) {
	idx, err := sh.Store.Load()
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: sh.Cfg.SiteURL, ChangeFreq: "daily", Priority: "1.0"},
		},
	}
	for i := range idx.People {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        sh.Cfg.SiteURL + "/" + idx.People[i].Slug,
			LastMod:    idx.Metadata.Generated,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	_ = xml.NewEncoder(w).Encode(set)
}
