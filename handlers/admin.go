package handlers

import (
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/camden-git/filecheckbackend/catalog"
	"github.com/camden-git/filecheckbackend/config"
)

type AdminHandler struct {
	Store *catalog.Store
	Cfg   config.Config
}

// RefreshCatalog clears the catalog cache so the next lookup re-reads the
// index file. guarded by a bearer token checked against the configured
// bcrypt hash; with no hash configured the endpoint is disabled outright.
func (ah *AdminHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if ah.Cfg.AdminTokenHash == "" {
		WriteAPIError(w, http.StatusNotFound, "not_found", "Not found")
		return
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Authorization header format must be Bearer {token}")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ah.Cfg.AdminTokenHash), []byte(parts[1])); err != nil {
		WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Invalid token")
		return
	}

	ah.Store.Clear()
	log.Println("admin: catalog cache cleared")
	writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}
