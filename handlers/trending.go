package handlers

import (
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/camden-git/filecheckbackend/database"
	"github.com/camden-git/filecheckbackend/models"
)

const (
	trendingWindow = 24 * time.Hour
	trendingLimit  = 10
)

type TrendingHandler struct {
	DB *gorm.DB
}

type trendingResponse struct {
	Trending []models.TrendingEntry `json:"trending"`
}

// GetTrending returns the most looked-up people of the last 24 hours. a
// database failure degrades to an empty list; trending is decoration, not
// something worth a 500 on the homepage.
func (th *TrendingHandler) GetTrending(w http.ResponseWriter, r *http.Request) {
	entries, err := database.GetTrendingSearches(th.DB, trendingWindow, trendingLimit)
	if err != nil {
		log.Printf("trending: query failed: %v", err)
		writeJSON(w, http.StatusOK, trendingResponse{Trending: []models.TrendingEntry{}})
		return
	}
	if entries == nil {
		entries = []models.TrendingEntry{}
	}
	writeJSON(w, http.StatusOK, trendingResponse{Trending: entries})
}
