package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/camden-git/filecheckbackend/database"
	"github.com/camden-git/filecheckbackend/utils"
)

const maxReportDetailLen = 2000

type ReportHandler struct {
	DB *gorm.DB
}

// CreateReport stores a user-submitted problem report about a person page.
func (rh *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slug   string `json:"slug"`
		Reason string `json:"reason"`
		Detail string `json:"detail"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "invalid_body", "Invalid request body")
		return
	}

	if !utils.IsValidSlug(req.Slug) {
		WriteAPIError(w, http.StatusBadRequest, "invalid_slug", "Missing or invalid slug")
		return
	}
	if strings.TrimSpace(req.Reason) == "" {
		WriteAPIError(w, http.StatusBadRequest, "missing_reason", "Missing required field: reason")
		return
	}
	if len(req.Detail) > maxReportDetailLen {
		req.Detail = req.Detail[:maxReportDetailLen]
	}

	id, err := database.CreateReport(rh.DB, req.Slug, req.Reason, req.Detail, ClientIP(r))
	if err != nil {
		log.Printf("report: failed to store report for %s: %v", req.Slug, err)
		WriteAPIError(w, http.StatusInternalServerError, "report_failed", "Failed to store report")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}
