package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/camden-git/filecheckbackend/database"
	"github.com/camden-git/filecheckbackend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateModels(db))
	return db
}

func TestCreateReport(t *testing.T) {
	rh := &ReportHandler{DB: newTestDB(t)}

	body := `{"slug": "bill-clinton", "reason": "wrong_count", "detail": "total looks off"}`
	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(body))
	req.RemoteAddr = "1.2.3.4:5678"
	rec := httptest.NewRecorder()
	rh.CreateReport(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])

	var stored models.Report
	require.NoError(t, rh.DB.First(&stored, "id = ?", resp["id"]).Error)
	assert.Equal(t, "bill-clinton", stored.Slug)
	assert.Equal(t, "wrong_count", stored.Reason)
	assert.Equal(t, "1.2.3.4", stored.ClientIP)
}

func TestCreateReportValidation(t *testing.T) {
	rh := &ReportHandler{DB: newTestDB(t)}

	cases := []struct {
		name string
		body string
	}{
		{"bad json", `{`},
		{"missing slug", `{"reason": "x"}`},
		{"bad slug", `{"slug": "Not A Slug", "reason": "x"}`},
		{"missing reason", `{"slug": "bill-clinton"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			rh.CreateReport(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestTrendingEmptyDB(t *testing.T) {
	th := &TrendingHandler{DB: newTestDB(t)}

	req := httptest.NewRequest(http.MethodGet, "/api/trending", nil)
	rec := httptest.NewRecorder()
	th.GetTrending(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"trending": []}`, rec.Body.String())
}

func TestTrendingAggregation(t *testing.T) {
	db := newTestDB(t)
	th := &TrendingHandler{DB: db}

	now := time.Now().Unix()
	events := []models.SearchEvent{
		{Slug: "bill-clinton", DisplayName: "Bill Clinton", Found: true, SearchedAt: now},
		{Slug: "bill-clinton", DisplayName: "Bill Clinton", Found: true, SearchedAt: now},
		{Slug: "barack-obama", DisplayName: "Barack Obama", Found: true, SearchedAt: now},
		// outside the 24h window, must not count
		{Slug: "barack-obama", DisplayName: "Barack Obama", Found: true, SearchedAt: now - 2*86400},
	}
	require.NoError(t, database.InsertSearchEvents(db, events))

	req := httptest.NewRequest(http.MethodGet, "/api/trending", nil)
	rec := httptest.NewRecorder()
	th.GetTrending(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp trendingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Trending, 2)
	assert.Equal(t, "bill-clinton", resp.Trending[0].Slug)
	assert.EqualValues(t, 2, resp.Trending[0].SearchCount)
	assert.EqualValues(t, 1, resp.Trending[1].SearchCount)
}

func TestPruneSearchEvents(t *testing.T) {
	db := newTestDB(t)

	now := time.Now().Unix()
	events := []models.SearchEvent{
		{Slug: "old", DisplayName: "Old", SearchedAt: now - 40*86400},
		{Slug: "new", DisplayName: "New", SearchedAt: now},
	}
	require.NoError(t, database.InsertSearchEvents(db, events))

	pruned, err := database.PruneSearchEvents(db, 30*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pruned)

	var count int64
	require.NoError(t, db.Model(&models.SearchEvent{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
