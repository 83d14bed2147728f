package database

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/camden-git/filecheckbackend/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// InsertSearchEvents writes a batch of tracked lookups in one statement.
func InsertSearchEvents(db *gorm.DB, events []models.SearchEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := db.Create(&events).Error; err != nil {
		return fmt.Errorf("failed to insert %d search events: %w", len(events), err)
	}
	return nil
}

// GetTrendingSearches returns the most looked-up people within the window,
// busiest first. the aggregate is built with squirrel and run against the
// underlying sql.DB; GORM's query builder has no clean GROUP BY + window
// filter combination for this.
func GetTrendingSearches(db *gorm.DB, window time.Duration, limit int) ([]models.TrendingEntry, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	cutoff := time.Now().Add(-window).Unix()

	queryBuilder := psql.Select("slug", "display_name", "COUNT(*) AS search_count").
		From("search_events").
		Where(sq.GtOrEq{"searched_at": cutoff}).
		GroupBy("slug", "display_name").
		OrderBy("search_count DESC").
		Limit(uint64(limit))

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build trending query: %w", err)
	}

	rows, err := sqlDB.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trending searches: %w", err)
	}
	defer rows.Close()

	var entries []models.TrendingEntry
	for rows.Next() {
		var entry models.TrendingEntry
		if err := rows.Scan(&entry.Slug, &entry.DisplayName, &entry.SearchCount); err != nil {
			return nil, fmt.Errorf("failed to scan trending row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// PruneSearchEvents deletes events older than the retention window so the
// table does not grow without bound.
func PruneSearchEvents(db *gorm.DB, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention).Unix()
	result := db.Where("searched_at < ?", cutoff).Delete(&models.SearchEvent{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune search events: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// CreateReport stores one user problem report and returns its generated ID.
func CreateReport(db *gorm.DB, slug, reason, detail, clientIP string) (string, error) {
	report := models.Report{
		ID:        uuid.NewString(),
		Slug:      slug,
		Reason:    reason,
		Detail:    detail,
		ClientIP:  clientIP,
		CreatedAt: time.Now().Unix(),
	}
	if err := db.Create(&report).Error; err != nil {
		return "", fmt.Errorf("failed to create report for %s: %w", slug, err)
	}
	return report.ID, nil
}
