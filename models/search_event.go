package models

// SearchEvent records one person-page lookup for trending stats using GORM.
// It corresponds to the 'search_events' table.
type SearchEvent struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string `gorm:"not null;index" json:"slug"`
	DisplayName string `gorm:"not null" json:"display_name"`
	Found       bool   `gorm:"not null" json:"found"`
	SearchedAt  int64  `gorm:"not null;index" json:"searched_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (SearchEvent) TableName() string {
	return "search_events"
}

// TrendingEntry is one row of the trending aggregation, not a table.
type TrendingEntry struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
	SearchCount int64  `json:"search_count"`
}
