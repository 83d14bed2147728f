package models

// Report is a user-submitted problem report about a person page using GORM.
// It corresponds to the 'reports' table.
type Report struct {
	ID        string `gorm:"primaryKey" json:"id"` // UUID
	Slug      string `gorm:"not null;index" json:"slug"`
	Reason    string `gorm:"not null" json:"reason"`
	Detail    string `json:"detail,omitempty"`
	ClientIP  string `json:"-"`
	CreatedAt int64  `gorm:"not null" json:"created_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (Report) TableName() string {
	return "reports"
}
