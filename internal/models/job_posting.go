package models

import (
	"time"

	"github.com/lib/pq"
)

// JobPosting is static reference data describing an open role.
// Seeded at process start, read-only afterward.
type JobPosting struct {
	Role         string         `gorm:"column:role;type:text;primaryKey" json:"role"`
	Title        string         `gorm:"column:title;type:text" json:"title"`
	Description  string         `gorm:"column:description;type:text" json:"description"`
	Requirements pq.StringArray `gorm:"column:requirements;type:text[]" json:"requirements"`
	EquityTerms  string         `gorm:"column:equity_terms;type:text" json:"equity_terms,omitempty"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (JobPosting) TableName() string { return "job_postings" }
