package models

import (
	"gorm.io/datatypes"
)

// DashboardSnapshot is a nightly aggregate written by the overdue scan job.
// Counts holds the per-post-office, per-jurisdiction and per-type tallies.
type DashboardSnapshot struct {
	BaseModel
	TotalMailboxes int            `gorm:"not null" json:"totalMailboxes"`
	OverdueCount   int            `gorm:"not null" json:"overdueCount"`
	ThresholdDays  int            `gorm:"not null" json:"thresholdDays"`
	Counts         datatypes.JSON `gorm:"type:jsonb" json:"counts"`
}
