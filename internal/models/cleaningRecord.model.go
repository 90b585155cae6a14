package models

import (
	"time"
)

// CleaningRecord documents one cleaning event for a mailbox with optional
// before/after photo URLs. Records are append-only: created once, never
// edited or deleted through the application.
type CleaningRecord struct {
	BaseModel
	MailboxID        int       `gorm:"not null;index"   json:"mailbox_id"`
	Date             time.Time `gorm:"not null;index"   json:"date"`
	CleanerName      string    `gorm:"not null"         json:"cleanerName"`
	BeforeCleanImage *string   `gorm:"type:text"        json:"beforeCleanImage"`
	AfterCleanImage  *string   `gorm:"type:text"        json:"afterCleanImage"`
}
