package models

import (
	"github.com/shopspring/decimal"
)

// MailboxType is one of the four postal category codes, or empty when unset.
type MailboxType string

const (
	MailboxTypeA MailboxType = "ก."
	MailboxTypeB MailboxType = "ข."
	MailboxTypeC MailboxType = "ค."
	MailboxTypeD MailboxType = "ง."
)

var MailboxTypes = []MailboxType{MailboxTypeA, MailboxTypeB, MailboxTypeC, MailboxTypeD}

func (t MailboxType) IsValid() bool {
	if t == "" {
		return true
	}
	for _, known := range MailboxTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Mailbox is a physical postal collection box with location and
// administrative metadata. Lat/Lng are decimal degrees; decimal.Decimal
// accepts both JSON numbers and numeric strings on the wire.
type Mailbox struct {
	BaseModel
	PostOffice      string           `gorm:"not null;index"       json:"postOffice"`
	PostalCode      string           `gorm:"type:varchar(5)"      json:"postalCode"`
	Jurisdiction    string           `gorm:"not null;index"       json:"jurisdiction"`
	MailboxType     MailboxType      `gorm:"type:varchar(8)"      json:"mailboxType"`
	Landmark        string           `gorm:"type:text"            json:"landmark"`
	Lat             *decimal.Decimal `gorm:"type:numeric(10,6)"   json:"lat"`
	Lng             *decimal.Decimal `gorm:"type:numeric(10,6)"   json:"lng"`
	CleaningHistory []CleaningRecord `gorm:"foreignKey:MailboxID" json:"cleaning_history"`
}

// LatestCleaning returns the most recent cleaning record, relying on the
// repository keeping CleaningHistory sorted newest-first.
func (m *Mailbox) LatestCleaning() *CleaningRecord {
	if len(m.CleaningHistory) == 0 {
		return nil
	}
	return &m.CleaningHistory[0]
}
