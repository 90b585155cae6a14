package seed

import (
	"time"

	"postbox/config"
	"postbox/internal/logger"
	. "postbox/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func decimalPtr(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

func daysAgo(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}

func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	mailboxes := []Mailbox{
		{
			PostOffice:   "ที่ทำการไปรษณีย์นครสวรรค์",
			PostalCode:   "60000",
			Jurisdiction: "ปจ.นครสวรรค์",
			MailboxType:  MailboxTypeA,
			Landmark:     "หน้าตลาดสดเทศบาล",
			Lat:          decimalPtr("15.704722"),
			Lng:          decimalPtr("100.137222"),
		},
		{
			PostOffice:   "ที่ทำการไปรษณีย์ตาก",
			PostalCode:   "63000",
			Jurisdiction: "ปจ.ตาก",
			MailboxType:  MailboxTypeB,
			Landmark:     "หน้าโรงพยาบาลสมเด็จพระเจ้าตากสินมหาราช",
		},
		{
			PostOffice:   "ที่ทำการไปรษณีย์แม่สอด",
			PostalCode:   "63110",
			Jurisdiction: "ปจ.ตาก",
			Landmark:     "ตลาดริมเมย",
			Lat:          decimalPtr("16.713056"),
			Lng:          decimalPtr("98.574722"),
		},
		{
			PostOffice:   "ที่ทำการไปรษณีย์สุโขทัย",
			PostalCode:   "64000",
			Jurisdiction: "ปจ.สุโขทัย",
			MailboxType:  MailboxTypeC,
			Landmark:     "หน้าอุทยานประวัติศาสตร์สุโขทัย",
		},
		{
			PostOffice:   "ที่ทำการไปรษณีย์พิษณุโลก",
			PostalCode:   "65000",
			Jurisdiction: "ปจ.พิษณุโลก",
			MailboxType:  MailboxTypeA,
			Landmark:     "หน้าวัดพระศรีรัตนมหาธาตุ",
		},
	}

	for i := range mailboxes {
		var existing Mailbox
		err := db.First(
			&existing,
			"post_office = ? AND landmark = ?",
			mailboxes[i].PostOffice,
			mailboxes[i].Landmark,
		).Error
		if err == nil {
			log.Info("Mailbox already exists", "postOffice", mailboxes[i].PostOffice)
			mailboxes[i] = existing
			continue
		}

		log.Info("Seeding mailbox", "postOffice", mailboxes[i].PostOffice)
		if err := db.Create(&mailboxes[i]).Error; err != nil {
			log.Er("failed to create mailbox", err, "postOffice", mailboxes[i].PostOffice)
		}
	}

	// A mix of recent, stale and missing cleaning history so the overdue
	// states show up in development.
	records := []CleaningRecord{
		{MailboxID: mailboxes[0].ID, Date: daysAgo(5), CleanerName: "สมชาย ใจดี"},
		{MailboxID: mailboxes[0].ID, Date: daysAgo(120), CleanerName: "สมหญิง รักสะอาด"},
		{MailboxID: mailboxes[1].ID, Date: daysAgo(95), CleanerName: "ประเสริฐ ขยันยิ่ง"},
		{MailboxID: mailboxes[3].ID, Date: daysAgo(30), CleanerName: "สมหญิง รักสะอาด"},
	}

	for _, record := range records {
		if record.MailboxID == 0 {
			continue
		}

		var count int64
		db.Model(&CleaningRecord{}).
			Where("mailbox_id = ? AND cleaner_name = ?", record.MailboxID, record.CleanerName).
			Count(&count)
		if count > 0 {
			continue
		}

		if err := db.Create(&record).Error; err != nil {
			log.Er("failed to create cleaning record", err, "mailboxID", record.MailboxID)
		}
	}

	return nil
}
