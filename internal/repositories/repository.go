package repositories

import (
	"postbox/internal/database"
)

type Repository struct {
	Mailbox  MailboxRepository
	Cleaning CleaningRepository
	Snapshot SnapshotRepository
}

func New(db database.DB) Repository {
	return Repository{
		Mailbox:  NewMailboxRepository(db.Cache.General),
		Cleaning: NewCleaningRepository(db.Cache.General),
		Snapshot: NewSnapshotRepository(),
	}
}
