package repositories

import (
	"context"

	"postbox/internal/database"
	"postbox/internal/logger"
	. "postbox/internal/models"

	"gorm.io/gorm"
)

type CleaningRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *CleaningRecord) error
}

type cleaningRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewCleaningRepository(cache database.CacheClient) CleaningRepository {
	return &cleaningRepository{
		cache: cache,
		log:   logger.New("cleaningRepository"),
	}
}

// Create appends one cleaning record. The mailbox list cache is cleared so
// the next list read reflects the new latest cleaning date.
func (r *cleaningRepository) Create(ctx context.Context, tx *gorm.DB, record *CleaningRecord) error {
	log := r.log.Function("Create")

	if err := tx.Create(record).Error; err != nil {
		return log.Err("failed to create cleaning record", err, "mailboxID", record.MailboxID)
	}

	err := database.NewCacheBuilder(r.cache, MAILBOX_LIST_CACHE_KEY).
		WithContext(ctx).
		Delete()
	if err != nil {
		log.Warn("failed to clear mailbox list cache", "error", err)
	}

	return nil
}
