package repositories

import (
	"context"
	"sort"
	"time"

	"postbox/internal/database"
	"postbox/internal/logger"
	. "postbox/internal/models"

	"gorm.io/gorm"
)

const (
	MAILBOX_LIST_CACHE_KEY    = "mailboxes:all"
	MAILBOX_LIST_CACHE_EXPIRY = 15 * time.Minute
)

type MailboxRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]Mailbox, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Mailbox, error)
	Create(ctx context.Context, tx *gorm.DB, mailbox *Mailbox) error
	Update(ctx context.Context, tx *gorm.DB, mailbox *Mailbox) error
	ClearListCache(ctx context.Context)
}

type mailboxRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewMailboxRepository(cache database.CacheClient) MailboxRepository {
	return &mailboxRepository{
		cache: cache,
		log:   logger.New("mailboxRepository"),
	}
}

// GetAll returns every mailbox with its full cleaning history, newest
// mailbox first. History entries are ordered newest cleaning first so
// consumers can treat index zero as the latest.
func (r *mailboxRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]Mailbox, error) {
	log := r.log.Function("GetAll")

	var cached []Mailbox
	found, err := database.NewCacheBuilder(r.cache, MAILBOX_LIST_CACHE_KEY).
		WithContext(ctx).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get mailbox list from cache", "error", err)
	}

	if found {
		return cached, nil
	}

	var mailboxes []Mailbox
	err = tx.
		Preload("CleaningHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC, created_at DESC")
		}).
		Order("created_at DESC").
		Find(&mailboxes).Error
	if err != nil {
		return nil, log.Err("failed to get mailboxes", err)
	}

	for i := range mailboxes {
		sortHistoryNewestFirst(mailboxes[i].CleaningHistory)
	}

	err = database.NewCacheBuilder(r.cache, MAILBOX_LIST_CACHE_KEY).
		WithContext(ctx).
		WithStruct(mailboxes).
		WithTTL(MAILBOX_LIST_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set mailbox list in cache", "error", err)
	}

	return mailboxes, nil
}

func (r *mailboxRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Mailbox, error) {
	log := r.log.Function("GetByID")

	var mailbox Mailbox
	err := tx.
		Preload("CleaningHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC, created_at DESC")
		}).
		First(&mailbox, id).Error
	if err != nil {
		return nil, log.Err("failed to get mailbox", err, "id", id)
	}

	sortHistoryNewestFirst(mailbox.CleaningHistory)

	return &mailbox, nil
}

func (r *mailboxRepository) Create(ctx context.Context, tx *gorm.DB, mailbox *Mailbox) error {
	log := r.log.Function("Create")

	if err := tx.Create(mailbox).Error; err != nil {
		return log.Err("failed to create mailbox", err, "postOffice", mailbox.PostOffice)
	}

	r.ClearListCache(ctx)

	return nil
}

func (r *mailboxRepository) Update(ctx context.Context, tx *gorm.DB, mailbox *Mailbox) error {
	log := r.log.Function("Update")

	result := tx.Model(&Mailbox{}).Where("id = ?", mailbox.ID).Updates(map[string]any{
		"post_office":  mailbox.PostOffice,
		"postal_code":  mailbox.PostalCode,
		"jurisdiction": mailbox.Jurisdiction,
		"mailbox_type": mailbox.MailboxType,
		"landmark":     mailbox.Landmark,
		"lat":          mailbox.Lat,
		"lng":          mailbox.Lng,
	})
	if result.Error != nil {
		return log.Err("failed to update mailbox", result.Error, "id", mailbox.ID)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.ClearListCache(ctx)

	return nil
}

func (r *mailboxRepository) ClearListCache(ctx context.Context) {
	err := database.NewCacheBuilder(r.cache, MAILBOX_LIST_CACHE_KEY).
		WithContext(ctx).
		Delete()
	if err != nil {
		r.log.Warn("failed to clear mailbox list cache", "error", err)
	}
}

func sortHistoryNewestFirst(history []CleaningRecord) {
	sort.SliceStable(history, func(i, j int) bool {
		if history[i].Date.Equal(history[j].Date) {
			return history[i].CreatedAt.After(history[j].CreatedAt)
		}
		return history[i].Date.After(history[j].Date)
	})
}
