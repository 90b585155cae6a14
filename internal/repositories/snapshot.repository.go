package repositories

import (
	"context"
	"errors"

	"postbox/internal/logger"
	. "postbox/internal/models"

	"gorm.io/gorm"
)

type SnapshotRepository interface {
	Create(ctx context.Context, tx *gorm.DB, snapshot *DashboardSnapshot) error
	GetLatest(ctx context.Context, tx *gorm.DB) (*DashboardSnapshot, error)
}

type snapshotRepository struct {
	log logger.Logger
}

func NewSnapshotRepository() SnapshotRepository {
	return &snapshotRepository{
		log: logger.New("snapshotRepository"),
	}
}

func (r *snapshotRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	snapshot *DashboardSnapshot,
) error {
	log := r.log.Function("Create")

	if err := tx.Create(snapshot).Error; err != nil {
		return log.Err("failed to create dashboard snapshot", err)
	}

	return nil
}

// GetLatest returns the most recent snapshot, or nil when none has been
// written yet.
func (r *snapshotRepository) GetLatest(
	ctx context.Context,
	tx *gorm.DB,
) (*DashboardSnapshot, error) {
	log := r.log.Function("GetLatest")

	var snapshot DashboardSnapshot
	err := tx.Order("created_at DESC").First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get latest dashboard snapshot", err)
	}

	return &snapshot, nil
}
