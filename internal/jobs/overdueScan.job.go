package jobs

import (
	"context"
	"encoding/json"

	"postbox/internal/database"
	"postbox/internal/listview"
	"postbox/internal/logger"
	. "postbox/internal/models"
	"postbox/internal/repositories"
	"postbox/internal/services"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OverdueScanJob walks the whole mailbox collection once a day and persists
// a dashboard snapshot with the overdue count and the per-category tallies.
type OverdueScanJob struct {
	mailboxRepo        repositories.MailboxRepository
	snapshotRepo       repositories.SnapshotRepository
	transactionService *services.TransactionService
	engine             *listview.Engine
	db                 database.DB
	log                logger.Logger
	schedule           services.Schedule
}

func NewOverdueScanJob(
	repos repositories.Repository,
	transactionService *services.TransactionService,
	engine *listview.Engine,
	db database.DB,
	schedule services.Schedule,
) *OverdueScanJob {
	log := logger.New("overdueScanJob")
	log.Info("Creating new overdue scan job", "schedule", schedule)

	return &OverdueScanJob{
		mailboxRepo:        repos.Mailbox,
		snapshotRepo:       repos.Snapshot,
		transactionService: transactionService,
		engine:             engine,
		db:                 db,
		log:                log,
		schedule:           schedule,
	}
}

func (j *OverdueScanJob) Name() string {
	return "OverdueScan"
}

func (j *OverdueScanJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	log.Info("Starting overdue scan")

	mailboxes, err := j.mailboxRepo.GetAll(ctx, j.db.SQLWithContext(ctx))
	if err != nil {
		return log.Err("failed to load mailboxes for overdue scan", err)
	}

	countsByPostOffice := make(map[string]int)
	countsByJurisdiction := make(map[string]int)
	countsByType := make(map[string]int)

	for _, m := range mailboxes {
		countsByPostOffice[m.PostOffice]++
		countsByJurisdiction[m.Jurisdiction]++
		if m.MailboxType != "" {
			countsByType[string(m.MailboxType)]++
		}
	}

	counts, err := json.Marshal(map[string]any{
		"byPostOffice":   countsByPostOffice,
		"byJurisdiction": countsByJurisdiction,
		"byType":         countsByType,
	})
	if err != nil {
		return log.Err("failed to marshal snapshot counts", err)
	}

	snapshot := &DashboardSnapshot{
		TotalMailboxes: len(mailboxes),
		OverdueCount:   j.engine.OverdueCount(mailboxes),
		ThresholdDays:  j.engine.ThresholdDays,
		Counts:         datatypes.JSON(counts),
	}

	err = j.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		return j.snapshotRepo.Create(ctx, tx, snapshot)
	})
	if err != nil {
		return log.Err("failed to persist dashboard snapshot", err)
	}

	log.Info(
		"Overdue scan completed successfully",
		"totalMailboxes", snapshot.TotalMailboxes,
		"overdueCount", snapshot.OverdueCount,
	)
	return nil
}

func (j *OverdueScanJob) Schedule() services.Schedule {
	return j.schedule
}
