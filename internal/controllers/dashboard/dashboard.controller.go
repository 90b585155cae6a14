package dashboardController

import (
	"context"
	"errors"
	"time"

	"postbox/config"
	"postbox/internal/database"
	"postbox/internal/listview"
	"postbox/internal/logger"
	. "postbox/internal/models"
	"postbox/internal/repositories"
)

var (
	ErrValidation = errors.New("validation error")
)

type DashboardController struct {
	mailboxRepo  repositories.MailboxRepository
	snapshotRepo repositories.SnapshotRepository
	engine       *listview.Engine
	db           database.DB
	Config       config.Config
}

// Overview aggregates the mailbox collection for the dashboard page. When a
// jurisdiction is given, the per-post-office counts and the overdue numbers
// are restricted to it; the jurisdiction breakdown always covers everything.
type Overview struct {
	TotalMailboxes       int            `json:"totalMailboxes"`
	OverdueCount         int            `json:"overdueCount"`
	ThresholdDays        int            `json:"thresholdDays"`
	CountsByPostOffice   map[string]int `json:"countsByPostOffice"`
	CountsByJurisdiction map[string]int `json:"countsByJurisdiction"`
	CountsByType         map[string]int `json:"countsByType"`
	OverdueMailboxes     []Mailbox      `json:"overdueMailboxes"`
	LastSnapshotAt       *time.Time     `json:"lastSnapshotAt,omitempty"`
}

type DashboardControllerInterface interface {
	GetOverview(ctx context.Context, jurisdiction string) (*Overview, error)
}

func New(
	repos repositories.Repository,
	config config.Config,
	db database.DB,
) DashboardControllerInterface {
	return &DashboardController{
		mailboxRepo:  repos.Mailbox,
		snapshotRepo: repos.Snapshot,
		engine:       listview.New(config.OverdueThresholdDays, config.ListPageSize),
		db:           db,
		Config:       config,
	}
}

func (c *DashboardController) GetOverview(
	ctx context.Context,
	jurisdiction string,
) (*Overview, error) {
	log := logger.NewWithContext(ctx, "dashboardController").Function("GetOverview")

	if jurisdiction != "" && !IsKnownJurisdiction(jurisdiction) {
		return nil, log.ErrorWithType(ErrValidation, "unknown jurisdiction", "jurisdiction", jurisdiction)
	}

	mailboxes, err := c.mailboxRepo.GetAll(ctx, c.db.SQLWithContext(ctx))
	if err != nil {
		return nil, log.Error("failed to get mailboxes", "error", err)
	}

	overview := &Overview{
		ThresholdDays:        c.engine.ThresholdDays,
		CountsByPostOffice:   make(map[string]int),
		CountsByJurisdiction: make(map[string]int),
		CountsByType:         make(map[string]int),
	}

	scoped := mailboxes[:0:0]
	for _, m := range mailboxes {
		overview.CountsByJurisdiction[m.Jurisdiction]++

		if jurisdiction != "" && m.Jurisdiction != jurisdiction {
			continue
		}
		scoped = append(scoped, m)

		overview.CountsByPostOffice[m.PostOffice]++
		if m.MailboxType != "" {
			overview.CountsByType[string(m.MailboxType)]++
		}
	}

	overview.TotalMailboxes = len(scoped)

	for _, m := range scoped {
		if c.engine.IsOverdue(m) {
			overview.OverdueCount++
			overview.OverdueMailboxes = append(overview.OverdueMailboxes, m)
		}
	}

	snapshot, err := c.snapshotRepo.GetLatest(ctx, c.db.SQLWithContext(ctx))
	if err != nil {
		log.Warn("failed to get latest dashboard snapshot", "error", err)
	} else if snapshot != nil {
		overview.LastSnapshotAt = &snapshot.CreatedAt
	}

	return overview, nil
}
