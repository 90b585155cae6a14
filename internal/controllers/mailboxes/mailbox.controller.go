package mailboxController

import (
	"context"
	"errors"
	"regexp"

	"postbox/config"
	"postbox/internal/database"
	"postbox/internal/events"
	"postbox/internal/listview"
	"postbox/internal/logger"
	. "postbox/internal/models"
	"postbox/internal/repositories"
	"postbox/internal/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MaxLandmarkLength = 500
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")

	postalCodePattern = regexp.MustCompile(`^[0-9]{5}$`)
)

type MailboxController struct {
	mailboxRepo        repositories.MailboxRepository
	transactionService *services.TransactionService
	eventBus           *events.EventBus
	engine             *listview.Engine
	db                 database.DB
	Config             config.Config
}

// CreateMailboxRequest carries a new mailbox. Lat/Lng accept both JSON
// numbers and numeric strings; both must be present or both absent.
type CreateMailboxRequest struct {
	PostOffice   string           `json:"postOffice"`
	PostalCode   string           `json:"postalCode"`
	Jurisdiction string           `json:"jurisdiction"`
	MailboxType  MailboxType      `json:"mailboxType"`
	Landmark     string           `json:"landmark"`
	Lat          *decimal.Decimal `json:"lat"`
	Lng          *decimal.Decimal `json:"lng"`
}

type UpdateMailboxRequest struct {
	PostOffice   string           `json:"postOffice"`
	PostalCode   string           `json:"postalCode"`
	Jurisdiction string           `json:"jurisdiction"`
	MailboxType  MailboxType      `json:"mailboxType"`
	Landmark     string           `json:"landmark"`
	Lat          *decimal.Decimal `json:"lat"`
	Lng          *decimal.Decimal `json:"lng"`
}

type MailboxControllerInterface interface {
	GetAll(ctx context.Context) ([]Mailbox, error)
	GetView(ctx context.Context, state listview.ViewState) (listview.Result, error)
	Create(ctx context.Context, request *CreateMailboxRequest) (*Mailbox, error)
	Update(ctx context.Context, id int, request *UpdateMailboxRequest) (*Mailbox, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	eventBus *events.EventBus,
	config config.Config,
	db database.DB,
) MailboxControllerInterface {
	return &MailboxController{
		mailboxRepo:        repos.Mailbox,
		transactionService: services.Transaction,
		eventBus:           eventBus,
		engine:             listview.New(config.OverdueThresholdDays, config.ListPageSize),
		db:                 db,
		Config:             config,
	}
}

func (c *MailboxController) GetAll(ctx context.Context) ([]Mailbox, error) {
	log := logger.NewWithContext(ctx, "mailboxController").Function("GetAll")

	mailboxes, err := c.mailboxRepo.GetAll(ctx, c.db.SQLWithContext(ctx))
	if err != nil {
		return nil, log.Error("failed to get mailboxes", "error", err)
	}

	return mailboxes, nil
}

func (c *MailboxController) GetView(
	ctx context.Context,
	state listview.ViewState,
) (listview.Result, error) {
	log := logger.NewWithContext(ctx, "mailboxController").Function("GetView")

	if state.SortColumn != "" {
		switch state.SortColumn {
		case listview.SortPostOffice,
			listview.SortLandmark,
			listview.SortJurisdiction,
			listview.SortLatestCleaningDate:
		default:
			return listview.Result{}, log.ErrorWithType(
				ErrValidation,
				"invalid sort column",
				"sortColumn", state.SortColumn,
			)
		}
	}

	if state.SortDirection != "" &&
		state.SortDirection != listview.Ascending &&
		state.SortDirection != listview.Descending {
		return listview.Result{}, log.ErrorWithType(
			ErrValidation,
			"invalid sort direction",
			"sortDirection", state.SortDirection,
		)
	}

	mailboxes, err := c.mailboxRepo.GetAll(ctx, c.db.SQLWithContext(ctx))
	if err != nil {
		return listview.Result{}, log.Error("failed to get mailboxes", "error", err)
	}

	return c.engine.Apply(mailboxes, state), nil
}

func (c *MailboxController) Create(
	ctx context.Context,
	request *CreateMailboxRequest,
) (*Mailbox, error) {
	log := logger.NewWithContext(ctx, "mailboxController").Function("Create")

	if err := c.validateFields(
		log,
		request.PostOffice,
		request.PostalCode,
		request.Jurisdiction,
		request.MailboxType,
		request.Landmark,
		request.Lat,
		request.Lng,
	); err != nil {
		return nil, err
	}

	mailbox := &Mailbox{
		PostOffice:   request.PostOffice,
		PostalCode:   request.PostalCode,
		Jurisdiction: request.Jurisdiction,
		MailboxType:  request.MailboxType,
		Landmark:     request.Landmark,
		Lat:          request.Lat,
		Lng:          request.Lng,
	}

	if err := c.mailboxRepo.Create(ctx, c.db.SQLWithContext(ctx), mailbox); err != nil {
		return nil, log.Error("failed to create mailbox", "error", err)
	}

	if err := c.eventBus.PublishDataChanged(events.MAILBOX_CREATED, mailbox.ID); err != nil {
		log.Warn("failed to publish mailbox created event", "error", err, "mailboxID", mailbox.ID)
	}

	log.Info("Mailbox created successfully", "mailboxID", mailbox.ID, "postOffice", mailbox.PostOffice)

	return mailbox, nil
}

func (c *MailboxController) Update(
	ctx context.Context,
	id int,
	request *UpdateMailboxRequest,
) (*Mailbox, error) {
	log := logger.NewWithContext(ctx, "mailboxController").Function("Update")

	if id <= 0 {
		return nil, log.ErrorWithType(ErrValidation, "mailbox id is required")
	}

	if err := c.validateFields(
		log,
		request.PostOffice,
		request.PostalCode,
		request.Jurisdiction,
		request.MailboxType,
		request.Landmark,
		request.Lat,
		request.Lng,
	); err != nil {
		return nil, err
	}

	mailbox := &Mailbox{
		BaseModel:    BaseModel{ID: id},
		PostOffice:   request.PostOffice,
		PostalCode:   request.PostalCode,
		Jurisdiction: request.Jurisdiction,
		MailboxType:  request.MailboxType,
		Landmark:     request.Landmark,
		Lat:          request.Lat,
		Lng:          request.Lng,
	}

	err := c.mailboxRepo.Update(ctx, c.db.SQLWithContext(ctx), mailbox)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "mailbox not found", "id", id)
		}
		return nil, log.Error("failed to update mailbox", "error", err, "id", id)
	}

	updated, err := c.mailboxRepo.GetByID(ctx, c.db.SQLWithContext(ctx), id)
	if err != nil {
		return nil, log.Error("failed to retrieve updated mailbox", "error", err, "id", id)
	}

	if err := c.eventBus.PublishDataChanged(events.MAILBOX_UPDATED, id); err != nil {
		log.Warn("failed to publish mailbox updated event", "error", err, "mailboxID", id)
	}

	log.Info("Mailbox updated successfully", "mailboxID", id)

	return updated, nil
}

func (c *MailboxController) validateFields(
	log logger.Logger,
	postOffice, postalCode, jurisdiction string,
	mailboxType MailboxType,
	landmark string,
	lat, lng *decimal.Decimal,
) error {
	if postOffice == "" {
		return log.ErrorWithType(ErrValidation, "postOffice is required")
	}

	if !IsKnownPostOffice(postOffice) {
		return log.ErrorWithType(ErrValidation, "unknown post office", "postOffice", postOffice)
	}

	if !postalCodePattern.MatchString(postalCode) {
		return log.ErrorWithType(ErrValidation, "postalCode must be 5 digits", "postalCode", postalCode)
	}

	if jurisdiction == "" {
		return log.ErrorWithType(ErrValidation, "jurisdiction is required")
	}

	if !IsKnownJurisdiction(jurisdiction) {
		return log.ErrorWithType(ErrValidation, "unknown jurisdiction", "jurisdiction", jurisdiction)
	}

	if !mailboxType.IsValid() {
		return log.ErrorWithType(ErrValidation, "invalid mailbox type", "mailboxType", mailboxType)
	}

	if len(landmark) > MaxLandmarkLength {
		return log.ErrorWithType(
			ErrValidation,
			"landmark exceeds maximum length",
			"length", len(landmark),
			"max", MaxLandmarkLength,
		)
	}

	if (lat == nil) != (lng == nil) {
		return log.ErrorWithType(ErrValidation, "lat and lng must be provided together")
	}

	if lat != nil {
		if lat.LessThan(decimal.NewFromInt(-90)) || lat.GreaterThan(decimal.NewFromInt(90)) {
			return log.ErrorWithType(ErrValidation, "lat out of range", "lat", lat.String())
		}
		if lng.LessThan(decimal.NewFromInt(-180)) || lng.GreaterThan(decimal.NewFromInt(180)) {
			return log.ErrorWithType(ErrValidation, "lng out of range", "lng", lng.String())
		}
	}

	return nil
}
