package cleaningController

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"postbox/config"
	"postbox/internal/database"
	"postbox/internal/events"
	"postbox/internal/imaging"
	"postbox/internal/logger"
	. "postbox/internal/models"
	"postbox/internal/repositories"
	"postbox/internal/services"

	"gorm.io/gorm"
)

const (
	MaxCleanerNameLength = 200
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type CleaningController struct {
	cleaningRepo       repositories.CleaningRepository
	mailboxRepo        repositories.MailboxRepository
	transactionService *services.TransactionService
	storageService     *services.StorageService
	eventBus           *events.EventBus
	db                 database.DB
	Config             config.Config
}

// LogCleaningRequest records one cleaning event. Images arrive as base64
// data URIs. RequireBothImages is set by the form submission path, where a
// record without both photos is rejected.
type LogCleaningRequest struct {
	MailboxID         int    `json:"mailbox_id"`
	Date              string `json:"date"`
	CleanerName       string `json:"cleanerName"`
	BeforeImage       string `json:"beforeCleanImage,omitempty"`
	AfterImage        string `json:"afterCleanImage,omitempty"`
	RequireBothImages bool   `json:"-"`
}

type CleaningControllerInterface interface {
	LogCleaning(ctx context.Context, request *LogCleaningRequest) (*CleaningRecord, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	eventBus *events.EventBus,
	config config.Config,
	db database.DB,
) CleaningControllerInterface {
	return &CleaningController{
		cleaningRepo:       repos.Cleaning,
		mailboxRepo:        repos.Mailbox,
		transactionService: services.Transaction,
		storageService:     services.Storage,
		eventBus:           eventBus,
		db:                 db,
		Config:             config,
	}
}

// parseDate accepts a bare date (2006-01-02) or a full RFC3339 timestamp.
func parseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, errors.New("date is required")
	}

	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return time.Time{}, errors.New("invalid date format, expected YYYY-MM-DD or RFC3339")
	}

	return t, nil
}

// decodeDataURI extracts the raw bytes from a base64 data URI such as
// "data:image/jpeg;base64,...".
func decodeDataURI(uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, errors.New("expected a data URI")
	}

	parts := strings.SplitN(uri, ",", 2)
	if len(parts) != 2 || !strings.HasSuffix(parts[0], ";base64") {
		return nil, errors.New("expected a base64 data URI")
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}

	return data, nil
}

func (c *CleaningController) LogCleaning(
	ctx context.Context,
	request *LogCleaningRequest,
) (*CleaningRecord, error) {
	log := logger.NewWithContext(ctx, "cleaningController").Function("LogCleaning")

	if request.MailboxID <= 0 {
		return nil, log.ErrorWithType(ErrValidation, "mailbox_id is required")
	}

	if request.CleanerName == "" {
		return nil, log.ErrorWithType(ErrValidation, "cleanerName is required")
	}

	if len(request.CleanerName) > MaxCleanerNameLength {
		return nil, log.ErrorWithType(
			ErrValidation,
			"cleanerName exceeds maximum length",
			"length", len(request.CleanerName),
			"max", MaxCleanerNameLength,
		)
	}

	date, err := parseDate(request.Date)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid date", "error", err)
	}

	if date.After(time.Now().Add(24 * time.Hour)) {
		return nil, log.ErrorWithType(ErrValidation, "date cannot be in the future")
	}

	if request.RequireBothImages && (request.BeforeImage == "" || request.AfterImage == "") {
		return nil, log.ErrorWithType(ErrValidation, "both before and after images are required")
	}

	if _, err := c.mailboxRepo.GetByID(ctx, c.db.SQLWithContext(ctx), request.MailboxID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "mailbox not found", "mailboxID", request.MailboxID)
		}
		return nil, log.Error("failed to verify mailbox", "error", err, "mailboxID", request.MailboxID)
	}

	now := time.Now().UnixMilli()

	var beforeURL, afterURL *string
	var beforeName, afterName string

	if request.BeforeImage != "" {
		beforeName = fmt.Sprintf("before_%d_%d.jpg", request.MailboxID, now)
		url, err := c.uploadImage(request.BeforeImage, beforeName)
		if err != nil {
			return nil, log.ErrorWithType(ErrValidation, "invalid before image", "error", err)
		}
		beforeURL = &url
	}

	if request.AfterImage != "" {
		afterName = fmt.Sprintf("after_%d_%d.jpg", request.MailboxID, now)
		url, err := c.uploadImage(request.AfterImage, afterName)
		if err != nil {
			// The before image is already on disk; remove it so a failed
			// submission leaves no orphaned objects.
			c.rollbackUploads(log, beforeName)
			return nil, log.ErrorWithType(ErrValidation, "invalid after image", "error", err)
		}
		afterURL = &url
	}

	record := &CleaningRecord{
		MailboxID:        request.MailboxID,
		Date:             date,
		CleanerName:      request.CleanerName,
		BeforeCleanImage: beforeURL,
		AfterCleanImage:  afterURL,
	}

	err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		return c.cleaningRepo.Create(ctx, tx, record)
	})
	if err != nil {
		c.rollbackUploads(log, beforeName, afterName)
		return nil, log.Error(
			"failed to create cleaning record",
			"error", err,
			"mailboxID", request.MailboxID,
		)
	}

	if err := c.eventBus.PublishDataChanged(events.CLEANING_LOGGED, request.MailboxID); err != nil {
		log.Warn("failed to publish cleaning logged event", "error", err, "mailboxID", request.MailboxID)
	}

	log.Info(
		"Cleaning record created successfully",
		"mailboxID", request.MailboxID,
		"recordID", record.ID,
		"cleaner", request.CleanerName,
	)

	return record, nil
}

// uploadImage decodes, normalizes and stores one photo, returning its
// public URL.
func (c *CleaningController) uploadImage(dataURI, name string) (string, error) {
	raw, err := decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	processed, err := imaging.Process(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}

	return c.storageService.Put(name, processed.Data)
}

func (c *CleaningController) rollbackUploads(log logger.Logger, names ...string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		if err := c.storageService.Delete(name); err != nil {
			log.Warn("failed to remove uploaded object during rollback", "name", name, "error", err)
		}
	}
}
