package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"subscription-tracker/internal/models"
	"subscription-tracker/internal/repositories"

	"github.com/google/uuid"
)

// AuditService handles the activity trail
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditService{
		repo:   repo,
		logger: logger,
	}
}

var (
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidOwner    = errors.New("invalid owner")
	ErrInvalidAuditLog = errors.New("invalid audit log")
	ErrAuditDateRange  = errors.New("invalid date range: start date must be before end date")
)

var validAuditActions = map[string]bool{
	models.AuditActionSignedIn:            true,
	models.AuditActionInboxScanned:        true,
	models.AuditActionSubscriptionCancel:  true,
	models.AuditActionSubscriptionRemove:  true,
	models.AuditActionSubscriptionRestore: true,
	models.AuditActionPriceUpdated:        true,
	models.AuditActionDirectoryPicked:     true,
	models.AuditActionPendingDiscarded:    true,
	models.AuditActionCustomAdded:         true,
	models.AuditActionStateWritten:        true,
	models.AuditActionStateReset:          true,
	models.AuditActionGuideGenerated:      true,
	models.AuditActionConciergeRequested:  true,
}

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	if !validAuditActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// Record writes an entry for owner. A failed write is logged and otherwise
// ignored so the action being recorded still succeeds.
func (s *AuditService) Record(ctx context.Context, owner models.Owner, action, resource, resourceID string, metadata map[string]interface{}) {
	log := &models.AuditLog{
		UserID:     owner.UserID,
		OwnerKey:   owner.Key,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
	}
	if len(metadata) > 0 {
		log.Metadata = models.JSONBMap(metadata)
	}

	if err := s.CreateAuditLog(ctx, log); err != nil {
		s.logger.WarnContext(ctx, "failed to record activity",
			slog.String("action", action),
			slog.String("owner", owner.Key),
			slog.String("error", err.Error()),
			slog.String("request_id", getRequestID(ctx)),
		)
	}
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// GetUserActivity returns a signed-in user's entries, newest first, with
// optional date filtering and pagination
func (s *AuditService) GetUserActivity(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}

	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return nil, 0, ErrAuditDateRange
	}

	return s.repo.GetUserActivity(ctx, userID, startDate, endDate, offset, limit)
}

// GetOwnerActivity returns the entries recorded for a signed-out owner.
func (s *AuditService) GetOwnerActivity(ctx context.Context, ownerKey string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if ownerKey == "" {
		return nil, 0, ErrInvalidOwner
	}
	return s.repo.GetByOwnerKey(ctx, ownerKey, offset, limit)
}

// Prune deletes entries older than retention. A non-positive retention
// keeps everything.
func (s *AuditService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}

	deleted, err := s.repo.DeleteOlderThan(ctx, retention)
	if err != nil {
		return 0, fmt.Errorf("failed to prune audit logs: %w", err)
	}
	return deleted, nil
}
