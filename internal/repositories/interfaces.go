package repositories

import (
	"context"
	"time"

	"subscription-tracker/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	FirstOrCreateByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

// GoogleCredentialRepositoryInterface defines the contract for stored OAuth tokens
type GoogleCredentialRepositoryInterface interface {
	Upsert(ctx context.Context, credential *models.GoogleCredential) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.GoogleCredential, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// StateDocumentRepositoryInterface defines whole-value storage of an owner's
// state documents. Put with expectedVersion > 0 only succeeds when the stored
// version still matches; expectedVersion 0 writes unconditionally.
type StateDocumentRepositoryInterface interface {
	GetAll(ctx context.Context, ownerKey string) ([]models.StateDocument, error)
	Get(ctx context.Context, ownerKey string, kind models.DocumentKind) (*models.StateDocument, error)
	Put(ctx context.Context, doc *models.StateDocument, expectedVersion int) error
	DeleteAll(ctx context.Context, ownerKey string) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	GetUserActivity(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByOwnerKey(ctx context.Context, ownerKey string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}

// ConciergeRequestRepositoryInterface defines the contract for concierge sign-ups
type ConciergeRequestRepositoryInterface interface {
	Create(ctx context.Context, request *models.ConciergeRequest) error
	GetByEmail(ctx context.Context, email string) (*models.ConciergeRequest, error)
}
