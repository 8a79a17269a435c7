package services

import (
	"context"
	"time"

	"subscription-tracker/internal/models"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// DirectoryServiceInterface serves the cancellation directory
type DirectoryServiceInterface interface {
	GetSnapshot(ctx context.Context) (*models.DirectorySnapshot, error)
	Search(ctx context.Context, query string, limit int) ([]models.DirectoryOption, error)
	Match(options []models.DirectoryOption, vendor models.DetectedVendor) (models.DirectoryOption, bool)
}

// MailClientInterface reads billing email metadata for one user
type MailClientInterface interface {
	ListCandidateIDs(ctx context.Context, limit int) ([]string, error)
	GetMetadata(ctx context.Context, id string) (*models.MessageMetadata, error)
}

// MailClientFactoryInterface opens a mail client with a user's stored credential
type MailClientFactoryInterface interface {
	ForUser(ctx context.Context, userID uuid.UUID) (MailClientInterface, error)
}

// ScanServiceInterface detects subscriptions in a user's inbox
type ScanServiceInterface interface {
	Scan(ctx context.Context, owner models.Owner) (*models.ScanResult, error)
}

// StateStoreInterface is whole-value storage of an owner's subscription state.
// Each setter returns the new document version.
type StateStoreInterface interface {
	Load(ctx context.Context, owner models.Owner) (*models.SubscriptionState, error)
	SetDetected(ctx context.Context, owner models.Owner, vendors []models.DetectedVendor, expectedVersion int) (int, error)
	SetCanceledIDs(ctx context.Context, owner models.Owner, ids []string, expectedVersion int) (int, error)
	SetRemovedIDs(ctx context.Context, owner models.Owner, ids []string, expectedVersion int) (int, error)
	SetCustom(ctx context.Context, owner models.Owner, entries []models.Subscription, expectedVersion int) (int, error)
	SetPreferences(ctx context.Context, owner models.Owner, prefs models.Preferences, expectedVersion int) (int, error)
	Reset(ctx context.Context, owner models.Owner) error
}

// SubscriptionServiceInterface runs subscription state transitions and
// renders the reconciled view
type SubscriptionServiceInterface interface {
	GetView(ctx context.Context, owner models.Owner) (*models.SubscriptionView, error)
	Cancel(ctx context.Context, owner models.Owner, id string) (*models.SubscriptionView, error)
	Remove(ctx context.Context, owner models.Owner, id string) (*models.SubscriptionView, error)
	Restore(ctx context.Context, owner models.Owner, id string) (*models.SubscriptionView, error)
	PickFromDirectory(ctx context.Context, owner models.Owner, optionID string) (*models.SubscriptionView, error)
	EditPrice(ctx context.Context, owner models.Owner, id string, edit models.PriceEdit) (*models.SubscriptionView, error)
	DiscardPending(ctx context.Context, owner models.Owner, id string) (*models.SubscriptionView, error)
	AddCustom(ctx context.Context, owner models.Owner, input models.CustomEntryInput) (*models.SubscriptionView, error)
	ApplyCommand(ctx context.Context, owner models.Owner, cmd models.StateCommand) (*models.SubscriptionView, error)
	OpenCancel(ctx context.Context, owner models.Owner, id string) (string, error)
	Find(ctx context.Context, owner models.Owner, id string) (*models.Subscription, error)
	ActiveSubscriptions(ctx context.Context, owner models.Owner) ([]models.Subscription, error)
}

// TextGeneratorInterface calls the external text-generation API
type TextGeneratorInterface interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error)
}

// GenerationServiceInterface builds prompts for guides and insights
type GenerationServiceInterface interface {
	Guide(ctx context.Context, owner models.Owner, subscriptionID string) (*models.Subscription, string, error)
	Insights(ctx context.Context, owner models.Owner) ([]models.Insight, error)
	Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error)
}

// GoogleAuthServiceInterface handles Google sign-in and stored Gmail access
type GoogleAuthServiceInterface interface {
	AuthCodeURL(state string) string
	CompleteSignIn(ctx context.Context, code string) (*models.SignInResult, error)
	TokenSource(ctx context.Context, userID uuid.UUID) (oauth2.TokenSource, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, bool, error)
	Disconnect(ctx context.Context, userID uuid.UUID) error
}

// TokenServiceInterface defines the contract for session token operations
type TokenServiceInterface interface {
	GenerateSessionToken(user *models.User) (string, time.Time, error)
	ValidateSessionToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// TokenCipherInterface encrypts OAuth tokens at rest
type TokenCipherInterface interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// AuditServiceInterface records and reads the activity trail
type AuditServiceInterface interface {
	Record(ctx context.Context, owner models.Owner, action, resource, resourceID string, metadata map[string]interface{})
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	GetUserActivity(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	GetOwnerActivity(ctx context.Context, ownerKey string, offset, limit int) ([]*models.AuditLog, int64, error)
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

// ConciergeServiceInterface stores requests for hands-on cancellation help
type ConciergeServiceInterface interface {
	Request(ctx context.Context, email, source string, userID *uuid.UUID) (*models.ConciergeRequest, bool, error)
}

// DebouncerInterface drops repeats of the same action inside a window
type DebouncerInterface interface {
	Allow(key string) bool
}

// MetricsRecorderInterface defines methods for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// CircuitBreakerInterface guards calls to a flaky upstream
type CircuitBreakerInterface interface {
	Allow() error
	Record(err error)
	State() models.CircuitBreakerState
}

// ActivityLoggerInterface provides structured logging for user-facing operations
type ActivityLoggerInterface interface {
	LogScanStarted(ctx context.Context, owner models.Owner, candidates int)
	LogScanCompleted(ctx context.Context, owner models.Owner, detected int, durationMs int64)
	LogScanFailed(ctx context.Context, owner models.Owner, errorMsg string, durationMs int64)
	LogTransition(ctx context.Context, owner models.Owner, transition, subscriptionID string)
	LogStaleWrite(ctx context.Context, owner models.Owner, kind models.DocumentKind, expectedVersion int)
	LogDirectoryLoaded(ctx context.Context, options int, etag string)
	LogGenerationFailed(ctx context.Context, purpose, errorMsg string)
}
