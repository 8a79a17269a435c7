package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"subscription-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCredentialNotFound = errors.New("google credential not found")

// GoogleCredentialRepository stores one encrypted token pair per user
type GoogleCredentialRepository struct {
	db *gorm.DB
}

func NewGoogleCredentialRepository(db *gorm.DB) GoogleCredentialRepositoryInterface {
	return &GoogleCredentialRepository{db: db}
}

// Upsert inserts the credential or replaces the stored tokens for its user.
// An empty refresh token keeps the previously stored one, since Google only
// returns a refresh token on first consent.
func (r *GoogleCredentialRepository) Upsert(ctx context.Context, credential *models.GoogleCredential) error {
	if credential == nil {
		return errors.New("credential cannot be nil")
	}
	if credential.UserID == uuid.Nil {
		return errors.New("credential user ID cannot be nil")
	}

	credential.UpdatedAt = time.Now()

	updates := []string{"access_token_ciphertext", "token_type", "expiry", "scopes", "updated_at"}
	if credential.RefreshTokenCiphertext != "" {
		updates = append(updates, "refresh_token_ciphertext")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(updates),
	}).Create(credential).Error
	if err != nil {
		return fmt.Errorf("failed to upsert google credential: %w", err)
	}

	return nil
}

// GetByUserID retrieves the stored credential for a user
func (r *GoogleCredentialRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.GoogleCredential, error) {
	var credential models.GoogleCredential
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&credential).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredentialNotFound
		}
		return nil, fmt.Errorf("failed to get google credential: %w", err)
	}

	return &credential, nil
}

// DeleteByUserID forgets a user's tokens, forcing re-consent on the next scan
func (r *GoogleCredentialRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.GoogleCredential{}).Error; err != nil {
		return fmt.Errorf("failed to delete google credential: %w", err)
	}
	return nil
}
