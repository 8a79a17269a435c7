package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoogleCredential stores the encrypted OAuth token pair for a user's
// Gmail access. Ciphertexts are produced by the token cipher, never raw.
type GoogleCredential struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID                 uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	AccessTokenCiphertext  string    `gorm:"type:text;not null" json:"-"`
	RefreshTokenCiphertext string    `gorm:"type:text" json:"-"`
	TokenType              string    `gorm:"type:varchar(32)" json:"token_type"`
	Expiry                 time.Time `json:"expiry"`
	Scopes                 string    `gorm:"type:text" json:"scopes"`
	CreatedAt              time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt              time.Time `gorm:"not null" json:"updated_at"`
}

func (gc *GoogleCredential) TableName() string {
	return "google_credentials"
}

func (gc *GoogleCredential) BeforeCreate(tx *gorm.DB) error {
	if gc.ID == uuid.Nil {
		gc.ID = uuid.New()
	}

	now := time.Now()
	if gc.CreatedAt.IsZero() {
		gc.CreatedAt = now
	}
	if gc.UpdatedAt.IsZero() {
		gc.UpdatedAt = now
	}
	return nil
}

// HasRefreshToken reports whether a scan can outlive the access token.
func (gc *GoogleCredential) HasRefreshToken() bool {
	return gc.RefreshTokenCiphertext != ""
}
