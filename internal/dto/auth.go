package dto

import (
	"time"

	"github.com/google/uuid"
)

// Auth Response DTOs

// SessionResponse is returned once Google sign-in completes
type SessionResponse struct {
	AccessToken string              `json:"accessToken"`
	TokenType   string              `json:"tokenType"`
	ExpiresIn   int64               `json:"expiresIn"`
	User        UserProfileResponse `json:"user"`
}

// UserProfileResponse represents the authenticated user's profile
type UserProfileResponse struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	DisplayName     string     `json:"displayName,omitempty"`
	GoogleConnected bool       `json:"googleConnected"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
