package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ConciergeSourceWebApp = "web-app"
)

// ConciergeRequest is an email address asking for hands-on cancellation help.
type ConciergeRequest struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Email     string     `gorm:"type:varchar(255);not null;index" json:"email"`
	Source    string     `gorm:"type:varchar(50);not null" json:"source"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt time.Time  `gorm:"not null;index" json:"created_at"`
}

func (cr *ConciergeRequest) TableName() string {
	return "concierge_requests"
}

func (cr *ConciergeRequest) BeforeCreate(tx *gorm.DB) error {
	if cr.ID == uuid.Nil {
		cr.ID = uuid.New()
	}
	if cr.CreatedAt.IsZero() {
		cr.CreatedAt = time.Now()
	}
	if cr.Source == "" {
		cr.Source = ConciergeSourceWebApp
	}
	if !IsValidEmail(cr.Email) {
		return errors.New("invalid email format")
	}
	return nil
}
