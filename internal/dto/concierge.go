package dto

import (
	"time"

	"github.com/google/uuid"
)

// ConciergeSignupRequest asks for hands-on cancellation help
type ConciergeSignupRequest struct {
	Email  string `json:"email" validate:"required,email,max=255"`
	Source string `json:"source" validate:"omitempty,max=50"`
}

// ConciergeSignupResponse confirms a stored concierge request
type ConciergeSignupResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}
