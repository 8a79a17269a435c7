package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CustomClaims is the body of a session token. Subject and UserID both carry
// the user id; tokens where they disagree are rejected.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}

// User returns the signed-in user's id
func (c *CustomClaims) User() (uuid.UUID, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user_id claim: %w", err)
	}
	if c.Subject != "" && c.Subject != c.UserID {
		return uuid.Nil, fmt.Errorf("subject %q does not match user_id", c.Subject)
	}
	return id, nil
}
