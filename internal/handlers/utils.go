package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"subscription-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middleware
const (
	UserIDContextKey = "user_id"
	OwnerContextKey  = "owner"
)

var errNoIdentity = errors.New("no identity on request")

// getUserIDFromContext returns the user set by RequireAuth or OptionalAuth
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, errNoIdentity
	}
	return userID, nil
}

// optionalUserID returns the signed-in user on routes where sign-in is optional
func optionalUserID(c echo.Context) *uuid.UUID {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return nil
	}
	return &userID
}

// getOwnerFromContext returns the owner resolved by IdentifyOwner
func getOwnerFromContext(c echo.Context) (models.Owner, error) {
	owner, ok := c.Get(OwnerContextKey).(models.Owner)
	if !ok || owner.IsZero() {
		return models.Owner{}, errNoIdentity
	}
	return owner, nil
}

// getIntParam reads an integer query parameter, falling back to
// defaultValue when it is absent or malformed
func getIntParam(c echo.Context, name string, defaultValue int) int {
	value, err := strconv.Atoi(strings.TrimSpace(c.QueryParam(name)))
	if err != nil {
		return defaultValue
	}
	return value
}

// getDateParam parses an optional YYYY-MM-DD query parameter
func getDateParam(c echo.Context, name string) (*time.Time, error) {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, param)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
