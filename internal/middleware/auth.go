package middleware

import (
	stderrors "errors"
	"strings"

	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/handlers"
	"subscription-tracker/internal/models"
	"subscription-tracker/internal/services"
	"subscription-tracker/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ClientIDHeader carries the anonymous client id of signed-out browsers
const ClientIDHeader = "X-Client-ID"

// authenticate validates the bearer token on the request. ok is false when
// no Authorization header was sent at all.
func authenticate(c echo.Context, tokens services.TokenServiceInterface) (userID uuid.UUID, code errors.ErrorCode, ok bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return uuid.Nil, errors.AuthMissingToken, false
	}

	token, err := tokens.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return uuid.Nil, errors.AuthInvalidTokenFormat, true
	}

	claims, err := tokens.ValidateSessionToken(token)
	if err != nil {
		if stderrors.Is(err, services.ErrExpiredToken) {
			return uuid.Nil, errors.AuthExpiredToken, true
		}
		return uuid.Nil, errors.AuthInvalidTokenFormat, true
	}

	userID, err = claims.User()
	if err != nil {
		return uuid.Nil, errors.AuthInvalidTokenFormat, true
	}

	return userID, "", true
}

// clientID returns the X-Client-ID header when it is well formed
func clientID(c echo.Context) (string, bool) {
	id := strings.TrimSpace(c.Request().Header.Get(ClientIDHeader))
	if id == "" || !validation.IsValidClientID(id) {
		return "", false
	}
	return id, true
}

func setRemoteOwner(c echo.Context, userID uuid.UUID) {
	owner := models.NewRemoteOwner(userID)
	if id, ok := clientID(c); ok {
		owner.LocalKey = models.LocalOwnerKey(id)
	}
	c.Set(handlers.UserIDContextKey, userID)
	c.Set(handlers.OwnerContextKey, owner)
}

// RequireAuth rejects requests without a valid session token
func RequireAuth(tokens services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, code, _ := authenticate(c, tokens)
			if code != "" {
				return handlers.SendError(c, code)
			}

			setRemoteOwner(c, userID)
			return next(c)
		}
	}
}

// IdentifyOwner resolves whose state the request touches. A bearer token
// wins; otherwise the X-Client-ID header names an anonymous owner. A token
// that is present but invalid is rejected rather than downgraded.
func IdentifyOwner(tokens services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, code, sent := authenticate(c, tokens)
			if sent {
				if code != "" {
					return handlers.SendError(c, code)
				}
				setRemoteOwner(c, userID)
				return next(c)
			}

			id, ok := clientID(c)
			if !ok {
				return handlers.SendError(c, errors.AuthMissingOwner)
			}

			c.Set(handlers.OwnerContextKey, models.NewLocalOwner(id))
			return next(c)
		}
	}
}

// OptionalAuth attaches the signed-in user when a valid token is sent and
// otherwise lets the request through untouched.
func OptionalAuth(tokens services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID, code, sent := authenticate(c, tokens); sent && code == "" {
				setRemoteOwner(c, userID)
			}
			return next(c)
		}
	}
}
