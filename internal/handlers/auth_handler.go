package handlers

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	stderrors "errors"
	"net/http"
	"strings"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/dto"
	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/repositories"
	"subscription-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const oauthStateMaxAge = 600

// AuthHandler handles the Google sign-in flow and the session user
type AuthHandler struct {
	googleAuth   services.GoogleAuthServiceInterface
	cookieName   string
	secureCookie bool
	enabled      bool
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(googleAuth services.GoogleAuthServiceInterface, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		googleAuth:   googleAuth,
		cookieName:   cfg.Security.OAuthStateCookieName,
		secureCookie: cfg.IsProduction(),
		enabled:      cfg.GoogleEnabled(),
	}
}

// GoogleLogin starts the OAuth flow
// @Summary Start Google sign-in
// @Description Redirect to the Google consent screen. A short-lived state cookie guards the callback.
// @Tags Authentication
// @Success 302 "Redirect to Google"
// @Failure 503 {object} errors.ErrorResponse "AUTH_007 - Google sign-in is not configured"
// @Router /auth/google/login [get]
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	if !h.enabled {
		return SendError(c, errors.AuthGoogleDisabled)
	}

	state, err := newOAuthState()
	if err != nil {
		return SendSystemError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   oauthStateMaxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, h.googleAuth.AuthCodeURL(state))
}

// GoogleCallback completes the OAuth flow
// @Summary Complete Google sign-in
// @Description Exchange the authorization code, store the encrypted Gmail grant and issue a session token
// @Tags Authentication
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "OAuth state"
// @Success 200 {object} SuccessResponse{data=dto.SessionResponse} "Signed in"
// @Failure 400 {object} errors.ErrorResponse "AUTH_005 - State mismatch, VALIDATION_002 - Missing code"
// @Failure 502 {object} errors.ErrorResponse "AUTH_006 - Google sign-in could not be completed"
// @Failure 503 {object} errors.ErrorResponse "AUTH_007 - Google sign-in is not configured"
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	if !h.enabled {
		return SendError(c, errors.AuthGoogleDisabled)
	}

	cookie, cookieErr := c.Cookie(h.cookieName)
	h.clearStateCookie(c)

	if denied := c.QueryParam("error"); denied != "" {
		return SendError(c, errors.AuthOAuthExchange, errors.WithDetails(denied))
	}

	state := c.QueryParam("state")
	if cookieErr != nil || state == "" || subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(state)) != 1 {
		return SendError(c, errors.AuthOAuthStateMismatch)
	}

	code := strings.TrimSpace(c.QueryParam("code"))
	if code == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("code is required"))
	}

	result, err := h.googleAuth.CompleteSignIn(c.Request().Context(), code)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.SessionResponse{
			AccessToken: result.SessionToken,
			TokenType:   "Bearer",
			ExpiresIn:   result.ExpiresIn,
			User: dto.UserProfileResponse{
				ID:              result.User.ID,
				Email:           result.User.Email,
				DisplayName:     result.User.DisplayName,
				GoogleConnected: true,
				LastLoginAt:     result.User.LastLoginAt,
				CreatedAt:       result.User.CreatedAt,
			},
		},
		Message: "Signed in successfully",
	})
}

// Me returns the signed-in user
// @Summary Get current user
// @Description Return the signed-in user and whether a Gmail grant is stored
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=dto.UserProfileResponse} "Current user"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing token"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal error"
// @Router /api/v1/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, connected, err := h.googleAuth.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrUserNotFound) {
			return SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("User no longer exists"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.UserProfileResponse{
			ID:              user.ID,
			Email:           user.Email,
			DisplayName:     user.DisplayName,
			GoogleConnected: connected,
			LastLoginAt:     user.LastLoginAt,
			CreatedAt:       user.CreatedAt,
		},
	})
}

// DisconnectGoogle forgets the stored Gmail grant
// @Summary Disconnect Gmail
// @Description Delete the stored Google credential. Scans need a new sign-in afterwards.
// @Tags Authentication
// @Security BearerAuth
// @Success 204 "Disconnected"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing token"
// @Router /api/v1/me/google [delete]
func (h *AuthHandler) DisconnectGoogle(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.googleAuth.Disconnect(c.Request().Context(), userID); err != nil {
		if stderrors.Is(err, repositories.ErrCredentialNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) clearStateCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/auth/google",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func newOAuthState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
