package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/handlers"
	"subscription-tracker/internal/models"
	"subscription-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokens services.TokenServiceInterface
	e      *echo.Echo
	user   *models.User
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokens = s.newTokenService(24 * time.Hour)
	s.e = echo.New()
	s.user = &models.User{ID: uuid.New(), Email: "test@example.com"}
}

func (s *AuthMiddlewareSuite) newTokenService(ttl time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "test-issuer",
		SessionTokenDuration: ttl,
	})
}

func (s *AuthMiddlewareSuite) bearer(tokens services.TokenServiceInterface) string {
	token, _, err := tokens.GenerateSessionToken(s.user)
	s.Require().NoError(err)
	return "Bearer " + token
}

// run sends a request through mw and returns the recorder and the owner the
// next handler saw, if it ran.
func (s *AuthMiddlewareSuite) run(mw echo.MiddlewareFunc, headers map[string]string) (*httptest.ResponseRecorder, *models.Owner) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	var seen *models.Owner
	err := mw(func(c echo.Context) error {
		if owner, ok := c.Get(handlers.OwnerContextKey).(models.Owner); ok {
			seen = &owner
		} else {
			seen = &models.Owner{}
		}
		return c.NoContent(http.StatusOK)
	})(c)
	s.Require().NoError(err)
	return rec, seen
}

func (s *AuthMiddlewareSuite) assertCode(rec *httptest.ResponseRecorder, code errors.ErrorCode) {
	s.Equal(errors.GetHTTPStatus(code), rec.Code)
	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(code), response.Error.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth() {
	s.Run("valid token", func() {
		rec, owner := s.run(RequireAuth(s.tokens), map[string]string{"Authorization": s.bearer(s.tokens)})
		s.Equal(http.StatusOK, rec.Code)
		s.Require().NotNil(owner)
		s.True(owner.Remote)
		s.Equal(models.RemoteOwnerKey(s.user.ID), owner.Key)
	})

	s.Run("missing header", func() {
		rec, owner := s.run(RequireAuth(s.tokens), nil)
		s.Nil(owner)
		s.assertCode(rec, errors.AuthMissingToken)
	})

	s.Run("not a bearer header", func() {
		rec, _ := s.run(RequireAuth(s.tokens), map[string]string{"Authorization": "Basic abc"})
		s.assertCode(rec, errors.AuthInvalidTokenFormat)
	})

	s.Run("malformed jwt", func() {
		rec, _ := s.run(RequireAuth(s.tokens), map[string]string{"Authorization": "Bearer not.a.jwt"})
		s.assertCode(rec, errors.AuthInvalidTokenFormat)
	})

	s.Run("expired token", func() {
		expired := s.newTokenService(-time.Minute)
		rec, _ := s.run(RequireAuth(expired), map[string]string{"Authorization": s.bearer(expired)})
		s.assertCode(rec, errors.AuthExpiredToken)
	})

	s.Run("signed with another key", func() {
		other := s.newTokenService(time.Hour)
		rec, _ := s.run(RequireAuth(s.tokens), map[string]string{"Authorization": s.bearer(other)})
		s.assertCode(rec, errors.AuthInvalidTokenFormat)
	})
}

func (s *AuthMiddlewareSuite) TestIdentifyOwner() {
	s.Run("anonymous client id", func() {
		rec, owner := s.run(IdentifyOwner(s.tokens), map[string]string{ClientIDHeader: "browser-12345678"})
		s.Equal(http.StatusOK, rec.Code)
		s.Require().NotNil(owner)
		s.False(owner.Remote)
		s.Equal(models.LocalOwnerKey("browser-12345678"), owner.Key)
	})

	s.Run("token wins and keeps the client id", func() {
		rec, owner := s.run(IdentifyOwner(s.tokens), map[string]string{
			"Authorization": s.bearer(s.tokens),
			ClientIDHeader:  "browser-12345678",
		})
		s.Equal(http.StatusOK, rec.Code)
		s.Require().NotNil(owner)
		s.True(owner.Remote)
		s.Equal(models.LocalOwnerKey("browser-12345678"), owner.LocalKey)
	})

	s.Run("bad token is not downgraded", func() {
		rec, owner := s.run(IdentifyOwner(s.tokens), map[string]string{
			"Authorization": "Bearer junk",
			ClientIDHeader:  "browser-12345678",
		})
		s.Nil(owner)
		s.assertCode(rec, errors.AuthInvalidTokenFormat)
	})

	s.Run("no identity", func() {
		rec, _ := s.run(IdentifyOwner(s.tokens), nil)
		s.assertCode(rec, errors.AuthMissingOwner)
	})

	s.Run("client id too short", func() {
		rec, _ := s.run(IdentifyOwner(s.tokens), map[string]string{ClientIDHeader: "abc"})
		s.assertCode(rec, errors.AuthMissingOwner)
	})
}

func (s *AuthMiddlewareSuite) TestOptionalAuth() {
	s.Run("attaches a valid user", func() {
		rec, owner := s.run(OptionalAuth(s.tokens), map[string]string{"Authorization": s.bearer(s.tokens)})
		s.Equal(http.StatusOK, rec.Code)
		s.True(owner.Remote)
	})

	s.Run("ignores a bad token", func() {
		rec, owner := s.run(OptionalAuth(s.tokens), map[string]string{"Authorization": "Bearer junk"})
		s.Equal(http.StatusOK, rec.Code)
		s.True(owner.IsZero())
	})
}
