package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/dto"
	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/models"
	"subscription-tracker/internal/repositories"
	"subscription-tracker/internal/services"
	"subscription-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	handlerSuite
	ctrl       *gomock.Controller
	googleAuth *service_mocks.MockGoogleAuthServiceInterface
	handler    *AuthHandler
	cfg        *config.Config
}

func (s *AuthHandlerSuite) SetupTest() {
	s.setupEcho()
	s.ctrl = gomock.NewController(s.T())
	s.googleAuth = service_mocks.NewMockGoogleAuthServiceInterface(s.ctrl)
	s.cfg = &config.Config{
		Server:   config.ServerConfig{Environment: "testing"},
		Security: config.SecurityConfig{OAuthStateCookieName: "nomo_oauth_state"},
		Google:   config.GoogleConfig{ClientID: "client", ClientSecret: "secret"},
	}
	s.handler = NewAuthHandler(s.googleAuth, s.cfg)
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) TestGoogleLogin() {
	s.Run("redirects with a state cookie", func() {
		var sentState string
		s.googleAuth.EXPECT().AuthCodeURL(gomock.Any()).DoAndReturn(func(state string) string {
			sentState = state
			return "https://accounts.example.com/auth?state=" + url.QueryEscape(state)
		})

		c, rec := s.newContext(http.MethodGet, "/auth/google/login", nil)
		s.Require().NoError(s.handler.GoogleLogin(c))

		s.Equal(http.StatusFound, rec.Code)
		s.Contains(rec.Header().Get("Location"), "https://accounts.example.com/auth")

		cookies := rec.Result().Cookies()
		s.Require().Len(cookies, 1)
		s.Equal("nomo_oauth_state", cookies[0].Name)
		s.Equal(sentState, cookies[0].Value)
		s.True(cookies[0].HttpOnly)
		s.GreaterOrEqual(len(sentState), 40)
	})

	s.Run("state differs per request", func() {
		states := map[string]bool{}
		s.googleAuth.EXPECT().AuthCodeURL(gomock.Any()).DoAndReturn(func(state string) string {
			states[state] = true
			return "https://accounts.example.com/auth"
		}).Times(2)

		for i := 0; i < 2; i++ {
			c, _ := s.newContext(http.MethodGet, "/auth/google/login", nil)
			s.Require().NoError(s.handler.GoogleLogin(c))
		}
		s.Len(states, 2)
	})

	s.Run("disabled without client credentials", func() {
		handler := NewAuthHandler(s.googleAuth, &config.Config{})

		c, rec := s.newContext(http.MethodGet, "/auth/google/login", nil)
		s.Require().NoError(handler.GoogleLogin(c))
		s.assertError(rec, errors.AuthGoogleDisabled)
	})
}

func (s *AuthHandlerSuite) callback(query, cookie string) (func() error, *httptest.ResponseRecorder) {
	c, rec := s.newContext(http.MethodGet, "/auth/google/callback?"+query, nil)
	if cookie != "" {
		c.Request().AddCookie(&http.Cookie{Name: "nomo_oauth_state", Value: cookie})
	}
	return func() error { return s.handler.GoogleCallback(c) }, rec
}

func (s *AuthHandlerSuite) TestGoogleCallback() {
	s.Run("issues a session", func() {
		now := time.Now()
		user := &models.User{ID: uuid.New(), Email: gofakeit.Email(), CreatedAt: now, LastLoginAt: &now}
		s.googleAuth.EXPECT().CompleteSignIn(gomock.Any(), "auth-code").Return(&models.SignInResult{
			User:         user,
			SessionToken: "session-jwt",
			ExpiresIn:    86400,
		}, nil)

		run, rec := s.callback("state=abc123&code=auth-code", "abc123")
		s.Require().NoError(run())

		s.assertStatus(rec, http.StatusOK)
		var session dto.SessionResponse
		s.decodeData(rec, &session)
		s.Equal("session-jwt", session.AccessToken)
		s.Equal("Bearer", session.TokenType)
		s.Equal(user.Email, session.User.Email)
		s.True(session.User.GoogleConnected)

		cleared := rec.Result().Cookies()
		s.Require().Len(cleared, 1)
		s.Equal(-1, cleared[0].MaxAge)
	})

	s.Run("state mismatch", func() {
		run, rec := s.callback("state=abc123&code=auth-code", "other")
		s.Require().NoError(run())
		s.assertError(rec, errors.AuthOAuthStateMismatch)
	})

	s.Run("missing state cookie", func() {
		run, rec := s.callback("state=abc123&code=auth-code", "")
		s.Require().NoError(run())
		s.assertError(rec, errors.AuthOAuthStateMismatch)
	})

	s.Run("consent denied", func() {
		run, rec := s.callback("error=access_denied&state=abc123", "abc123")
		s.Require().NoError(run())
		s.assertError(rec, errors.AuthOAuthExchange)
	})

	s.Run("missing code", func() {
		run, rec := s.callback("state=abc123", "abc123")
		s.Require().NoError(run())
		s.assertError(rec, errors.ValidationRequiredField)
	})

	s.Run("exchange failure", func() {
		s.googleAuth.EXPECT().CompleteSignIn(gomock.Any(), "bad").
			Return(nil, fmt.Errorf("%w: %w", services.ErrOAuthExchange, fmt.Errorf("invalid_grant")))

		run, rec := s.callback("state=abc123&code=bad", "abc123")
		s.Require().NoError(run())
		s.assertError(rec, errors.AuthOAuthExchange)
	})
}

func (s *AuthHandlerSuite) TestMe() {
	userID := uuid.New()

	s.Run("returns the profile", func() {
		user := &models.User{ID: userID, Email: "ada@example.com", CreatedAt: time.Now()}
		s.googleAuth.EXPECT().CurrentUser(gomock.Any(), userID).Return(user, false, nil)

		c, rec := s.newContext(http.MethodGet, "/api/v1/me", nil)
		c.Set(UserIDContextKey, userID)
		s.Require().NoError(s.handler.Me(c))

		s.assertStatus(rec, http.StatusOK)
		var profile dto.UserProfileResponse
		s.decodeData(rec, &profile)
		s.Equal("ada@example.com", profile.Email)
		s.False(profile.GoogleConnected)
	})

	s.Run("deleted user", func() {
		s.googleAuth.EXPECT().CurrentUser(gomock.Any(), userID).Return(nil, false, repositories.ErrUserNotFound)

		c, rec := s.newContext(http.MethodGet, "/api/v1/me", nil)
		c.Set(UserIDContextKey, userID)
		s.Require().NoError(s.handler.Me(c))
		s.assertError(rec, errors.AuthInvalidTokenFormat)
	})

	s.Run("not signed in", func() {
		c, rec := s.newContext(http.MethodGet, "/api/v1/me", nil)
		s.Require().NoError(s.handler.Me(c))
		s.assertError(rec, errors.AuthMissingToken)
	})
}

func (s *AuthHandlerSuite) TestDisconnectGoogle() {
	userID := uuid.New()

	s.Run("deletes the grant", func() {
		s.googleAuth.EXPECT().Disconnect(gomock.Any(), userID).Return(nil)

		c, rec := s.newContext(http.MethodDelete, "/api/v1/me/google", nil)
		c.Set(UserIDContextKey, userID)
		s.Require().NoError(s.handler.DisconnectGoogle(c))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("already disconnected", func() {
		s.googleAuth.EXPECT().Disconnect(gomock.Any(), userID).Return(repositories.ErrCredentialNotFound)

		c, rec := s.newContext(http.MethodDelete, "/api/v1/me/google", nil)
		c.Set(UserIDContextKey, userID)
		s.Require().NoError(s.handler.DisconnectGoogle(c))
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
