package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/database"
	"subscription-tracker/internal/dto"
	"subscription-tracker/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

const testClientID = "browser-test-0001"

func TestServer(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

type ServerSuite struct {
	suite.Suite
	server *Server
	db     *database.DB
}

func (s *ServerSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	dir := s.T().TempDir()
	csvPath := filepath.Join(dir, "cancel_directory.csv")
	s.Require().NoError(os.WriteFile(csvPath, []byte(
		"service,cancel_url_hint,flow,region\nHulu,https://secure.hulu.com/account/cancel,web,US\n"), 0o600))

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "testing", CORSAllowOrigins: []string{"*"}},
		JWT: config.JWTConfig{
			PrivateKey:           privateKey,
			PublicKey:            publicKey,
			Issuer:               "test-issuer",
			SessionTokenDuration: time.Hour,
		},
		Security: config.SecurityConfig{
			RateLimitPerSecond:   1000,
			RateLimitBurst:       1000,
			CancelOpenDebounce:   time.Millisecond,
			GuideDebounce:        time.Millisecond,
			AnonymousStateTTL:    time.Hour,
			OAuthStateCookieName: "nomo_oauth_state",
			AuditRetention:       24 * time.Hour,
		},
		Directory: config.DirectoryConfig{
			CSVPath:          csvPath,
			DefaultsEnabled:  true,
			SearchLimit:      6,
			MatchMaxDistance: 3,
		},
	}

	s.db = database.SetupTestDB(s.T())
	registry := prometheus.NewRegistry()
	s.server = New(cfg, s.db, Options{
		Registerer:  registry,
		Gatherer:    registry,
		OpenAPIPath: filepath.Join(dir, "swagger.json"),
	})
}

func (s *ServerSuite) TearDownTest() {
	s.server.local.Close()
	_ = s.db.Close()
}

func (s *ServerSuite) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) anonymous() map[string]string {
	return map[string]string{"X-Client-ID": testClientID}
}

func (s *ServerSuite) view(rec *httptest.ResponseRecorder) models.SubscriptionView {
	var envelope struct {
		Data models.SubscriptionView `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func (s *ServerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *ServerSuite) TestHealthAndMetrics() {
	rec := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))

	rec = s.do(http.MethodGet, "/metrics", "", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/v1/nope", "", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SYSTEM_007", s.errorCode(rec))
}

func (s *ServerSuite) TestOwnerIsRequired() {
	rec := s.do(http.MethodGet, "/api/v1/subscriptions", "", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_004", s.errorCode(rec))
}

func (s *ServerSuite) TestScanRequiresSignIn() {
	rec := s.do(http.MethodPost, "/api/v1/scan", "", s.anonymous())
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", s.errorCode(rec))
}

func (s *ServerSuite) TestAnonymousCancelAndRestore() {
	rec := s.do(http.MethodGet, "/api/v1/subscriptions", "", s.anonymous())
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(3, s.view(rec).ActiveCount)

	rec = s.do(http.MethodPost, "/api/v1/subscriptions/netflix/cancel", "", s.anonymous())
	s.Require().Equal(http.StatusOK, rec.Code)
	view := s.view(rec)
	s.Equal(2, view.ActiveCount)
	s.Require().Len(view.Canceled, 1)
	s.Equal("netflix", view.Canceled[0].ID)

	rec = s.do(http.MethodPost, "/api/v1/subscriptions/netflix/cancel", "", s.anonymous())
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/subscriptions/netflix/restore", "", s.anonymous())
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(3, s.view(rec).ActiveCount)

	rec = s.do(http.MethodGet, "/api/v1/activity", "", s.anonymous())
	s.Require().Equal(http.StatusOK, rec.Code)
	var activity struct {
		Data dto.ActivityListResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &activity))
	s.Equal(int64(2), activity.Data.Total)
}

func (s *ServerSuite) TestOwnersAreIsolated() {
	rec := s.do(http.MethodPost, "/api/v1/subscriptions/spotify/remove", "", s.anonymous())
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/subscriptions", "", map[string]string{"X-Client-ID": "browser-test-0002"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(s.view(rec).Removed)
}

func (s *ServerSuite) TestDirectoryRevalidation() {
	rec := s.do(http.MethodGet, "/api/v1/directory", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	s.NotEmpty(etag)
	s.Equal("no-cache", rec.Header().Get("Cache-Control"))

	rec = s.do(http.MethodGet, "/api/v1/directory", "", map[string]string{"If-None-Match": etag})
	s.Equal(http.StatusNotModified, rec.Code)
}

func (s *ServerSuite) TestConciergeRequest() {
	rec := s.do(http.MethodPost, "/api/v1/concierge-requests", `{"email":"ada@example.com"}`, nil)
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/concierge-requests", `{"email":"ADA@example.com"}`, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/concierge-requests", `{"email":"nope"}`, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.errorCode(rec))
}

func (s *ServerSuite) TestGenerationNotConfigured() {
	rec := s.do(http.MethodPost, "/api/v1/generate", `{"prompt":"hello"}`, s.anonymous())
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("GENERATION_002", s.errorCode(rec))
}
