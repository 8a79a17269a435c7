package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"subscription-tracker/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) serve(header string) (seen, requestCtx string, rec *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(TraceIDHeader, header)
	}
	rec = httptest.NewRecorder()

	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		requestCtx, _ = c.Request().Context().Value(models.RequestIDContextKey).(string)
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(s.echo.NewContext(req, rec)))
	return seen, requestCtx, rec
}

func (s *RequestIDTestSuite) TestGeneratesUUID() {
	seen, requestCtx, rec := s.serve("")

	s.Regexp(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, seen)
	s.Equal(seen, rec.Header().Get(TraceIDHeader))
	s.Equal(seen, requestCtx)
}

func (s *RequestIDTestSuite) TestReusesIncomingTraceID() {
	seen, requestCtx, rec := s.serve("existing-trace-id-12345")

	s.Equal("existing-trace-id-12345", seen)
	s.Equal("existing-trace-id-12345", requestCtx)
	s.Equal("existing-trace-id-12345", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReplacesMalformedTraceID() {
	for _, header := range []string{
		"line\nbreak",
		"has space",
		"quote\"d",
		strings.Repeat("a", 65),
	} {
		seen, _, rec := s.serve(header)
		s.NotEqual(header, seen)
		s.Len(seen, 36, header)
		s.Equal(seen, rec.Header().Get(TraceIDHeader))
	}

	seen, _, _ := s.serve(strings.Repeat("a", 64))
	s.Equal(strings.Repeat("a", 64), seen)
}

func (s *RequestIDTestSuite) TestGetTraceIDEmptyWhenNotSet() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
