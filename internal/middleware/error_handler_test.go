package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "subscription-tracker/internal/errors"
	"subscription-tracker/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) context() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	var response apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	c, rec := s.context()

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	response := s.decode(rec)
	s.Equal("SYSTEM_007", response.Error.Code)
	s.Equal("Resource not found", response.Error.Message)
	s.Equal("test-trace-id", response.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestGenericErrorHidesCause() {
	c, rec := s.context()

	CustomHTTPErrorHandler(errors.New("pq: connection refused"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.decode(rec).Error.Code)
	s.NotContains(rec.Body.String(), "connection refused")
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	CustomHTTPErrorHandler(errors.New("test error"), s.echo.NewContext(req, rec))

	s.Equal("unknown", s.decode(rec).Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponse() {
	c, rec := s.context()
	s.Require().NoError(c.JSON(http.StatusOK, map[string]string{"status": "ok"}))

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	type form struct {
		Email string `json:"email" validate:"required,email"`
		Price string `json:"price" validate:"required,subscription_price"`
	}
	validate := validation.GetValidator().GetValidate()

	s.Run("fields are listed", func() {
		c, rec := s.context()
		CustomHTTPErrorHandler(validate.Struct(form{Email: "nope", Price: "9.99"}), c)

		s.Equal(http.StatusBadRequest, rec.Code)
		response := s.decode(rec)
		s.Equal("VALIDATION_001", response.Error.Code)
		s.Equal([]string{"email: must be a valid email address"}, response.Error.Details)
	})

	s.Run("price failures use the price code", func() {
		c, rec := s.context()
		CustomHTTPErrorHandler(validate.Struct(form{Email: "a@example.com", Price: "-1"}), c)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_004", s.decode(rec).Error.Code)
	})
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	testCases := []struct {
		status int
		code   string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusUnauthorized, "AUTH_001"},
		{http.StatusForbidden, "AUTH_003"},
		{http.StatusNotFound, "SYSTEM_007"},
		{http.StatusMethodNotAllowed, "SYSTEM_007"},
		{http.StatusRequestEntityTooLarge, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_006"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{http.StatusTeapot, "SYSTEM_005"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			c, rec := s.context()
			CustomHTTPErrorHandler(echo.NewHTTPError(tc.status), c)

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, s.decode(rec).Error.Code)
		})
	}
}
