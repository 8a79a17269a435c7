package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"

	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// handlerSuite carries the echo instance and request helpers shared by the
// handler suites.
type handlerSuite struct {
	suite.Suite
	e *echo.Echo
}

func (s *handlerSuite) setupEcho() {
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *handlerSuite) newContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-test")
	return c, rec
}

func (s *handlerSuite) withOwner(c echo.Context, owner models.Owner) echo.Context {
	c.Set(OwnerContextKey, owner)
	if owner.UserID != nil {
		c.Set(UserIDContextKey, *owner.UserID)
	}
	return c
}

func (s *handlerSuite) withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

func (s *handlerSuite) decodeData(rec *httptest.ResponseRecorder, out interface{}) {
	var envelope struct {
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Require().NoError(json.Unmarshal(envelope.Data, out))
}

func (s *handlerSuite) assertError(rec *httptest.ResponseRecorder, code errors.ErrorCode) {
	s.Equal(errors.GetHTTPStatus(code), rec.Code)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(code), response.Error.Code)
	s.Equal("trace-test", response.Error.TraceID)
}

func (s *handlerSuite) assertStatus(rec *httptest.ResponseRecorder, status int) {
	s.Equal(status, rec.Code, rec.Body.String())
}
