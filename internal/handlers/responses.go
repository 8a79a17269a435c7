package handlers

import (
	stderrors "errors"
	"net/http"

	"subscription-tracker/internal/dto"
	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/models"
	"subscription-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Handlers report failures through three helpers:
//
// 1. SendError - client and business errors (4xx) with a known code
//    SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//
// 2. SendServiceError - errors returned by the services layer. Known
//    sentinels are matched with errors.Is and mapped to their code; anything
//    else falls through to SendSystemError.
//
// 3. SendSystemError - internal errors (500). The cause is never echoed to
//    the client; the trace id ties the response to the server log.
//
// Do not return echo.NewHTTPError or write error bodies with c.JSON directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

type errorMapping struct {
	target  error
	code    errors.ErrorCode
	details bool
}

// serviceErrorCodes is checked in order; the first match wins. Entries with
// details set echo the error text back, which is only safe for validation
// failures that carry user input.
var serviceErrorCodes = []errorMapping{
	{target: models.ErrSubscriptionNotFound, code: errors.SubscriptionNotFound},
	{target: models.ErrInvalidTransition, code: errors.SubscriptionInvalidTransition},
	{target: models.ErrNotPending, code: errors.SubscriptionNotPending},
	{target: models.ErrAlreadyActive, code: errors.SubscriptionAlreadyActive},
	{target: models.ErrStaleWrite, code: errors.StateStaleWrite},
	{target: models.ErrPriceRequired, code: errors.ValidationInvalidPrice},
	{target: models.ErrPriceNotNumeric, code: errors.ValidationInvalidPrice},
	{target: models.ErrPriceNotPositive, code: errors.ValidationInvalidPrice},
	{target: models.ErrPriceTooHigh, code: errors.ValidationInvalidPrice},
	{target: dto.ErrUnknownCommandType, code: errors.ValidationUnknownType, details: true},
	{target: dto.ErrMalformedCommand, code: errors.ValidationGeneral, details: true},
	{target: services.ErrUnsupportedStateCommand, code: errors.ValidationUnknownType},
	{target: services.ErrCommandIdentityMissing, code: errors.ValidationRequiredField, details: true},
	{target: services.ErrDebounced, code: errors.SubscriptionDebounced},
	{target: services.ErrNoCancelURL, code: errors.SubscriptionNoCancelURL},
	{target: services.ErrDirectoryOptionNotFound, code: errors.DirectoryOptionNotFound},
	{target: services.ErrDirectoryUnavailable, code: errors.DirectoryUnavailable},
	{target: services.ErrScanRequiresSignIn, code: errors.AuthMissingToken},
	{target: services.ErrMailUnauthorized, code: errors.ScanReconsentRequired},
	{target: services.ErrScanFailed, code: errors.ScanFailed},
	{target: services.ErrGenerationNotConfigured, code: errors.GenerationNotConfigured},
	{target: services.ErrGenerationUnavailable, code: errors.GenerationUnavailable},
	{target: services.ErrGenerationNoJSON, code: errors.GenerationNoJSON},
	{target: services.ErrGenerationFailed, code: errors.GenerationFailed},
	{target: services.ErrGoogleNotConfigured, code: errors.AuthGoogleDisabled},
	{target: services.ErrOAuthExchange, code: errors.AuthOAuthExchange},
	{target: services.ErrProfileUnavailable, code: errors.AuthOAuthExchange},
	{target: services.ErrInvalidConciergeEmail, code: errors.ValidationInvalidEmail},
	{target: services.ErrAuditDateRange, code: errors.ValidationInvalidDate},
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapSystemError(err, traceID)
	c.Logger().Errorf("trace_id=%s error=%v", traceID, cause)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError maps a services-layer error to its API error code
func SendServiceError(c echo.Context, err error) error {
	for _, m := range serviceErrorCodes {
		if !stderrors.Is(err, m.target) {
			continue
		}
		if m.details {
			return SendError(c, m.code, errors.WithDetails(err.Error()))
		}
		return SendError(c, m.code)
	}
	return SendSystemError(c, err)
}

// SendBindError reports a request body that could not be decoded. Price
// errors raised while decoding keep their own code.
func SendBindError(c echo.Context, err error) error {
	for _, target := range []error{models.ErrPriceNotNumeric, models.ErrPriceRequired, models.ErrPriceNotPositive, models.ErrPriceTooHigh} {
		if stderrors.Is(err, target) {
			return SendError(c, errors.ValidationInvalidPrice)
		}
	}
	for _, target := range []error{dto.ErrUnknownCommandType, dto.ErrMalformedCommand} {
		if stderrors.Is(err, target) {
			return SendServiceError(c, err)
		}
	}
	return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
}
