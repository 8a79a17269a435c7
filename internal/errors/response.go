package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse represents the standardized API error response structure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError reports one detail line per field, ordered by field name
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, len(fields))
	for i, field := range fields {
		details[i] = fmt.Sprintf("%s: %s", field, fieldErrors[field])
	}

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind SYSTEM_001. The cause is handed back for
// the server log and never reaches the body.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// statusByCode lists every code whose status is not 500
var statusByCode = func() map[ErrorCode]int {
	groups := map[int][]ErrorCode{
		http.StatusBadRequest: {
			ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
			ValidationInvalidPrice, ValidationInvalidEmail, ValidationInvalidDate,
			ValidationUnknownType, AuthOAuthStateMismatch,
		},
		http.StatusUnauthorized: {
			AuthMissingToken, AuthExpiredToken, AuthInvalidTokenFormat,
			AuthMissingOwner, ScanReconsentRequired,
		},
		http.StatusNotFound: {SubscriptionNotFound, DirectoryOptionNotFound, SystemNotFound},
		http.StatusConflict: {
			SubscriptionInvalidTransition, SubscriptionNotPending,
			SubscriptionAlreadyActive, StateStaleWrite,
		},
		http.StatusUnprocessableEntity: {SubscriptionNoCancelURL, GenerationNoJSON},
		http.StatusTooManyRequests:     {SystemRateLimitExceeded, SubscriptionDebounced},
		http.StatusBadGateway:          {AuthOAuthExchange, ScanFailed, GenerationFailed},
		http.StatusServiceUnavailable: {
			SystemServiceUnavailable, DirectoryUnavailable, GenerationNotConfigured,
			GenerationUnavailable, AuthGoogleDisabled,
		},
	}

	m := make(map[ErrorCode]int)
	for status, codes := range groups {
		for _, code := range codes {
			m[code] = status
		}
	}
	return m
}()

// GetHTTPStatus returns the response status for code. Unknown codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) IsClientError() bool {
	return er.GetHTTPStatus() < http.StatusInternalServerError
}

func (er *ErrorResponse) IsServerError() bool {
	return !er.IsClientError()
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
