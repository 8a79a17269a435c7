package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"subscription-tracker/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, route, and status",
	},
	[]string{"code", "route", "status"},
)

// CustomHTTPErrorHandler renders errors that handlers returned instead of
// sending themselves: echo HTTP errors (routing, binding) and validator
// failures. Anything else is a 500 with the cause kept out of the body.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var (
		errorResponse  *errors.ErrorResponse
		httpStatus     int
		echoErr        *echo.HTTPError
		validationErrs validator.ValidationErrors
	)

	switch {
	case stderrors.As(err, &validationErrs):
		errorResponse = validationResponse(validationErrs, traceID)
		httpStatus = http.StatusBadRequest
	case stderrors.As(err, &echoErr):
		errorResponse = errors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		)
		httpStatus = echoErr.Code
	default:
		errorResponse, _ = errors.WrapSystemError(err, traceID)
		httpStatus = errorResponse.GetHTTPStatus()
	}

	logLevel := slog.LevelWarn
	if httpStatus >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(errorResponse.Error.Code, c.Path(), strconv.Itoa(httpStatus)).Inc()

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response", "trace_id", traceID, "error", sendErr.Error())
	}
}

// validationResponse lists every failed field. A failed price rule takes
// the price code so clients can highlight the price input.
func validationResponse(validationErrs validator.ValidationErrors, traceID string) *errors.ErrorResponse {
	fieldErrors := make(map[string]string, len(validationErrs))
	priceFailed := false
	for _, fieldErr := range validationErrs {
		fieldErrors[fieldErr.Field()] = formatValidationError(fieldErr)
		if fieldErr.Tag() == "subscription_price" {
			priceFailed = true
		}
	}

	response := errors.NewValidationError(fieldErrors, traceID)
	if priceFailed {
		response.Error.Code = string(errors.ValidationInvalidPrice)
		response.Error.Message = errors.GetErrorMessage(errors.ValidationInvalidPrice)
	}
	return response
}

func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusForbidden:
		return errors.AuthInvalidTokenFormat
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return errors.SystemNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min", "max":
		bound := "at least"
		if fe.Tag() == "max" {
			bound = "at most"
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be %s %s characters long", bound, fe.Param())
		}
		return fmt.Sprintf("must be %s %s", bound, fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "subscription_price":
		return "must be a number greater than 0 and at most 100000"
	case "iso_date":
		return "must be a date in YYYY-MM-DD format"
	case "cadence":
		return "must be month or year"
	case "sort_order":
		return "must be name or price"
	case "client_id":
		return "must be 8 to 128 letters, digits, '-' or '_'"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
