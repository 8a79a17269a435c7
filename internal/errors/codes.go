package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
	AuthMissingOwner       ErrorCode = "AUTH_004"
	AuthOAuthStateMismatch ErrorCode = "AUTH_005"
	AuthOAuthExchange      ErrorCode = "AUTH_006"
	AuthGoogleDisabled     ErrorCode = "AUTH_007"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidPrice  ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
	ValidationUnknownType   ErrorCode = "VALIDATION_007"
)

// Subscription error codes (SUBSCRIPTION_*)
const (
	SubscriptionNotFound          ErrorCode = "SUBSCRIPTION_001"
	SubscriptionInvalidTransition ErrorCode = "SUBSCRIPTION_002"
	SubscriptionNotPending        ErrorCode = "SUBSCRIPTION_003"
	SubscriptionAlreadyActive     ErrorCode = "SUBSCRIPTION_004"
	SubscriptionNoCancelURL       ErrorCode = "SUBSCRIPTION_005"
	SubscriptionDebounced         ErrorCode = "SUBSCRIPTION_006"
)

// Directory error codes (DIRECTORY_*)
const (
	DirectoryOptionNotFound ErrorCode = "DIRECTORY_001"
	DirectoryUnavailable    ErrorCode = "DIRECTORY_002"
)

// Inbox scan error codes (SCAN_*)
const (
	ScanReconsentRequired ErrorCode = "SCAN_001"
	ScanFailed            ErrorCode = "SCAN_002"
)

// Text generation error codes (GENERATION_*)
const (
	GenerationFailed        ErrorCode = "GENERATION_001"
	GenerationNotConfigured ErrorCode = "GENERATION_002"
	GenerationNoJSON        ErrorCode = "GENERATION_003"
	GenerationUnavailable   ErrorCode = "GENERATION_004"
)

// State store error codes (STATE_*)
const (
	StateStaleWrite ErrorCode = "STATE_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthMissingOwner:       "Sign in or send an X-Client-ID header",
	AuthOAuthStateMismatch: "Sign-in request expired or was tampered with. Please try again",
	AuthOAuthExchange:      "Google sign-in could not be completed",
	AuthGoogleDisabled:     "Google sign-in is not configured",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidPrice:  "Enter a price greater than 0 and at most 100000",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format, expected YYYY-MM-DD",
	ValidationUnknownType:   "Unknown or malformed command type",

	// Subscription errors
	SubscriptionNotFound:          "Subscription not found",
	SubscriptionInvalidTransition: "Subscription cannot move to that state",
	SubscriptionNotPending:        "Subscription has no pending price entry",
	SubscriptionAlreadyActive:     "Subscription is already active",
	SubscriptionNoCancelURL:       "No cancellation link is known for this subscription",
	SubscriptionDebounced:         "Request repeated too quickly. Please wait a moment",

	// Directory errors
	DirectoryOptionNotFound: "Directory entry not found",
	DirectoryUnavailable:    "Service directory is unavailable",

	// Scan errors
	ScanReconsentRequired: "Gmail access was revoked or expired. Please reconnect your Google account",
	ScanFailed:            "Scan failed",

	// Generation errors
	GenerationFailed:        "Text generation request failed",
	GenerationNotConfigured: "Missing GEMINI_API_KEY",
	GenerationNoJSON:        "Generated text did not contain JSON",
	GenerationUnavailable:   "Text generation is temporarily unavailable",

	// State errors
	StateStaleWrite: "State was changed elsewhere. Reload and try again",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
