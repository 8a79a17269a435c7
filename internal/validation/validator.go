package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"subscription-tracker/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("subscription_price", validateSubscriptionPrice)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("cadence", validateCadence)
	_ = v.RegisterValidation("sort_order", validateSortOrder)
	_ = v.RegisterValidation("client_id", validateClientID)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateSubscriptionPrice accepts a decimal greater than 0 and at most 100000
func validateSubscriptionPrice(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.String:
		return models.ValidatePrice(fl.Field().String()) == nil
	case reflect.Float32, reflect.Float64:
		value := fl.Field().Float()
		return value > 0 && value <= 100000
	default:
		return false
	}
}

// validateISODate validates a YYYY-MM-DD calendar date
func validateISODate(fl validator.FieldLevel) bool {
	return models.IsValidNextCharge(fl.Field().String())
}

func validateCadence(fl validator.FieldLevel) bool {
	return models.IsValidCadence(fl.Field().String())
}

func validateSortOrder(fl validator.FieldLevel) bool {
	return models.IsValidSortOrder(fl.Field().String())
}

var clientIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,128}$`)

// validateClientID validates the anonymous browser identifier sent in X-Client-ID
func validateClientID(fl validator.FieldLevel) bool {
	return clientIDPattern.MatchString(fl.Field().String())
}

// IsValidClientID applies the client_id rule outside struct validation
func IsValidClientID(clientID string) bool {
	return clientIDPattern.MatchString(clientID)
}
