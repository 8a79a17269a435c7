package handlers

import (
	"subscription-tracker/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts the shared validator to echo
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new custom validator with the subscription rules registered
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator().GetValidate()}
}

// Validate returns validator.ValidationErrors for a failing struct; the
// error handler turns them into VALIDATION_001 field details
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
