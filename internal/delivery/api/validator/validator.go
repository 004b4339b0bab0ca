// Package validator adapts the contact validation rules to echo.Validator.
package validator

import (
	"contacts/internal/validation"

	"github.com/labstack/echo/v4"
)

// EchoValidator lets handlers call c.Validate on bound requests.
type EchoValidator struct {
	validator *validation.Validator
}

var _ echo.Validator = (*EchoValidator)(nil)

// New wraps v, or a fresh validation.Validator when v is nil.
func New(v *validation.Validator) *EchoValidator {
	if v == nil {
		v = validation.New()
	}

	return &EchoValidator{validator: v}
}

// Validate returns a *errors.ValidationError listing every failed field.
func (ev *EchoValidator) Validate(i any) error {
	return ev.validator.Struct(i)
}
