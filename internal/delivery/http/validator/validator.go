// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "prelovin/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator validates request payloads via struct tags.
type Validator struct {
	validate *playground.Validate
}

// New creates the echo validator.
func New() *Validator {
	return &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
