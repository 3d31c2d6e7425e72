// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "suja/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator validates request DTOs by their validate tags.
type EchoValidator struct {
	validate *validator.Validate
}

// New constructs the validator used by the Echo server.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures map to the validation
// AppError so the error middleware renders a 400.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
