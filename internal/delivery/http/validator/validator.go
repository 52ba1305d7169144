// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound input.
package validator

import (
	validation "github.com/go-playground/validator/v10"

	domainerrors "ishop/internal/domain/errors"
)

// Validator wraps a single validator instance; it is safe for concurrent
// use and caches struct metadata.
type Validator struct {
	validate *validation.Validate
}

// New builds the echo validator used by the HTTP server.
func New() *Validator {
	return &Validator{validate: validation.New()}
}

// Validate checks the struct tags on the bound input and translates
// failures into the application's validation error.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
