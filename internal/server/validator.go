package server

import (
	"errors"
	"strings"

	"connectvault/internal/apperr"

	"github.com/go-playground/validator/v10"
)

// requestValidator adapts go-playground/validator to Echo's Validator
// interface. Shape failures surface as ValidationError so they follow the
// same 400 path as service-side checks; services stay the authority and
// re-validate their own rules regardless.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *requestValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperr.Validation(strings.ToLower(fe.Field()), "failed "+fe.Tag()+" validation")
	}

	return apperr.Validation("", err.Error())
}
