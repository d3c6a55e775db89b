// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	"strings"

	domainerrors "pressroom/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator installed on the echo server.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate runs struct tag validation and reports failures as a validation
// error carrying one detail line per offending field.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, fieldErr.Field()+" failed on '"+fieldErr.Tag()+"'")
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}
