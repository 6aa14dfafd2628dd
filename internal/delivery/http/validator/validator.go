// Package validator plugs go-playground/validator into echo's Bind/Validate flow.
package validator

import (
	"reflect"
	"strings"
	"unicode"

	domainerrors "messenger/internal/domain/errors"
	"messenger/internal/errors"

	"github.com/go-playground/validator/v10"
)

// TagLetterDigit requires at least one letter and one digit.
const TagLetterDigit = "letterdigit"

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

func New() (*CustomValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	if err := v.RegisterValidation(TagLetterDigit, hasLetterAndDigit); err != nil {
		return nil, errors.Wrap(err, "register letterdigit validation")
	}

	return &CustomValidator{validate: v}, nil
}

// Validate returns ErrValidationFailed describing each failed field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "validate request")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case TagLetterDigit:
		return fe.Field() + " must contain a letter and a digit"
	default:
		return fe.Field() + " failed " + fe.Tag()
	}
}

func hasLetterAndDigit(fl validator.FieldLevel) bool {
	var letter, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return letter && digit
}
