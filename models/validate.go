// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Age bounds. The questionnaire input accepts up to MaxAgeInput but the
// server only stores respondents up to MaxAge.
const (
	MinAge      = 13
	MaxAge      = 99
	MaxAgeInput = 120
)

// ValidationError reports the first field of a submission that was rejected.
// Reason is the failing rule: "required", "enum" or "age".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "Invalid " + e.Field
}

// Enum is implemented by every closed-choice answer type.
type Enum interface {
	Valid() bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("enum", validateEnum)
	v.RegisterValidation("age", validateAge)

	return v
}

// validateEnum delegates to the field type's own exhaustive switch
func validateEnum(fl validator.FieldLevel) bool {
	e, ok := fl.Field().Interface().(Enum)
	if !ok {
		return false
	}
	return e.Valid()
}

// validateAge enforces [MinAge, MaxAge]
func validateAge(fl validator.FieldLevel) bool {
	age := fl.Field().Int()
	return age >= MinAge && age <= MaxAge
}

// ValidateSubmission checks age bounds and every required closed-choice answer.
// Returns a *ValidationError naming the first offending field.
func ValidateSubmission(req SubmitRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ValidationError{
			Field:  fieldErrs[0].Field(),
			Reason: fieldErrs[0].Tag(),
		}
	}
	return err
}
