// Package validation turns a raw request body into a typed,
// constraint-checked value or an InvalidInput error carrying a
// field->messages map. It has no side effects.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/psilva-leo/ai-todo/internal/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name, matching what the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// required accepts whitespace-only strings; notblank does not.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// JSON runs the two-stage pipeline against dst, which must be a pointer
// to a struct with json and validate tags.
//
// Stage one parses the body; any failure (truncated data, wrong types,
// unknown enum variants) is reported under the synthetic "payload"
// field with positional diagnostics stripped. Stage two checks field
// constraints and accumulates every violation before returning, so a
// request with several bad fields reports all of them at once.
func JSON(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		fields := apperr.FieldErrors{}
		fields.Add("payload", structuralMessage(err))
		return apperr.InvalidInput(fields)
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			fields := apperr.FieldErrors{}
			fields.Add("payload", "invalid request")
			return apperr.InvalidInput(fields)
		}

		fields := apperr.FieldErrors{}
		for _, fe := range verrs {
			fields.Add(fe.Field(), constraintMessage(fe))
		}
		return apperr.InvalidInput(fields)
	}

	return nil
}

// structuralMessage produces a human-readable cause without byte
// offsets or other positional detail.
func structuralMessage(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return "request body is empty or truncated"
	case errors.As(err, &syntaxErr):
		return "invalid JSON syntax"
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			return fmt.Sprintf("invalid type for field %s", typeErr.Field)
		}
		return "request body must be a JSON object"
	}

	// Errors raised by custom UnmarshalJSON (e.g. unknown enum
	// variants) already carry a clean message.
	return strings.TrimPrefix(err.Error(), "json: ")
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s cannot be empty", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
