// Package apperr defines the error taxonomy shared by the service and
// the HTTP boundary: InvalidInput, NotFound and Internal.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInvalidInput Kind = iota
	KindNotFound
	KindInternal
)

// FieldErrors maps a field name to the ordered messages recorded
// against it.
type FieldErrors map[string][]string

// Add appends a message under field, preserving insertion order within
// the field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

type Error struct {
	Kind    Kind
	Message string
	Fields  FieldErrors
}

func (e *Error) Error() string {
	return e.Message
}

// InvalidInput wraps a field->messages map. Both structural and
// semantic validation failures use this kind so callers cannot tell
// them apart by error type.
func InvalidInput(fields FieldErrors) *Error {
	return &Error{Kind: KindInvalidInput, Message: "Validation failed", Fields: fields}
}

func NotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "Resource not found"}
}

// Internal carries a diagnostic for operator logs. The boundary never
// exposes the diagnostic to clients.
func Internal(msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg}
}

func Internalf(format string, args ...any) *Error {
	return Internal(fmt.Sprintf(format, args...))
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

func IsInvalidInput(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindInvalidInput
}
