package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write would violate a uniqueness rule:
// a duplicate name or an association that already exists.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. blank name, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// DetailError pairs one of the sentinels above with the message shown to API
// clients. errors.Is(err, ErrNotFound) still matches through it.
type DetailError struct {
	Kind   error
	Detail string
}

func (e *DetailError) Error() string { return e.Kind.Error() + ": " + e.Detail }

func (e *DetailError) Unwrap() error { return e.Kind }

// NotFoundf returns an ErrNotFound carrying a formatted client message.
func NotFoundf(format string, args ...any) error {
	return &DetailError{Kind: ErrNotFound, Detail: fmt.Sprintf(format, args...)}
}

// Conflictf returns an ErrConflict carrying a formatted client message.
func Conflictf(format string, args ...any) error {
	return &DetailError{Kind: ErrConflict, Detail: fmt.Sprintf(format, args...)}
}

// Validationf returns an ErrValidation carrying a formatted client message.
func Validationf(format string, args ...any) error {
	return &DetailError{Kind: ErrValidation, Detail: fmt.Sprintf(format, args...)}
}

// Detail returns the client message attached to err, or fallback when err
// carries none.
func Detail(err error, fallback string) string {
	var de *DetailError
	if errors.As(err, &de) {
		return de.Detail
	}
	return fallback
}
