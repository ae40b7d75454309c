package app

import (
	"errors"
	"fmt"
)

type MutationErrorCode string

const (
	// ErrNoAlternatives: no venue can replace the option after exclusions.
	ErrNoAlternatives MutationErrorCode = "NO_ALTERNATIVES"
	// ErrNoVenues: the target category has no usable venue for a switch.
	ErrNoVenues MutationErrorCode = "NO_VENUES"
	// ErrInvalidSelection: the requested option ids do not fit the group.
	ErrInvalidSelection MutationErrorCode = "INVALID_SELECTION"
	// ErrInvalidState: the program or slot cannot take this edit right now.
	ErrInvalidState MutationErrorCode = "INVALID_STATE"
)

// MutationError is an expected, user-actionable outcome of an edit.
type MutationError struct {
	Code    MutationErrorCode
	Message string
}

func (e *MutationError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func newMutationError(code MutationErrorCode, format string, args ...any) *MutationError {
	return &MutationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func NoAlternatives(format string, args ...any) *MutationError {
	return newMutationError(ErrNoAlternatives, format, args...)
}

func NoVenues(format string, args ...any) *MutationError {
	return newMutationError(ErrNoVenues, format, args...)
}

func InvalidSelection(format string, args ...any) *MutationError {
	return newMutationError(ErrInvalidSelection, format, args...)
}

func InvalidState(format string, args ...any) *MutationError {
	return newMutationError(ErrInvalidState, format, args...)
}

// IsMutationCode reports whether err carries a MutationError with code.
func IsMutationCode(err error, code MutationErrorCode) bool {
	var me *MutationError
	return errors.As(err, &me) && me.Code == code
}

// RequestError rejects a malformed field before any allocation work.
type RequestError struct {
	Field   string
	Message string
}

func (e *RequestError) Error() string {
	return e.Field + ": " + e.Message
}
