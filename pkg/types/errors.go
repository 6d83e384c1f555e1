// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-readable class of a rejected or failed request.
type ErrorKind string

const (
	// ErrMalformed marks a body that could not be parsed or whose kind is
	// missing or unknown.
	ErrMalformed ErrorKind = "malformed_request"

	// ErrMissingField marks a required field left empty.
	ErrMissingField ErrorKind = "missing_field"

	// ErrUnsupportedTone marks a tone outside the declared set.
	ErrUnsupportedTone ErrorKind = "unsupported_tone"

	// ErrNoPlatforms marks a social request without any platform.
	ErrNoPlatforms ErrorKind = "no_platforms"

	// ErrInvalidField marks a present field whose value is unusable.
	ErrInvalidField ErrorKind = "invalid_field"

	// ErrInternal marks a generator that could not assemble a well-formed
	// result from valid input. It indicates a defect, not bad input.
	ErrInternal ErrorKind = "internal_generation"
)

// Error is a typed rejection or generation failure.
type Error struct {
	Kind    ErrorKind `json:"kind" yaml:"kind"`
	Field   string    `json:"field,omitempty" yaml:"field,omitempty"`
	Message string    `json:"error" yaml:"error"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Validation reports whether the error was raised by request validation
// rather than by a generator.
func (e *Error) Validation() bool {
	return e.Kind != ErrInternal
}

// NewError builds an Error of the given kind.
func NewError(kind ErrorKind, field, format string, args ...any) *Error {
	return &Error{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Internal builds an ErrInternal error.
func Internal(format string, args ...any) *Error {
	return NewError(ErrInternal, "", format, args...)
}

// KindOf returns the ErrorKind carried by err, or "" when err is not (and
// does not wrap) an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
