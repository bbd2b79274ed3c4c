package services

import (
	"errors"
	"fmt"
)

// Kind classifies service failures so that status codes are assigned in one
// boundary layer instead of ad hoc per handler.
type Kind int

const (
	// KindInvalidInput covers malformed bodies, missing or mistyped fields
	// and failed format validation.
	KindInvalidInput Kind = iota

	// KindNotFound covers lookups of absent entities.
	KindNotFound

	// KindConflict covers domain rule violations such as an overlapping
	// reservation.
	KindConflict

	// KindUpstreamFailure covers failures of the document store, the
	// identity provider or outbound HTTP calls.
	KindUpstreamFailure
)

// Error is a classified service failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "service error"
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a classified error with a fixed message.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Errorf creates a classified error with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError classifies an underlying error, keeping it unwrappable.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the classification from an error chain.
func KindOf(err error) (Kind, bool) {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind, true
	}
	return 0, false
}
