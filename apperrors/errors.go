// Package apperrors defines the error taxonomy shared by the services
// and mapped to HTTP status codes at the controller boundary.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies a failure for status mapping and audit logging.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindCapacityExceeded
	KindNotFound
	KindDecompression
	KindLogoProcessing
	KindRateLimited
)

// Error is a classified failure with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a classified error that preserves the underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain. Unclassified errors are
// treated as internal faults.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps a Kind to the response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindCapacityExceeded, KindNotFound, KindDecompression, KindLogoProcessing:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
