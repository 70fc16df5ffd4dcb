package dispatch

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure. The kind is decided at the point of failure and
// travels unchanged to the boundary, where it picks the HTTP status code.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindConfiguration Kind = "configuration"
	KindConnectivity  Kind = "connectivity"
	KindDatabase      Kind = "database"
	KindUnknown       Kind = "unknown"
)

// Error is a classified failure descriptor.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewValidation creates a validation error (missing, malformed or
// out-of-domain input).
func NewValidation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewConfiguration wraps an error caused by unset or incomplete connection
// settings.
func NewConfiguration(cause error) *Error {
	return &Error{Kind: KindConfiguration, Message: "database configuration error", Cause: cause}
}

// NewConnectivity wraps an error raised while establishing a connection.
func NewConnectivity(cause error) *Error {
	return &Error{Kind: KindConnectivity, Message: "database connection error", Cause: cause}
}

// NewDatabase wraps an error raised by the database while executing a command.
func NewDatabase(operation string, cause error) *Error {
	return &Error{Kind: KindDatabase, Message: fmt.Sprintf("error executing %s", operation), Cause: cause}
}

// KindOf returns the classification of err, or KindUnknown for errors that
// did not originate in this package.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// HTTPStatus maps a failure to the status code the boundary reports.
// Validation failures are the caller's fault; everything else is internal.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if KindOf(err) == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
