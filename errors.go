package ngoscan

import (
	"errors"
	"fmt"
)

// Application error codes. These map failures to broad categories that
// callers can branch on without string matching.
const (
	EINVALID     = "invalid"     // validation or malformed input
	ENOTFOUND    = "not_found"   // entity does not exist
	EUNAVAILABLE = "unavailable" // external system unavailable (fetch failures)
	EINTERNAL    = "internal"    // internal error
)

// Error represents an application error with a machine-readable code
// and a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("ngoscan error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an *Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the
// empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// MissingFieldError indicates that a required record field resolved to
// an empty value for an organization. It is fatal to that
// organization's record.
type MissingFieldError struct {
	Domain string
	Field  string
}

// Error implements the error interface. The message format is part of
// the contract: callers surface it verbatim to diagnose which rule
// needs fixing.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field -> %s", e.Domain, e.Field)
}
