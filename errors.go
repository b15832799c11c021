package preklad

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFLICT   = "conflict"
	EINTERNAL   = "internal"
	EINVALID    = "invalid"
	ENOTFOUND   = "not_found"
	ENETWORK    = "network"
	EHTTPSTATUS = "http_status"
	ETIMEOUT    = "timeout"
	EUNPARSABLE = "unparsable"
	EOUTPUT     = "output"
)

// Error represents an application error. Errors carry a machine-readable
// code and a human-readable message. EHTTPSTATUS errors additionally carry
// the offending HTTP status code.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string

	// Status is the HTTP status code for EHTTPSTATUS errors, zero otherwise.
	Status int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("preklad error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// StatusErrorf constructs an EHTTPSTATUS Error carrying the HTTP status code.
func StatusErrorf(status int, format string, args ...any) *Error {
	return &Error{
		Code:    EHTTPSTATUS,
		Message: fmt.Sprintf(format, args...),
		Status:  status,
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL; nil returns an empty string.
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
// Non-application errors always return "Internal error."; nil returns an
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

// ErrorStatus unwraps an application error and returns its HTTP status code.
// Returns zero for nil, non-application, and non-EHTTPSTATUS errors.
func ErrorStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
