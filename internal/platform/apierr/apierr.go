package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound       = "not_found"
	CodeInvalidRequest = "invalid_request"
	CodeConflict       = "conflict"
	CodeUnauthorized   = "unauthorized"
	CodeInternal       = "internal_error"
)

const internalMessage = "Internal server error"

// Error carries the HTTP classification of a failure alongside its cause.
// Message is safe to show to clients; Err is for logs.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

// PublicMessage is the text written to the response body. Server errors
// never expose their cause.
func (e *Error) PublicMessage() string {
	switch {
	case e.Status >= http.StatusInternalServerError:
		return internalMessage
	case e.Message != "":
		return e.Message
	case e.Status != 0:
		return http.StatusText(e.Status)
	default:
		return "request failed"
	}
}

func New(status int, code, msg string, err error) *Error {
	return &Error{Status: status, Code: code, Message: msg, Err: err}
}

func NotFound(msg string) *Error {
	return New(http.StatusNotFound, CodeNotFound, msg, nil)
}

func BadRequest(msg string) *Error {
	return New(http.StatusBadRequest, CodeInvalidRequest, msg, nil)
}

func Unauthorized(msg string) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, msg, nil)
}

func Conflict(msg string, cause error) *Error {
	return New(http.StatusConflict, CodeConflict, msg, cause)
}

// Internal marks a store or transaction failure. The cause stays reachable
// through Unwrap for logging; responders must not echo it to clients.
func Internal(cause error) *Error {
	return New(http.StatusInternalServerError, CodeInternal, "", cause)
}

// From extracts an *Error from err, treating anything unclassified as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}

func IsNotFound(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}
