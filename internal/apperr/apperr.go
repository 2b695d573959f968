// Package apperr carries an HTTP status code alongside an error message so that
// handlers can forward failures to the central error formatter.
package apperr

import (
	"errors"   // Error unwrapping
	"net/http" // HTTP status codes
)

// Messages shared by several handlers
const (
	MsgInvalidInput   = "Invalid inputs passed, please check your data."
	MsgUnknown        = "An unknown error occurred!"
	MsgRouteNotFound  = "Could not find this route."
	MsgBadCredentials = "Could not identify user, credentials seem to be wrong."
)

// HttpError is an error with the status code it should be reported with
type HttpError struct {
	Code    int    // HTTP status code, 500 when zero
	Message string // Client visible message
	Err     error  // Underlying cause, never sent to the client
}

// Error implements the error interface
func (e *HttpError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause
func (e *HttpError) Unwrap() error {
	return e.Err
}

// Status returns the code to respond with
func (e *HttpError) Status() int {
	if e.Code == 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// New creates an HttpError with the given code and message
func New(code int, message string) *HttpError {
	return &HttpError{Code: code, Message: message}
}

// NotFound creates a 404 error
func NotFound(message string) *HttpError {
	return New(http.StatusNotFound, message)
}

// Unprocessable creates a 422 error
func Unprocessable(message string) *HttpError {
	return New(http.StatusUnprocessableEntity, message)
}

// Unauthorized creates a 401 error
func Unauthorized(message string) *HttpError {
	return New(http.StatusUnauthorized, message)
}

// Internal creates a 500 error wrapping cause
func Internal(message string, cause error) *HttpError {
	return &HttpError{Code: http.StatusInternalServerError, Message: message, Err: cause}
}

// From extracts an HttpError from err, classifying anything else as internal
func From(err error) *HttpError {
	var he *HttpError
	if errors.As(err, &he) {
		return he
	}
	return Internal(MsgUnknown, err)
}
