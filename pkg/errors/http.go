package errors

import (
	"errors"
	"net/http"
)

// HTTPError is a domain error that knows how it should be rendered over HTTP.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds a 400 error with the given business code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: http.StatusBadRequest}
}

// NewHTTPErrorWithStatus builds an error rendered with an explicit status.
func NewHTTPErrorWithStatus(code int, message string, status int) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

// AsHTTPError reports whether err wraps an *HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
