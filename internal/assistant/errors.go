package assistant

import "errors"

var (
	ErrMalformedResponse = errors.New("malformed model response")
	ErrUnknownAction     = errors.New("unknown action")
	ErrEmptyMessage      = errors.New("empty message")
)
