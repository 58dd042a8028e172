package task

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid task status")
)
