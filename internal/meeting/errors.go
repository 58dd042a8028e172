package meeting

import "errors"

var (
	ErrInvalidRange = errors.New("invalid time range")
	ErrExportFailed = errors.New("failed to export calendar")
)
