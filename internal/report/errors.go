package report

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid report input")
	ErrInvalidStatus     = errors.New("invalid report status")
	ErrExportUnavailable = errors.New("report export storage is not configured")
)
