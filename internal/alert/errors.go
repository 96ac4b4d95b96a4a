package alert

import "errors"

var (
	ErrAlertNotFound  = errors.New("alert not found")
	ErrInvalidStatus  = errors.New("invalid alert status")
	ErrInvalidInput   = errors.New("invalid alert input")
	ErrDispatchFailed = errors.New("failed to dispatch alert")
)
