package survey

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid survey input")
	ErrInvalidStatus = errors.New("invalid survey status")
)
