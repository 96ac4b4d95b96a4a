package realtime

import "errors"

var (
	ErrInvalidEvent    = errors.New("realtime: event must be INSERT, UPDATE, DELETE or *")
	ErrEmptyCollection = errors.New("realtime: collection is required")
	ErrNilCallback     = errors.New("realtime: callback is required")
	ErrClosed          = errors.New("realtime: broker is shut down")
)
