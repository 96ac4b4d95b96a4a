package live

import "errors"

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrUnknownView    = errors.New("unknown view")
	ErrNotWatching    = errors.New("view is not watched")
	ErrNotSubscribed  = errors.New("not subscribed")
	ErrRealtimeOff    = errors.New("realtime is not available")
	ErrMissingID      = errors.New("id is required")
	ErrSessionClosed  = errors.New("session is closed")
	ErrMaxConnections = errors.New("maximum connections reached")
)
