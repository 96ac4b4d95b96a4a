package feedback

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid feedback input")
	ErrInvalidSentiment = errors.New("invalid sentiment")
	ErrInvalidKind      = errors.New("invalid feedback kind")
)
