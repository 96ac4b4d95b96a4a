package response

import "polaris-api/pkg/errors"

// Resp is the envelope of every JSON answer.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain errors to their HTTP form.
type ErrorMapping map[error]*errors.HTTPError
