package errors

import "net/http"

// HTTPError is a domain error already translated for the HTTP layer.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError returns a new HTTPError. A zero statusCode means 400.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NewUnauthorizedHTTPError() *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, "Unauthorized", http.StatusUnauthorized)
}

func NewNotFoundHTTPError(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message, http.StatusNotFound)
}

func (e *HTTPError) Error() string {
	return e.Message
}
