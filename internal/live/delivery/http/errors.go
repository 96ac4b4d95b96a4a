package http

import (
	"net/http"

	"polaris-api/pkg/errors"
)

var errTooManyConnections = errors.NewHTTPError(180001, "Too many live connections", http.StatusServiceUnavailable)
