package http

import (
	"net/http"

	"polaris-api/internal/alert"
	"polaris-api/pkg/errors"
)

var (
	errWrongBody     = errors.NewHTTPError(120001, "Wrong body", http.StatusBadRequest)
	errWrongQuery    = errors.NewHTTPError(120002, "Wrong query", http.StatusBadRequest)
	errNotFound      = errors.NewHTTPError(120003, "Alert not found", http.StatusNotFound)
	errInvalidStatus = errors.NewHTTPError(120004, "Status must be one of active, acknowledged, resolved", http.StatusBadRequest)
	errInvalidInput  = errors.NewHTTPError(120005, "Alert needs a title, a valid type and a valid priority", http.StatusBadRequest)
)

func (h *Handler) mapError(err error) error {
	switch err {
	case alert.ErrAlertNotFound:
		return errNotFound
	case alert.ErrInvalidStatus:
		return errInvalidStatus
	case alert.ErrInvalidInput:
		return errInvalidInput
	}
	return err
}
