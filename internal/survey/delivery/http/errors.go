package http

import (
	"net/http"

	"polaris-api/internal/survey"
	"polaris-api/pkg/errors"
)

var (
	errWrongBody     = errors.NewHTTPError(140001, "Wrong body", http.StatusBadRequest)
	errWrongQuery    = errors.NewHTTPError(140002, "Wrong query", http.StatusBadRequest)
	errInvalidInput  = errors.NewHTTPError(140003, "Title and a valid type are required", http.StatusBadRequest)
	errInvalidStatus = errors.NewHTTPError(140004, "Status must be one of draft, active, completed, archived", http.StatusBadRequest)
)

func (h *Handler) mapError(err error) error {
	switch err {
	case survey.ErrInvalidInput:
		return errInvalidInput
	case survey.ErrInvalidStatus:
		return errInvalidStatus
	}
	return err
}
