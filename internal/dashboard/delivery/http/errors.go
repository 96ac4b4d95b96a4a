package http

import (
	"net/http"

	"polaris-api/pkg/errors"
	"polaris-api/pkg/filter"
)

var (
	errWrongQuery   = errors.NewHTTPError(170001, "Wrong query", http.StatusBadRequest)
	errInvalidRange = errors.NewHTTPError(170002, "Invalid time range", http.StatusBadRequest)
)

func (h *Handler) mapError(err error) error {
	if err == filter.ErrInvalidTimeWindow {
		return errInvalidRange
	}
	return err
}
