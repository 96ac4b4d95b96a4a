package http

import (
	"net/http"

	"polaris-api/internal/kpi"
	"polaris-api/pkg/errors"
	"polaris-api/pkg/filter"
)

var (
	errWrongBody     = errors.NewHTTPError(110001, "Wrong body", http.StatusBadRequest)
	errWrongQuery    = errors.NewHTTPError(110002, "Wrong query", http.StatusBadRequest)
	errNotFound      = errors.NewHTTPError(110003, "KPI not found", http.StatusNotFound)
	errInvalidStatus = errors.NewHTTPError(110004, "Status must be one of on-track, at-risk, critical", http.StatusBadRequest)
	errEmptyPatch    = errors.NewHTTPError(110005, "Nothing to update", http.StatusBadRequest)
	errInvalidRange  = errors.NewHTTPError(110006, "Invalid time range", http.StatusBadRequest)
)

func (h *Handler) mapError(err error) error {
	switch err {
	case kpi.ErrKPINotFound:
		return errNotFound
	case kpi.ErrInvalidStatus:
		return errInvalidStatus
	case kpi.ErrEmptyPatch:
		return errEmptyPatch
	case filter.ErrInvalidTimeWindow:
		return errInvalidRange
	}
	return err
}
