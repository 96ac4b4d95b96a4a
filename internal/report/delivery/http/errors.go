package http

import (
	"net/http"

	"polaris-api/internal/report"
	"polaris-api/pkg/errors"
)

var (
	errWrongBody         = errors.NewHTTPError(150001, "Wrong body", http.StatusBadRequest)
	errWrongQuery        = errors.NewHTTPError(150002, "Wrong query", http.StatusBadRequest)
	errInvalidInput      = errors.NewHTTPError(150003, "Title and a valid category are required", http.StatusBadRequest)
	errInvalidStatus     = errors.NewHTTPError(150004, "Status must be one of draft, published, archived", http.StatusBadRequest)
	errExportUnavailable = errors.NewHTTPError(150005, "Report export is not available", http.StatusServiceUnavailable)
)

func (h *Handler) mapError(err error) error {
	switch err {
	case report.ErrInvalidInput:
		return errInvalidInput
	case report.ErrInvalidStatus:
		return errInvalidStatus
	case report.ErrExportUnavailable:
		return errExportUnavailable
	}
	return err
}
