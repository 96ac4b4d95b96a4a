package http

import (
	"net/http"

	"polaris-api/internal/feedback"
	"polaris-api/pkg/errors"
	"polaris-api/pkg/filter"
)

var (
	errWrongBody        = errors.NewHTTPError(130001, "Wrong body", http.StatusBadRequest)
	errWrongQuery       = errors.NewHTTPError(130002, "Wrong query", http.StatusBadRequest)
	errInvalidInput     = errors.NewHTTPError(130003, "Invalid feedback", http.StatusBadRequest)
	errInvalidSentiment = errors.NewHTTPError(130004, "Sentiment must be one of positive, neutral, negative", http.StatusBadRequest)
	errInvalidRange     = errors.NewHTTPError(130005, "Invalid time range", http.StatusBadRequest)
)

func (h *Handler) mapError(err error) error {
	switch err {
	case feedback.ErrInvalidInput, feedback.ErrInvalidKind:
		return errInvalidInput
	case feedback.ErrInvalidSentiment:
		return errInvalidSentiment
	case filter.ErrInvalidTimeWindow:
		return errInvalidRange
	}
	return err
}
