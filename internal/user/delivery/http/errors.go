package http

import (
	"net/http"

	"polaris-api/internal/user"
	"polaris-api/pkg/errors"
)

var (
	errWrongBody     = errors.NewHTTPError(160001, "Wrong body", http.StatusBadRequest)
	errWrongQuery    = errors.NewHTTPError(160002, "Wrong query", http.StatusBadRequest)
	errNotFound      = errors.NewHTTPError(160003, "User not found", http.StatusNotFound)
	errFieldRequired = errors.NewHTTPError(160004, "First and last name cannot be empty", http.StatusBadRequest)
	errEmptyPatch    = errors.NewHTTPError(160005, "Nothing to update", http.StatusBadRequest)
	errUnauthorized  = errors.NewUnauthorizedHTTPError()
)

func (h *Handler) mapError(err error) error {
	switch err {
	case user.ErrUserNotFound:
		return errNotFound
	case user.ErrFieldRequired:
		return errFieldRequired
	case user.ErrEmptyPatch:
		return errEmptyPatch
	case user.ErrUnauthorized:
		return errUnauthorized
	}
	return err
}
