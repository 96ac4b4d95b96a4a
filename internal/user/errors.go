package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrFieldRequired = errors.New("field required")
	ErrEmptyPatch    = errors.New("nothing to update")
)
