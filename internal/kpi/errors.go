package kpi

import "errors"

var (
	ErrKPINotFound   = errors.New("kpi not found")
	ErrInvalidStatus = errors.New("invalid kpi status")
	ErrEmptyPatch    = errors.New("nothing to update")
)
