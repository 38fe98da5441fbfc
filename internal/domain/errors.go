package domain

import "errors"

var (
	ErrValidation   = errors.New("validation_failed")
	ErrAccessDenied = errors.New("access_denied")
	ErrNotFound     = errors.New("not_found")
	ErrConflict     = errors.New("conflict")
)
