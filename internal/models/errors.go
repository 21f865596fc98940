package models

import "errors"

var (
	// ErrValidation marks input rejected before it reaches a Schedule, e.g. an empty title.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a stale day or stream index.
	ErrNotFound = errors.New("not found")
)
