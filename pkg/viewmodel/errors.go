package viewmodel

import "errors"

// Caller contract violations. Data-quality problems never produce an error.
var (
	ErrUnknownSortField     = errors.New("unknown sort field")
	ErrUnknownSortDirection = errors.New("unknown sort direction")
	ErrUnknownView          = errors.New("unknown view shape")
	ErrInvalidWindow        = errors.New("invalid date window")
)
