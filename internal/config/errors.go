package config

import "errors"

// Validation errors. All are raised before classification runs; callers
// match them with errors.Is.
var (
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidType       = errors.New("invalid field type")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidRange      = errors.New("start date is after end date")
)
