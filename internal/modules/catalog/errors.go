package catalog

import "errors"

var (
	ErrNoClasses       = errors.New("no classes available")
	ErrInvalidTimezone = errors.New("invalid timezone")
)
