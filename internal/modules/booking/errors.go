package booking

import "errors"

var (
	ErrMissingFields     = errors.New("missing fields")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidName       = errors.New("invalid client name")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrClassNotFound     = errors.New("class not found")
	ErrNoSlotsAvailable  = errors.New("no slots available")
	ErrDateMismatch      = errors.New("requested date does not match class date")
	ErrInvalidTimezone   = errors.New("invalid timezone")
	ErrNoBookings        = errors.New("no bookings found")
)
