package domain

import "time"

// Booking ties a client to exactly one fitness class. Bookings are
// immutable once created and are never deleted in normal operation.
type Booking struct {
	ID          int64     `json:"id"`
	ClassID     int64     `json:"class_id" validate:"required"`
	ClientName  string    `json:"client_name" validate:"required"`
	ClientEmail string    `json:"client_email" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`

	Class *FitnessClass `json:"class,omitempty"`
}
