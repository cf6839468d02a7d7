package domain

import "time"

// FitnessClass is a scheduled class with a fixed slot capacity.
// DateTime is always stored as a UTC instant; conversion into a client
// timezone happens only at display time.
type FitnessClass struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name" validate:"required"`
	DateTime       time.Time `json:"date_time" validate:"required"`
	Instructor     string    `json:"instructor" validate:"required"`
	AvailableSlots int       `json:"available_slots" validate:"gte=0"`
}
