package booking

type CreateBookingRequest struct {
	ClassID     int64  `json:"class_id" validate:"required"`
	ClientName  string `json:"client_name" validate:"required"`
	ClientEmail string `json:"client_email" validate:"required"`
	Timezone    string `json:"timezone"`
	LocalTime   string `json:"local_time" validate:"required"`
}

type CreateBookingResponse struct {
	Message      string `json:"message"`
	ClassTimeUTC string `json:"class_time_utc"`
	Timezone     string `json:"timezone"`
}

// ClientBooking is one row of GET /bookings. DateTime is display-formatted
// in the requested timezone.
type ClientBooking struct {
	ID         int64  `json:"id"`
	ClassName  string `json:"class_name"`
	DateTime   string `json:"date_time"`
	Instructor string `json:"instructor"`
}

// AdminBooking is one row of GET /all-bookings, carrying the client identity
// on top of the ClientBooking fields.
type AdminBooking struct {
	ID          int64  `json:"id"`
	ClassName   string `json:"class_name"`
	DateTime    string `json:"date_time"`
	Instructor  string `json:"instructor"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
}
