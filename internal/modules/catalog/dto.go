package catalog

// ClassSummary is one row of the class listing endpoints. DateTime is
// display-formatted in the requested timezone.
type ClassSummary struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DateTime       string `json:"date_time"`
	Instructor     string `json:"instructor"`
	AvailableSlots int    `json:"available_slots"`
}
