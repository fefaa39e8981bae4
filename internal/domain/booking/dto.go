package booking

import "time"

type CreateBookingRequest struct {
	ExperienceDateID string `json:"experience_date_id"`
}

// BookingDetail is a booking joined with its date and experience for the
// employee's "my bookings" list.
type BookingDetail struct {
	ID              string    `json:"id"`
	Status          Status    `json:"status"`
	ExperienceID    string    `json:"experience_id"`
	ExperienceTitle string    `json:"experience_title"`
	AssociationName *string   `json:"association_name,omitempty"`
	StartDatetime   time.Time `json:"start_datetime"`
	EndDatetime     time.Time `json:"end_datetime"`
	VolunteerHours  *float64  `json:"volunteer_hours,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
