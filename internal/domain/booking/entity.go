package booking

import "time"

// Booking links an employee to one experience-date instance. Only confirmed
// bookings count toward participation.
type Booking struct {
	ID               string
	UserID           string
	ExperienceDateID string
	Status           Status
	CreatedAt        time.Time
}

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)
