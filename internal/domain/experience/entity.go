package experience

import "time"

// Experience is a volunteering activity offered by an association and
// assigned to companies through the experience_companies table.
type Experience struct {
	ID              string
	Title           string
	Description     *string
	ImageURL        *string
	Status          Status
	Address         *string
	CategoryID      *string
	CityID          *string
	AssociationName *string
	CategoryName    *string
	CityName        *string
	CreatedAt       time.Time
	Dates           []ExperienceDate
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// ExperienceDate is a scheduled, capacity-bounded instance of an experience.
// VolunteerHours is nil when the association has not declared an hour value.
type ExperienceDate struct {
	ID              string
	ExperienceID    string
	StartDatetime   time.Time
	EndDatetime     time.Time
	MaxParticipants int
	VolunteerHours  *float64
	Bookings        []DateBooking
}

// DateBooking is a booking row attached to a date, already narrowed to the
// requesting company's employees.
type DateBooking struct {
	ID        string
	UserID    string
	Status    string
	CreatedAt time.Time
	FirstName *string
	LastName  *string
	Email     string
}

// ConfirmedCount returns the number of confirmed bookings on the date.
func (d ExperienceDate) ConfirmedCount() int {
	count := 0
	for _, b := range d.Bookings {
		if b.Status == "confirmed" {
			count++
		}
	}
	return count
}
