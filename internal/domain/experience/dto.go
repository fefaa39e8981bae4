package experience

import "time"

// BrowseExperience is the employee-facing catalogue entry: published
// experiences with their upcoming dates and remaining capacity.
type BrowseExperience struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     *string      `json:"description,omitempty"`
	ImageURL        *string      `json:"image_url,omitempty"`
	Address         *string      `json:"address,omitempty"`
	AssociationName *string      `json:"association_name,omitempty"`
	CategoryID      *string      `json:"category_id,omitempty"`
	CityID          *string      `json:"city_id,omitempty"`
	CategoryName    *string      `json:"category_name,omitempty"`
	CityName        *string      `json:"city_name,omitempty"`
	Dates           []BrowseDate `json:"dates"`
}

// BrowseFilter narrows the employee-facing catalogue.
type BrowseFilter struct {
	Search     string
	CategoryID string
	CityID     string
}

// AdminExperience is the HR-facing projection: the full experience with its
// dates and the company's own bookings on each date.
type AdminExperience struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     *string     `json:"description,omitempty"`
	ImageURL        *string     `json:"image_url,omitempty"`
	Status          Status      `json:"status"`
	Address         *string     `json:"address,omitempty"`
	CategoryID      *string     `json:"category_id,omitempty"`
	CityID          *string     `json:"city_id,omitempty"`
	AssociationName *string     `json:"association_name,omitempty"`
	CategoryName    *string     `json:"category_name,omitempty"`
	CityName        *string     `json:"city_name,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	Dates           []AdminDate `json:"dates"`
}

type AdminDate struct {
	ID              string         `json:"id"`
	StartDatetime   time.Time      `json:"start_datetime"`
	EndDatetime     time.Time      `json:"end_datetime"`
	MaxParticipants int            `json:"max_participants"`
	VolunteerHours  *float64       `json:"volunteer_hours,omitempty"`
	ConfirmedCount  int            `json:"confirmed_count"`
	Bookings        []AdminBooking `json:"bookings"`
}

type AdminBooking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToAdminExperience projects an entity into the HR response shape.
func ToAdminExperience(e Experience) AdminExperience {
	dates := make([]AdminDate, 0, len(e.Dates))
	for _, d := range e.Dates {
		bookings := make([]AdminBooking, 0, len(d.Bookings))
		for _, b := range d.Bookings {
			bookings = append(bookings, AdminBooking{
				ID:        b.ID,
				UserID:    b.UserID,
				Status:    b.Status,
				FirstName: b.FirstName,
				LastName:  b.LastName,
				Email:     b.Email,
				CreatedAt: b.CreatedAt,
			})
		}
		dates = append(dates, AdminDate{
			ID:              d.ID,
			StartDatetime:   d.StartDatetime,
			EndDatetime:     d.EndDatetime,
			MaxParticipants: d.MaxParticipants,
			VolunteerHours:  d.VolunteerHours,
			ConfirmedCount:  d.ConfirmedCount(),
			Bookings:        bookings,
		})
	}

	return AdminExperience{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		ImageURL:        e.ImageURL,
		Status:          e.Status,
		Address:         e.Address,
		CategoryID:      e.CategoryID,
		CityID:          e.CityID,
		AssociationName: e.AssociationName,
		CategoryName:    e.CategoryName,
		CityName:        e.CityName,
		CreatedAt:       e.CreatedAt,
		Dates:           dates,
	}
}

type BrowseDate struct {
	ID              string    `json:"id"`
	StartDatetime   time.Time `json:"start_datetime"`
	EndDatetime     time.Time `json:"end_datetime"`
	MaxParticipants int       `json:"max_participants"`
	VolunteerHours  *float64  `json:"volunteer_hours,omitempty"`
	SpotsLeft       int       `json:"spots_left"`
}
