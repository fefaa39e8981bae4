package analytics

import "time"

// ========== EMPLOYEE PARTICIPATION ==========

// EmployeeStats is one row of the HR employee table: lifetime participation
// accumulated from confirmed bookings whose event already started.
type EmployeeStats struct {
	ID                string     `json:"id"`
	FirstName         *string    `json:"first_name,omitempty"`
	LastName          *string    `json:"last_name,omitempty"`
	Email             string     `json:"email"`
	TotalExperiences  int        `json:"total_experiences"`
	TotalHours        float64    `json:"total_hours"`
	LastParticipation *time.Time `json:"last_participation,omitempty"`
}

// ParticipationRow is the raw aggregation input: a confirmed booking joined
// with its date's start time and volunteer hours.
type ParticipationRow struct {
	BookingID      string
	UserID         string
	StartDatetime  time.Time
	VolunteerHours *float64
}

// MonthlyTrendPoint counts participations in one calendar month.
type MonthlyTrendPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// ========== SUMMARY CARDS ==========

// EmployeeOverview backs the HR metric cards and the top performers table.
type EmployeeOverview struct {
	TotalEmployees    int                 `json:"total_employees"`
	ActiveEmployees   int                 `json:"active_employees"`
	ActivePercentage  int                 `json:"active_percentage"`
	AvgHoursPerActive float64             `json:"avg_hours_per_active"`
	NoParticipation   int                 `json:"no_participation"`
	MonthlyTrend      []MonthlyTrendPoint `json:"monthly_trend"`
	TrendDirection    string              `json:"trend_direction"` // "up" or "down"
	TopPerformers     []TopPerformer      `json:"top_performers"`
}

type TopPerformer struct {
	ID               string  `json:"id"`
	DisplayName      string  `json:"display_name"`
	TotalExperiences int     `json:"total_experiences"`
	TotalHours       float64 `json:"total_hours"`
}

// ========== DRILL-DOWN ==========

// Participation is one completed event in an employee's history.
type Participation struct {
	BookingID       string    `json:"booking_id"`
	ExperienceTitle string    `json:"experience_title"`
	AssociationName *string   `json:"association_name,omitempty"`
	StartDatetime   time.Time `json:"start_datetime"`
	VolunteerHours  *float64  `json:"volunteer_hours,omitempty"`
}

// ========== EXPERIENCE METRICS ==========

// ExperienceMetrics are the fleet-wide cards on the HR experiences page.
type ExperienceMetrics struct {
	ActiveExperiences   int `json:"active_experiences"`
	FutureEvents        int `json:"future_events"`
	TotalParticipations int `json:"total_participations"`
	AverageFillRate     int `json:"average_fill_rate"`
}

// ========== FILTERS & SORTING ==========

type SortField string

const (
	SortByName              SortField = "name"
	SortByExperiences       SortField = "experiences"
	SortByHours             SortField = "hours"
	SortByLastParticipation SortField = "last_participation"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// EmployeeFilter narrows the HR employee list before sorting.
type EmployeeFilter struct {
	Search              string
	OnlyNoParticipation bool
}

// ExperienceFilter narrows the HR experience list.
type ExperienceFilter struct {
	Search         string
	CategoryID     string
	CityID         string
	ShowPastEvents bool
}
