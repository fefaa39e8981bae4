package analytics

import (
	"context"
	"time"
)

// AnalyticsRepository fetches the raw rows the aggregators fold over.
type AnalyticsRepository interface {
	// ConfirmedParticipations returns every confirmed booking of the given
	// users joined with the date's start time and volunteer hours. Future
	// bookings are included; the aggregator decides what counts.
	ConfirmedParticipations(ctx context.Context, userIDs []string) ([]ParticipationRow, error)

	// CompanyParticipations returns every confirmed booking of the
	// company's roster, independently of any roster fetch so both queries
	// can run in parallel.
	CompanyParticipations(ctx context.Context, companyID string) ([]ParticipationRow, error)

	// EmployeeParticipations returns one employee's completed history:
	// confirmed bookings with a start time at or before now, joined with
	// experience title and association name, most recent first.
	EmployeeParticipations(ctx context.Context, userID string, now time.Time) ([]Participation, error)
}
