package experience

import (
	"context"
	"time"
)

type ExperienceRepository interface {
	// ListByCompanyID returns every experience assigned to the company,
	// newest first, with dates in start order and each date's bookings
	// narrowed to the company's own employees.
	ListByCompanyID(ctx context.Context, companyID string) ([]Experience, error)

	// ListPublishedByCompanyID returns the employee-facing catalogue:
	// published experiences assigned to the company with dates starting
	// after the given instant and their remaining capacity.
	ListPublishedByCompanyID(ctx context.Context, companyID string, after time.Time) ([]BrowseExperience, error)

	// GetDateByID returns a single date instance without bookings.
	GetDateByID(ctx context.Context, dateID string) (ExperienceDate, error)
}
