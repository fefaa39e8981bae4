package experience

import "context"

// ExperienceService defines the interface for the employee-facing catalogue
type ExperienceService interface {
	// Browse returns published experiences assigned to the company with
	// upcoming dates and remaining capacity, narrowed by the filter.
	Browse(ctx context.Context, companyID string, filter BrowseFilter) ([]BrowseExperience, error)
}
