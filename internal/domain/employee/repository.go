package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetRosterByCompanyID returns the company roster: profiles with role
	// employee or hr_admin.
	GetRosterByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}
