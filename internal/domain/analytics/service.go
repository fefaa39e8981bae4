package analytics

import (
	"context"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
)

// AnalyticsService is the HR-facing participation reporting surface. Every
// call recomputes from a fresh snapshot; nothing is cached across requests.
type AnalyticsService interface {
	// EmployeeStatsList returns the filtered, sorted employee table.
	EmployeeStatsList(ctx context.Context, companyID string, filter EmployeeFilter, sort SortField, direction SortDirection) ([]EmployeeStats, error)

	// EmployeeOverview returns the metric cards, monthly trend and top
	// performers for the company.
	EmployeeOverview(ctx context.Context, companyID string) (*EmployeeOverview, error)

	// ExportEmployeesCSV renders the filtered, sorted employee table as a
	// CSV payload and returns it with its download filename.
	ExportEmployeesCSV(ctx context.Context, companyID string, filter EmployeeFilter, sort SortField, direction SortDirection) (payload []byte, filename string, err error)

	// EmployeeParticipations returns one employee's completed history.
	// The employee must belong to the given company.
	EmployeeParticipations(ctx context.Context, companyID, employeeID string) ([]Participation, error)

	// CompanyExperiences returns the filtered experience list plus the
	// fleet metrics computed over the unfiltered set.
	CompanyExperiences(ctx context.Context, companyID string, filter ExperienceFilter) ([]experience.Experience, *ExperienceMetrics, error)
}
