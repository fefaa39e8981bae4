package analytics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/analytics"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/employee"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
)

type AnalyticsServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	analyticsRepo  analytics.AnalyticsRepository
	experienceRepo experience.ExperienceRepository
}

func NewAnalyticsService(
	employeeRepo employee.EmployeeRepository,
	analyticsRepo analytics.AnalyticsRepository,
	experienceRepo experience.ExperienceRepository,
) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		employeeRepo:   employeeRepo,
		analyticsRepo:  analyticsRepo,
		experienceRepo: experienceRepo,
	}
}

// EmployeeStatsList implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) EmployeeStatsList(ctx context.Context, companyID string, filter analytics.EmployeeFilter, sortField analytics.SortField, direction analytics.SortDirection) ([]analytics.EmployeeStats, error) {
	stats, err := s.buildStats(ctx, companyID)
	if err != nil {
		return nil, err
	}

	filtered := FilterEmployees(stats, filter)
	SortEmployees(filtered, sortField, direction)
	return filtered, nil
}

// EmployeeOverview implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) EmployeeOverview(ctx context.Context, companyID string) (*analytics.EmployeeOverview, error) {
	now := time.Now()

	var (
		roster []employee.Employee
		rows   []analytics.ParticipationRow
	)

	// Roster and participations are independent queries
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.employeeRepo.GetRosterByCompanyID(gCtx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.analyticsRepo.CompanyParticipations(gCtx, companyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := BuildEmployeeStats(roster, rows, now)
	trend := MonthlyTrend(rows, now)
	return BuildOverview(roster, stats, trend), nil
}

// ExportEmployeesCSV implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) ExportEmployeesCSV(ctx context.Context, companyID string, filter analytics.EmployeeFilter, sortField analytics.SortField, direction analytics.SortDirection) ([]byte, string, error) {
	stats, err := s.EmployeeStatsList(ctx, companyID, filter, sortField, direction)
	if err != nil {
		return nil, "", err
	}

	payload, filename := RenderEmployeesCSV(stats, time.Now())
	return payload, filename, nil
}

// EmployeeParticipations implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) EmployeeParticipations(ctx context.Context, companyID, employeeID string) ([]analytics.Participation, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp.CompanyID != companyID {
		return nil, employee.ErrEmployeeNotFound
	}

	participations, err := s.analyticsRepo.EmployeeParticipations(ctx, employeeID, time.Now())
	if err != nil {
		return nil, err
	}
	if participations == nil {
		participations = []analytics.Participation{}
	}
	return participations, nil
}

// CompanyExperiences implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) CompanyExperiences(ctx context.Context, companyID string, filter analytics.ExperienceFilter) ([]experience.Experience, *analytics.ExperienceMetrics, error) {
	experiences, err := s.experienceRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	// Metrics cover the whole fleet, filters only narrow the list
	metrics := ComputeExperienceMetrics(experiences, now)
	filtered := FilterExperiences(experiences, filter, now)
	return filtered, metrics, nil
}

// buildStats fetches the roster and folds its confirmed bookings into one
// row per employee. An empty roster skips the participations query.
func (s *AnalyticsServiceImpl) buildStats(ctx context.Context, companyID string) ([]analytics.EmployeeStats, error) {
	roster, err := s.employeeRepo.GetRosterByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return []analytics.EmployeeStats{}, nil
	}

	userIDs := make([]string, 0, len(roster))
	for _, emp := range roster {
		userIDs = append(userIDs, emp.ID)
	}

	rows, err := s.analyticsRepo.ConfirmedParticipations(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	return BuildEmployeeStats(roster, rows, time.Now()), nil
}
