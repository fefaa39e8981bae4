package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravoapp/volunteering-backend-go/internal/config"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/analytics"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/booking"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/employee"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/feedback"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/master/category"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/master/city"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/jwt"
)

const routerTestSecret = "test-secret-key-for-jwt"

type stubAnalyticsService struct {
	stats     []analytics.EmployeeStats
	companyID string
}

func (s *stubAnalyticsService) EmployeeStatsList(ctx context.Context, companyID string, filter analytics.EmployeeFilter, sort analytics.SortField, direction analytics.SortDirection) ([]analytics.EmployeeStats, error) {
	s.companyID = companyID
	return s.stats, nil
}

func (s *stubAnalyticsService) EmployeeOverview(ctx context.Context, companyID string) (*analytics.EmployeeOverview, error) {
	return &analytics.EmployeeOverview{TrendDirection: "up"}, nil
}

func (s *stubAnalyticsService) ExportEmployeesCSV(ctx context.Context, companyID string, filter analytics.EmployeeFilter, sort analytics.SortField, direction analytics.SortDirection) ([]byte, string, error) {
	return []byte(`"Nome"` + "\n"), "dipendenti_2025-06-15.csv", nil
}

func (s *stubAnalyticsService) EmployeeParticipations(ctx context.Context, companyID, employeeID string) ([]analytics.Participation, error) {
	return []analytics.Participation{}, nil
}

func (s *stubAnalyticsService) CompanyExperiences(ctx context.Context, companyID string, filter analytics.ExperienceFilter) ([]experience.Experience, *analytics.ExperienceMetrics, error) {
	return []experience.Experience{}, &analytics.ExperienceMetrics{}, nil
}

type stubExperienceService struct{}

func (s *stubExperienceService) Browse(ctx context.Context, companyID string, filter experience.BrowseFilter) ([]experience.BrowseExperience, error) {
	return []experience.BrowseExperience{}, nil
}

type stubBookingService struct {
	created booking.Booking
}

func (s *stubBookingService) Create(ctx context.Context, userID string, req booking.CreateBookingRequest) (booking.Booking, error) {
	s.created = booking.Booking{ID: "b1", UserID: userID, ExperienceDateID: req.ExperienceDateID, Status: booking.StatusConfirmed}
	return s.created, nil
}

func (s *stubBookingService) Cancel(ctx context.Context, userID, bookingID string) error {
	return nil
}

func (s *stubBookingService) ListMine(ctx context.Context, userID string) ([]booking.BookingDetail, error) {
	return []booking.BookingDetail{}, nil
}

type stubFeedbackService struct {
	runs int
}

func (s *stubFeedbackService) CreateReview(ctx context.Context, userID, bookingID string, req feedback.CreateReviewRequest) (feedback.Review, error) {
	return feedback.Review{ID: "r1", BookingID: bookingID, UserID: userID, Rating: req.Rating}, nil
}

func (s *stubFeedbackService) RunFeedbackRequests(ctx context.Context) (feedback.RunResult, error) {
	s.runs++
	return feedback.RunResult{}, nil
}

type stubMasterService struct{}

func (s *stubMasterService) List(ctx context.Context) ([]category.Category, error) {
	return []category.Category{{ID: "c1", Name: "Ambiente"}}, nil
}

type stubCityService struct{}

func (s *stubCityService) List(ctx context.Context) ([]city.City, error) {
	return []city.City{{ID: "ci1", Name: "Milano"}}, nil
}

type routerFixture struct {
	router     http.Handler
	jwtService jwt.Service
	analytics  *stubAnalyticsService
	feedback   *stubFeedbackService
}

func newRouterFixture() *routerFixture {
	cfg := &config.Config{
		App: config.AppConfig{Env: "test", AllowedOrigins: []string{"http://localhost:3000"}},
	}
	jwtService := jwt.NewJWTService(routerTestSecret)
	analyticsSvc := &stubAnalyticsService{}
	feedbackSvc := &stubFeedbackService{}

	router := NewRouter(
		cfg,
		jwtService,
		NewAnalyticsHandler(analyticsSvc),
		NewExperienceHandler(&stubExperienceService{}),
		NewBookingHandler(&stubBookingService{}),
		NewFeedbackHandler(feedbackSvc),
		NewMasterHandler(&stubMasterService{}, &stubCityService{}),
	)

	return &routerFixture{router: router, jwtService: jwtService, analytics: analyticsSvc, feedback: feedbackSvc}
}

func (f *routerFixture) token(t *testing.T, role employee.Role) string {
	companyID := "company-1"
	token, _, err := f.jwtService.GenerateAccessToken("user-1", "user@acme.it", &companyID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (f *routerFixture) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RequiresToken(t *testing.T) {
	f := newRouterFixture()

	rec := f.request(t, http.MethodGet, "/api/v1/experiences", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_EmployeeCanBrowse(t *testing.T) {
	f := newRouterFixture()

	rec := f.request(t, http.MethodGet, "/api/v1/experiences", f.token(t, employee.RoleEmployee), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_EmployeeCannotAccessHR(t *testing.T) {
	f := newRouterFixture()

	rec := f.request(t, http.MethodGet, "/api/v1/hr/employees", f.token(t, employee.RoleEmployee), nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_HRAdminListsEmployees(t *testing.T) {
	f := newRouterFixture()

	rec := f.request(t, http.MethodGet, "/api/v1/hr/employees?sort=hours&direction=desc", f.token(t, employee.RoleHRAdmin), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "company-1", f.analytics.companyID)
}

func TestRouter_CSVExportHeaders(t *testing.T) {
	f := newRouterFixture()

	rec := f.request(t, http.MethodGet, "/api/v1/hr/employees/export", f.token(t, employee.RoleHRAdmin), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="dipendenti_2025-06-15.csv"`, rec.Header().Get("Content-Disposition"))
}

func TestRouter_CreateBooking(t *testing.T) {
	f := newRouterFixture()

	rec := f.request(t, http.MethodPost, "/api/v1/bookings", f.token(t, employee.RoleEmployee),
		booking.CreateBookingRequest{ExperienceDateID: "d1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_CreateBookingValidatesBody(t *testing.T) {
	f := newRouterFixture()

	rec := f.request(t, http.MethodPost, "/api/v1/bookings", f.token(t, employee.RoleEmployee),
		booking.CreateBookingRequest{})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRouter_FeedbackJobIsSuperAdminOnly(t *testing.T) {
	f := newRouterFixture()

	rec := f.request(t, http.MethodPost, "/api/v1/jobs/feedback-request", f.token(t, employee.RoleHRAdmin), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 0, f.feedback.runs)

	rec = f.request(t, http.MethodPost, "/api/v1/jobs/feedback-request", f.token(t, employee.RoleSuperAdmin), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, f.feedback.runs)
}

func TestRouter_Heartbeat(t *testing.T) {
	f := newRouterFixture()

	rec := f.request(t, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
