package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/analytics"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
	"github.com/bravoapp/volunteering-backend-go/internal/handler/http/response"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/jwt"
)

type AnalyticsHandler interface {
	// ListEmployees returns the filtered, sorted employee stats table
	ListEmployees(w http.ResponseWriter, r *http.Request)
	// Overview returns the HR metric cards and top performers
	Overview(w http.ResponseWriter, r *http.Request)
	// ExportCSV serves the employee table as a CSV download
	ExportCSV(w http.ResponseWriter, r *http.Request)
	// EmployeeParticipations returns one employee's completed history
	EmployeeParticipations(w http.ResponseWriter, r *http.Request)
	// ListExperiences returns the company's experiences plus fleet metrics
	ListExperiences(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{analyticsService: analyticsService}
}

func parseSortField(v string) analytics.SortField {
	switch analytics.SortField(v) {
	case analytics.SortByExperiences, analytics.SortByHours, analytics.SortByLastParticipation:
		return analytics.SortField(v)
	default:
		return analytics.SortByName
	}
}

func parseSortDirection(v string) analytics.SortDirection {
	if analytics.SortDirection(v) == analytics.SortDesc {
		return analytics.SortDesc
	}
	return analytics.SortAsc
}

func employeeFilterFromQuery(r *http.Request) analytics.EmployeeFilter {
	return analytics.EmployeeFilter{
		Search:              r.URL.Query().Get("search"),
		OnlyNoParticipation: r.URL.Query().Get("no_participation") == "true",
	}
}

// ListEmployees handles GET /hr/employees
func (h *analyticsHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	companyID, err := jwt.CompanyID(r.Context())
	if err != nil {
		response.Unauthorized(w, "company_id not found in token")
		return
	}

	result, err := h.analyticsService.EmployeeStatsList(
		r.Context(),
		companyID,
		employeeFilterFromQuery(r),
		parseSortField(r.URL.Query().Get("sort")),
		parseSortDirection(r.URL.Query().Get("direction")),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Overview handles GET /hr/employees/overview
func (h *analyticsHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	companyID, err := jwt.CompanyID(r.Context())
	if err != nil {
		response.Unauthorized(w, "company_id not found in token")
		return
	}

	result, err := h.analyticsService.EmployeeOverview(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV handles GET /hr/employees/export
func (h *analyticsHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	companyID, err := jwt.CompanyID(r.Context())
	if err != nil {
		response.Unauthorized(w, "company_id not found in token")
		return
	}

	payload, filename, err := h.analyticsService.ExportEmployeesCSV(
		r.Context(),
		companyID,
		employeeFilterFromQuery(r),
		parseSortField(r.URL.Query().Get("sort")),
		parseSortDirection(r.URL.Query().Get("direction")),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// EmployeeParticipations handles GET /hr/employees/{employeeID}/participations
func (h *analyticsHandlerImpl) EmployeeParticipations(w http.ResponseWriter, r *http.Request) {
	companyID, err := jwt.CompanyID(r.Context())
	if err != nil {
		response.Unauthorized(w, "company_id not found in token")
		return
	}

	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.analyticsService.EmployeeParticipations(r.Context(), companyID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

type hrExperiencesResponse struct {
	Experiences []experience.AdminExperience `json:"experiences"`
	Metrics     *analytics.ExperienceMetrics `json:"metrics"`
}

// ListExperiences handles GET /hr/experiences
func (h *analyticsHandlerImpl) ListExperiences(w http.ResponseWriter, r *http.Request) {
	companyID, err := jwt.CompanyID(r.Context())
	if err != nil {
		response.Unauthorized(w, "company_id not found in token")
		return
	}

	filter := analytics.ExperienceFilter{
		Search:         r.URL.Query().Get("search"),
		CategoryID:     r.URL.Query().Get("category_id"),
		CityID:         r.URL.Query().Get("city_id"),
		ShowPastEvents: r.URL.Query().Get("show_past") == "true",
	}

	experiences, metrics, err := h.analyticsService.CompanyExperiences(r.Context(), companyID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	projected := make([]experience.AdminExperience, 0, len(experiences))
	for _, exp := range experiences {
		projected = append(projected, experience.ToAdminExperience(exp))
	}

	response.Success(w, hrExperiencesResponse{Experiences: projected, Metrics: metrics})
}
