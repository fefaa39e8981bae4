package http

import (
	"net/http"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
	"github.com/bravoapp/volunteering-backend-go/internal/handler/http/response"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/jwt"
)

type ExperienceHandler interface {
	// Browse returns the employee-facing catalogue
	Browse(w http.ResponseWriter, r *http.Request)
}

type experienceHandlerImpl struct {
	experienceService experience.ExperienceService
}

func NewExperienceHandler(experienceService experience.ExperienceService) ExperienceHandler {
	return &experienceHandlerImpl{experienceService: experienceService}
}

// Browse handles GET /experiences
func (h *experienceHandlerImpl) Browse(w http.ResponseWriter, r *http.Request) {
	companyID, err := jwt.CompanyID(r.Context())
	if err != nil {
		response.Unauthorized(w, "company_id not found in token")
		return
	}

	filter := experience.BrowseFilter{
		Search:     r.URL.Query().Get("search"),
		CategoryID: r.URL.Query().Get("category_id"),
		CityID:     r.URL.Query().Get("city_id"),
	}

	result, err := h.experienceService.Browse(r.Context(), companyID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
