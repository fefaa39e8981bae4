package http

import (
	"net/http"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/master/category"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/master/city"
	"github.com/bravoapp/volunteering-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	ListCategories(w http.ResponseWriter, r *http.Request)
	ListCities(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	categoryService category.CategoryService
	cityService     city.CityService
}

func NewMasterHandler(categoryService category.CategoryService, cityService city.CityService) MasterHandler {
	return &masterHandlerImpl{
		categoryService: categoryService,
		cityService:     cityService,
	}
}

// ListCategories handles GET /master/categories
func (h *masterHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, categories)
}

// ListCities handles GET /master/cities
func (h *masterHandlerImpl) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.cityService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cities)
}
