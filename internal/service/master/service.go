package master

import (
	"context"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/master/category"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/master/city"
)

type CategoryServiceImpl struct {
	categoryRepo category.CategoryRepository
}

func NewCategoryService(categoryRepo category.CategoryRepository) category.CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

// List implements category.CategoryService.
func (s *CategoryServiceImpl) List(ctx context.Context) ([]category.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []category.Category{}
	}
	return categories, nil
}

type CityServiceImpl struct {
	cityRepo city.CityRepository
}

func NewCityService(cityRepo city.CityRepository) city.CityService {
	return &CityServiceImpl{cityRepo: cityRepo}
}

// List implements city.CityService.
func (s *CityServiceImpl) List(ctx context.Context) ([]city.City, error) {
	cities, err := s.cityRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []city.City{}
	}
	return cities, nil
}
