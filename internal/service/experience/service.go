package experience

import (
	"context"
	"strings"
	"time"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
)

type ExperienceServiceImpl struct {
	experienceRepo experience.ExperienceRepository
}

func NewExperienceService(experienceRepo experience.ExperienceRepository) experience.ExperienceService {
	return &ExperienceServiceImpl{experienceRepo: experienceRepo}
}

// Browse implements experience.ExperienceService.
func (s *ExperienceServiceImpl) Browse(ctx context.Context, companyID string, filter experience.BrowseFilter) ([]experience.BrowseExperience, error) {
	experiences, err := s.experienceRepo.ListPublishedByCompanyID(ctx, companyID, time.Now())
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	filtered := make([]experience.BrowseExperience, 0, len(experiences))
	for _, exp := range experiences {
		if search != "" && !strings.Contains(strings.ToLower(exp.Title), search) {
			continue
		}
		if filter.CategoryID != "" && (exp.CategoryID == nil || *exp.CategoryID != filter.CategoryID) {
			continue
		}
		if filter.CityID != "" && (exp.CityID == nil || *exp.CityID != filter.CityID) {
			continue
		}
		filtered = append(filtered, exp)
	}

	return filtered, nil
}
