package analytics

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/analytics"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
)

// FilterEmployees narrows the stats rows: case-insensitive substring match on
// email or either name part, and optionally only employees without any
// participation.
func FilterEmployees(stats []analytics.EmployeeStats, filter analytics.EmployeeFilter) []analytics.EmployeeStats {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]analytics.EmployeeStats, 0, len(stats))
	for _, s := range stats {
		if search != "" && !matchesEmployee(s, search) {
			continue
		}
		if filter.OnlyNoParticipation && s.TotalExperiences > 0 {
			continue
		}
		filtered = append(filtered, s)
	}

	return filtered
}

func matchesEmployee(s analytics.EmployeeStats, search string) bool {
	if strings.Contains(strings.ToLower(s.Email), search) {
		return true
	}
	if s.FirstName != nil && strings.Contains(strings.ToLower(*s.FirstName), search) {
		return true
	}
	if s.LastName != nil && strings.Contains(strings.ToLower(*s.LastName), search) {
		return true
	}
	return false
}

// SortEmployees orders the rows in place. Names compare with Italian
// collation rules; a missing last participation compares as the smallest
// value, so descending order pushes never-participated employees to the end.
// The direction flips the whole comparison, missing values included.
func SortEmployees(stats []analytics.EmployeeStats, field analytics.SortField, direction analytics.SortDirection) {
	var collator *collate.Collator
	if field == analytics.SortByName {
		collator = collate.New(language.Italian)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		cmp := compareEmployees(stats[i], stats[j], field, collator)
		if direction == analytics.SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func compareEmployees(a, b analytics.EmployeeStats, field analytics.SortField, collator *collate.Collator) int {
	switch field {
	case analytics.SortByExperiences:
		return a.TotalExperiences - b.TotalExperiences
	case analytics.SortByHours:
		switch {
		case a.TotalHours < b.TotalHours:
			return -1
		case a.TotalHours > b.TotalHours:
			return 1
		}
		return 0
	case analytics.SortByLastParticipation:
		switch {
		case a.LastParticipation == nil && b.LastParticipation == nil:
			return 0
		case a.LastParticipation == nil:
			return -1
		case b.LastParticipation == nil:
			return 1
		case a.LastParticipation.Before(*b.LastParticipation):
			return -1
		case a.LastParticipation.After(*b.LastParticipation):
			return 1
		}
		return 0
	default:
		return collator.CompareString(sortName(a), sortName(b))
	}
}

func sortName(s analytics.EmployeeStats) string {
	var first, last string
	if s.FirstName != nil {
		first = *s.FirstName
	}
	if s.LastName != nil {
		last = *s.LastName
	}
	return strings.ToLower(strings.TrimSpace(first + " " + last))
}

// FilterExperiences narrows the experience list: case-insensitive substring
// match on title, exact category and city, and, unless past events are
// requested, at least one future date. Experiences without any dates always
// pass the future-date check.
func FilterExperiences(experiences []experience.Experience, filter analytics.ExperienceFilter, now time.Time) []experience.Experience {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]experience.Experience, 0, len(experiences))
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
		if !filter.ShowPastEvents && len(exp.Dates) > 0 && !hasFutureDate(exp, now) {
			continue
		}
		filtered = append(filtered, exp)
	}

	return filtered
}

func hasFutureDate(exp experience.Experience, now time.Time) bool {
	for _, d := range exp.Dates {
		if d.StartDatetime.After(now) {
			return true
		}
	}
	return false
}
