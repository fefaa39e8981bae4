package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/analytics"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/employee"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
)

const topPerformersLimit = 5

// Italian short month names, January first.
var monthLabels = [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"}

// BuildEmployeeStats folds confirmed bookings into one stats row per roster
// member. Every roster member gets a row even with zero participations.
// Bookings whose event has not started yet are ignored, as are bookings of
// users outside the roster.
func BuildEmployeeStats(roster []employee.Employee, rows []analytics.ParticipationRow, now time.Time) []analytics.EmployeeStats {
	stats := make([]analytics.EmployeeStats, 0, len(roster))
	index := make(map[string]int, len(roster))

	for i, emp := range roster {
		index[emp.ID] = i
		stats = append(stats, analytics.EmployeeStats{
			ID:        emp.ID,
			FirstName: emp.FirstName,
			LastName:  emp.LastName,
			Email:     emp.Email,
		})
	}

	for _, row := range rows {
		if row.StartDatetime.After(now) {
			continue
		}
		i, ok := index[row.UserID]
		if !ok {
			continue
		}

		stats[i].TotalExperiences++
		if row.VolunteerHours != nil {
			stats[i].TotalHours += *row.VolunteerHours
		}
		if stats[i].LastParticipation == nil || row.StartDatetime.After(*stats[i].LastParticipation) {
			start := row.StartDatetime
			stats[i].LastParticipation = &start
		}
	}

	return stats
}

// MonthlyTrend counts participations in the current month and the two before
// it, oldest first. The current month only counts events already started.
func MonthlyTrend(rows []analytics.ParticipationRow, now time.Time) []analytics.MonthlyTrendPoint {
	trend := make([]analytics.MonthlyTrendPoint, 0, 3)

	for i := 2; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		nextMonth := monthStart.AddDate(0, 1, 0)

		count := 0
		for _, row := range rows {
			d := row.StartDatetime
			if d.Before(monthStart) || !d.Before(nextMonth) || d.After(now) {
				continue
			}
			count++
		}

		trend = append(trend, analytics.MonthlyTrendPoint{
			Month: monthLabels[monthStart.Month()-1],
			Count: count,
		})
	}

	return trend
}

// BuildOverview computes the HR metric cards from already-aggregated rows.
func BuildOverview(roster []employee.Employee, stats []analytics.EmployeeStats, trend []analytics.MonthlyTrendPoint) *analytics.EmployeeOverview {
	overview := &analytics.EmployeeOverview{
		TotalEmployees: len(stats),
		MonthlyTrend:   trend,
		TopPerformers:  []analytics.TopPerformer{},
	}

	var totalHours float64
	for _, s := range stats {
		if s.TotalExperiences > 0 {
			overview.ActiveEmployees++
			totalHours += s.TotalHours
		} else {
			overview.NoParticipation++
		}
	}

	if overview.TotalEmployees > 0 {
		overview.ActivePercentage = int(math.Round(float64(overview.ActiveEmployees) / float64(overview.TotalEmployees) * 100))
	}
	if overview.ActiveEmployees > 0 {
		overview.AvgHoursPerActive = math.Round(totalHours/float64(overview.ActiveEmployees)*10) / 10
	}

	overview.TrendDirection = "up"
	if len(trend) >= 2 && trend[len(trend)-1].Count < trend[len(trend)-2].Count {
		overview.TrendDirection = "down"
	}

	overview.TopPerformers = topPerformers(roster, stats)

	return overview
}

// topPerformers returns up to five active employees ordered by experience
// count, then total hours.
func topPerformers(roster []employee.Employee, stats []analytics.EmployeeStats) []analytics.TopPerformer {
	byID := make(map[string]employee.Employee, len(roster))
	for _, emp := range roster {
		byID[emp.ID] = emp
	}

	active := make([]analytics.EmployeeStats, 0, len(stats))
	for _, s := range stats {
		if s.TotalExperiences > 0 {
			active = append(active, s)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].TotalExperiences != active[j].TotalExperiences {
			return active[i].TotalExperiences > active[j].TotalExperiences
		}
		return active[i].TotalHours > active[j].TotalHours
	})

	if len(active) > topPerformersLimit {
		active = active[:topPerformersLimit]
	}

	performers := make([]analytics.TopPerformer, 0, len(active))
	for _, s := range active {
		performers = append(performers, analytics.TopPerformer{
			ID:               s.ID,
			DisplayName:      byID[s.ID].DisplayName(),
			TotalExperiences: s.TotalExperiences,
			TotalHours:       s.TotalHours,
		})
	}

	return performers
}

// ComputeExperienceMetrics computes the fleet cards over the unfiltered
// experience list. The fill rate averages only future dates with a positive
// capacity; zero-capacity dates stay out of the denominator.
func ComputeExperienceMetrics(experiences []experience.Experience, now time.Time) *analytics.ExperienceMetrics {
	metrics := &analytics.ExperienceMetrics{}

	var fillSum float64
	eligible := 0

	for _, exp := range experiences {
		if exp.Status == experience.StatusPublished {
			metrics.ActiveExperiences++
		}
		for _, d := range exp.Dates {
			confirmed := d.ConfirmedCount()
			metrics.TotalParticipations += confirmed

			if d.StartDatetime.After(now) {
				metrics.FutureEvents++
				if d.MaxParticipants > 0 {
					fillSum += float64(confirmed) / float64(d.MaxParticipants) * 100
					eligible++
				}
			}
		}
	}

	if eligible > 0 {
		metrics.AverageFillRate = int(math.Round(fillSum / float64(eligible)))
	}

	return metrics
}
