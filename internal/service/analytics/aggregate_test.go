package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/analytics"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/employee"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func testEmployee(id, email string, first, last *string) employee.Employee {
	return employee.Employee{
		ID:        id,
		CompanyID: "company-1",
		FirstName: first,
		LastName:  last,
		Email:     email,
		Role:      employee.RoleEmployee,
	}
}

func TestBuildEmployeeStats_SeedsEveryRosterMember(t *testing.T) {
	roster := []employee.Employee{
		testEmployee("u1", "anna@acme.it", strPtr("Anna"), strPtr("Bianchi")),
		testEmployee("u2", "luca@acme.it", strPtr("Luca"), strPtr("Rossi")),
	}

	stats := BuildEmployeeStats(roster, nil, testNow)

	require.Len(t, stats, 2)
	assert.Equal(t, "u1", stats[0].ID)
	assert.Equal(t, 0, stats[0].TotalExperiences)
	assert.Equal(t, 0.0, stats[0].TotalHours)
	assert.Nil(t, stats[0].LastParticipation)
}

func TestBuildEmployeeStats_Aggregation(t *testing.T) {
	roster := []employee.Employee{
		testEmployee("u1", "anna@acme.it", strPtr("Anna"), strPtr("Bianchi")),
	}
	older := testNow.AddDate(0, -1, 0)
	newer := testNow.AddDate(0, 0, -2)
	rows := []analytics.ParticipationRow{
		{BookingID: "b1", UserID: "u1", StartDatetime: older, VolunteerHours: floatPtr(4)},
		{BookingID: "b2", UserID: "u1", StartDatetime: newer, VolunteerHours: floatPtr(2.5)},
	}

	stats := BuildEmployeeStats(roster, rows, testNow)

	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].TotalExperiences)
	assert.Equal(t, 6.5, stats[0].TotalHours)
	require.NotNil(t, stats[0].LastParticipation)
	assert.True(t, stats[0].LastParticipation.Equal(newer))
}

func TestBuildEmployeeStats_SkipsFutureBookings(t *testing.T) {
	roster := []employee.Employee{
		testEmployee("u1", "anna@acme.it", nil, nil),
	}
	rows := []analytics.ParticipationRow{
		{BookingID: "b1", UserID: "u1", StartDatetime: testNow.Add(time.Hour), VolunteerHours: floatPtr(4)},
	}

	stats := BuildEmployeeStats(roster, rows, testNow)

	require.Len(t, stats, 1)
	assert.Equal(t, 0, stats[0].TotalExperiences)
	assert.Equal(t, 0.0, stats[0].TotalHours)
	assert.Nil(t, stats[0].LastParticipation)
}

func TestBuildEmployeeStats_NilHoursCountAsZero(t *testing.T) {
	roster := []employee.Employee{
		testEmployee("u1", "anna@acme.it", nil, nil),
	}
	rows := []analytics.ParticipationRow{
		{BookingID: "b1", UserID: "u1", StartDatetime: testNow.AddDate(0, 0, -1), VolunteerHours: nil},
		{BookingID: "b2", UserID: "u1", StartDatetime: testNow.AddDate(0, 0, -3), VolunteerHours: floatPtr(3)},
	}

	stats := BuildEmployeeStats(roster, rows, testNow)

	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].TotalExperiences)
	assert.Equal(t, 3.0, stats[0].TotalHours)
}

func TestBuildEmployeeStats_IgnoresUnknownUsers(t *testing.T) {
	roster := []employee.Employee{
		testEmployee("u1", "anna@acme.it", nil, nil),
	}
	rows := []analytics.ParticipationRow{
		{BookingID: "b1", UserID: "ghost", StartDatetime: testNow.AddDate(0, 0, -1), VolunteerHours: floatPtr(4)},
	}

	stats := BuildEmployeeStats(roster, rows, testNow)

	require.Len(t, stats, 1)
	assert.Equal(t, 0, stats[0].TotalExperiences)
}

func TestMonthlyTrend_ThreeMonthsOldestFirst(t *testing.T) {
	rows := []analytics.ParticipationRow{
		{BookingID: "b1", UserID: "u1", StartDatetime: time.Date(2025, 4, 10, 10, 0, 0, 0, time.UTC)},
		{BookingID: "b2", UserID: "u1", StartDatetime: time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)},
		{BookingID: "b3", UserID: "u2", StartDatetime: time.Date(2025, 5, 25, 10, 0, 0, 0, time.UTC)},
		{BookingID: "b4", UserID: "u1", StartDatetime: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
	}

	trend := MonthlyTrend(rows, testNow)

	require.Len(t, trend, 3)
	assert.Equal(t, analytics.MonthlyTrendPoint{Month: "apr", Count: 1}, trend[0])
	assert.Equal(t, analytics.MonthlyTrendPoint{Month: "mag", Count: 2}, trend[1])
	assert.Equal(t, analytics.MonthlyTrendPoint{Month: "giu", Count: 1}, trend[2])
}

func TestMonthlyTrend_CurrentMonthExcludesFutureEvents(t *testing.T) {
	rows := []analytics.ParticipationRow{
		{BookingID: "b1", UserID: "u1", StartDatetime: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)},
		{BookingID: "b2", UserID: "u1", StartDatetime: time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)}, // after now
	}

	trend := MonthlyTrend(rows, testNow)

	require.Len(t, trend, 3)
	assert.Equal(t, 1, trend[2].Count)
}

func TestMonthlyTrend_YearBoundary(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	rows := []analytics.ParticipationRow{
		{BookingID: "b1", UserID: "u1", StartDatetime: time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC)},
		{BookingID: "b2", UserID: "u1", StartDatetime: time.Date(2024, 12, 5, 10, 0, 0, 0, time.UTC)},
	}

	trend := MonthlyTrend(rows, now)

	require.Len(t, trend, 3)
	assert.Equal(t, "nov", trend[0].Month)
	assert.Equal(t, 1, trend[0].Count)
	assert.Equal(t, "dic", trend[1].Month)
	assert.Equal(t, 1, trend[1].Count)
	assert.Equal(t, "gen", trend[2].Month)
	assert.Equal(t, 0, trend[2].Count)
}

func TestBuildOverview_Cards(t *testing.T) {
	roster := []employee.Employee{
		testEmployee("u1", "anna@acme.it", strPtr("Anna"), strPtr("Bianchi")),
		testEmployee("u2", "luca@acme.it", strPtr("Luca"), strPtr("Rossi")),
		testEmployee("u3", "gaia@acme.it", nil, nil),
	}
	stats := []analytics.EmployeeStats{
		{ID: "u1", Email: "anna@acme.it", TotalExperiences: 3, TotalHours: 10},
		{ID: "u2", Email: "luca@acme.it", TotalExperiences: 1, TotalHours: 3},
		{ID: "u3", Email: "gaia@acme.it"},
	}
	trend := []analytics.MonthlyTrendPoint{
		{Month: "apr", Count: 1}, {Month: "mag", Count: 2}, {Month: "giu", Count: 3},
	}

	overview := BuildOverview(roster, stats, trend)

	assert.Equal(t, 3, overview.TotalEmployees)
	assert.Equal(t, 2, overview.ActiveEmployees)
	assert.Equal(t, 67, overview.ActivePercentage)
	assert.Equal(t, 6.5, overview.AvgHoursPerActive)
	assert.Equal(t, 1, overview.NoParticipation)
	assert.Equal(t, "up", overview.TrendDirection)
}

func TestBuildOverview_TrendDirection(t *testing.T) {
	cases := []struct {
		name     string
		current  int
		previous int
		want     string
	}{
		{"growing", 5, 3, "up"},
		{"flat", 3, 3, "up"},
		{"shrinking", 2, 3, "down"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			trend := []analytics.MonthlyTrendPoint{
				{Month: "apr", Count: 0},
				{Month: "mag", Count: c.previous},
				{Month: "giu", Count: c.current},
			}
			overview := BuildOverview(nil, nil, trend)
			assert.Equal(t, c.want, overview.TrendDirection)
		})
	}
}

func TestBuildOverview_EmptyRoster(t *testing.T) {
	overview := BuildOverview(nil, nil, []analytics.MonthlyTrendPoint{})

	assert.Equal(t, 0, overview.TotalEmployees)
	assert.Equal(t, 0, overview.ActivePercentage)
	assert.Equal(t, 0.0, overview.AvgHoursPerActive)
	assert.Empty(t, overview.TopPerformers)
}

func TestTopPerformers_OrderingAndLimit(t *testing.T) {
	roster := make([]employee.Employee, 0, 7)
	stats := make([]analytics.EmployeeStats, 0, 7)
	for _, s := range []struct {
		id    string
		count int
		hours float64
	}{
		{"u1", 2, 8},
		{"u2", 5, 10},
		{"u3", 0, 0},
		{"u4", 5, 12},
		{"u5", 1, 1},
		{"u6", 3, 6},
		{"u7", 4, 9},
	} {
		email := s.id + "@acme.it"
		roster = append(roster, testEmployee(s.id, email, nil, nil))
		stats = append(stats, analytics.EmployeeStats{
			ID: s.id, Email: email, TotalExperiences: s.count, TotalHours: s.hours,
		})
	}

	overview := BuildOverview(roster, stats, nil)

	require.Len(t, overview.TopPerformers, 5)
	// count desc, hours break ties, inactive u3 excluded
	assert.Equal(t, "u4", overview.TopPerformers[0].ID)
	assert.Equal(t, "u2", overview.TopPerformers[1].ID)
	assert.Equal(t, "u7", overview.TopPerformers[2].ID)
	assert.Equal(t, "u6", overview.TopPerformers[3].ID)
	assert.Equal(t, "u1", overview.TopPerformers[4].ID)
}

func TestTopPerformers_DisplayNameFallsBackToEmailLocalPart(t *testing.T) {
	roster := []employee.Employee{
		testEmployee("u1", "anna.bianchi@acme.it", nil, nil),
	}
	stats := []analytics.EmployeeStats{
		{ID: "u1", Email: "anna.bianchi@acme.it", TotalExperiences: 1, TotalHours: 2},
	}

	overview := BuildOverview(roster, stats, nil)

	require.Len(t, overview.TopPerformers, 1)
	assert.Equal(t, "anna.bianchi", overview.TopPerformers[0].DisplayName)
}

func publishedExperience(id string, dates ...experience.ExperienceDate) experience.Experience {
	return experience.Experience{ID: id, Title: "Exp " + id, Status: experience.StatusPublished, Dates: dates}
}

func dateWithBookings(start time.Time, max, confirmed int) experience.ExperienceDate {
	bookings := make([]experience.DateBooking, 0, confirmed)
	for i := 0; i < confirmed; i++ {
		bookings = append(bookings, experience.DateBooking{Status: "confirmed"})
	}
	return experience.ExperienceDate{
		StartDatetime:   start,
		EndDatetime:     start.Add(3 * time.Hour),
		MaxParticipants: max,
		Bookings:        bookings,
	}
}

func TestComputeExperienceMetrics(t *testing.T) {
	future := testNow.Add(48 * time.Hour)
	past := testNow.Add(-48 * time.Hour)

	experiences := []experience.Experience{
		publishedExperience("e1",
			dateWithBookings(future, 10, 5), // 50% fill
			dateWithBookings(past, 10, 8),   // past, fills participations only
		),
		publishedExperience("e2",
			dateWithBookings(future, 4, 4), // 100% fill
		),
		{ID: "e3", Title: "Draft", Status: experience.StatusDraft},
	}

	metrics := ComputeExperienceMetrics(experiences, testNow)

	assert.Equal(t, 2, metrics.ActiveExperiences)
	assert.Equal(t, 2, metrics.FutureEvents)
	assert.Equal(t, 17, metrics.TotalParticipations)
	assert.Equal(t, 75, metrics.AverageFillRate)
}

func TestComputeExperienceMetrics_ZeroCapacityExcludedFromFillRate(t *testing.T) {
	future := testNow.Add(24 * time.Hour)

	experiences := []experience.Experience{
		publishedExperience("e1",
			dateWithBookings(future, 0, 3),  // counted as future, not in fill rate
			dateWithBookings(future, 10, 5), // 50% fill
		),
	}

	metrics := ComputeExperienceMetrics(experiences, testNow)

	assert.Equal(t, 2, metrics.FutureEvents)
	assert.Equal(t, 50, metrics.AverageFillRate)
}

func TestComputeExperienceMetrics_Empty(t *testing.T) {
	metrics := ComputeExperienceMetrics(nil, testNow)

	assert.Equal(t, 0, metrics.ActiveExperiences)
	assert.Equal(t, 0, metrics.FutureEvents)
	assert.Equal(t, 0, metrics.TotalParticipations)
	assert.Equal(t, 0, metrics.AverageFillRate)
}
