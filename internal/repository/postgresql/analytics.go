package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/analytics"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/database"
)

type analyticsRepositoryImpl struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.AnalyticsRepository {
	return &analyticsRepositoryImpl{db: db}
}

// ConfirmedParticipations implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) ConfirmedParticipations(ctx context.Context, userIDs []string) ([]analytics.ParticipationRow, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.user_id, d.start_datetime, d.volunteer_hours
		FROM bookings b
		JOIN experience_dates d ON b.experience_date_id = d.id
		WHERE b.user_id = ANY($1)
		AND b.status = 'confirmed'
	`

	rows, err := q.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get confirmed participations: %w", err)
	}
	defer rows.Close()

	var participations []analytics.ParticipationRow
	for rows.Next() {
		var p analytics.ParticipationRow
		err := rows.Scan(
			&p.BookingID,
			&p.UserID,
			&p.StartDatetime,
			&p.VolunteerHours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		participations = append(participations, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return participations, nil
}

// CompanyParticipations implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) CompanyParticipations(ctx context.Context, companyID string) ([]analytics.ParticipationRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.user_id, d.start_datetime, d.volunteer_hours
		FROM bookings b
		JOIN experience_dates d ON b.experience_date_id = d.id
		JOIN profiles p ON p.id = b.user_id
		WHERE p.company_id = $1
		AND p.role IN ('employee', 'hr_admin')
		AND b.status = 'confirmed'
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company participations: %w", err)
	}
	defer rows.Close()

	var participations []analytics.ParticipationRow
	for rows.Next() {
		var p analytics.ParticipationRow
		err := rows.Scan(
			&p.BookingID,
			&p.UserID,
			&p.StartDatetime,
			&p.VolunteerHours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		participations = append(participations, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return participations, nil
}

// EmployeeParticipations implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) EmployeeParticipations(ctx context.Context, userID string, now time.Time) ([]analytics.Participation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, e.title, e.association_name, d.start_datetime, d.volunteer_hours
		FROM bookings b
		JOIN experience_dates d ON b.experience_date_id = d.id
		JOIN experiences e ON d.experience_id = e.id
		WHERE b.user_id = $1
		AND b.status = 'confirmed'
		AND d.start_datetime <= $2
		ORDER BY d.start_datetime DESC
	`

	rows, err := q.Query(ctx, query, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee participations: %w", err)
	}
	defer rows.Close()

	var participations []analytics.Participation
	for rows.Next() {
		var p analytics.Participation
		err := rows.Scan(
			&p.BookingID,
			&p.ExperienceTitle,
			&p.AssociationName,
			&p.StartDatetime,
			&p.VolunteerHours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		participations = append(participations, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return participations, nil
}
