package postgresql

import (
	"context"
	"fmt"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/booking"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type bookingRepositoryImpl struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) booking.BookingRepository {
	return &bookingRepositoryImpl{db: db}
}

// Create implements booking.BookingRepository.
func (r *bookingRepositoryImpl) Create(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bookings (id, user_id, experience_date_id, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, experience_date_id, status, created_at
	`

	var result booking.Booking
	err := q.QueryRow(ctx, query, b.ID, b.UserID, b.ExperienceDateID, b.Status).Scan(
		&result.ID,
		&result.UserID,
		&result.ExperienceDateID,
		&result.Status,
		&result.CreatedAt,
	)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	return result, nil
}

// GetByID implements booking.BookingRepository.
func (r *bookingRepositoryImpl) GetByID(ctx context.Context, id string) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, experience_date_id, status, created_at
		FROM bookings
		WHERE id = $1
	`

	var b booking.Booking
	err := q.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.UserID,
		&b.ExperienceDateID,
		&b.Status,
		&b.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return booking.Booking{}, booking.ErrBookingNotFound
		}
		return booking.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	return b, nil
}

// UpdateStatus implements booking.BookingRepository.
func (r *bookingRepositoryImpl) UpdateStatus(ctx context.Context, id string, status booking.Status) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE bookings SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return booking.ErrBookingNotFound
	}

	return nil
}

// ExistsConfirmed implements booking.BookingRepository.
func (r *bookingRepositoryImpl) ExistsConfirmed(ctx context.Context, userID, experienceDateID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND experience_date_id = $2 AND status = 'confirmed'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, experienceDateID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check booking existence: %w", err)
	}

	return exists, nil
}

// CountConfirmedByDateID implements booking.BookingRepository.
func (r *bookingRepositoryImpl) CountConfirmedByDateID(ctx context.Context, experienceDateID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FROM bookings
		WHERE experience_date_id = $1 AND status = 'confirmed'
	`

	var count int
	if err := q.QueryRow(ctx, query, experienceDateID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}

	return count, nil
}

// ListByUserID implements booking.BookingRepository.
func (r *bookingRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]booking.BookingDetail, error) {
	q := GetQuerier(ctx, r.db)

	// Future events soonest first, then past events most recent first.
	query := `
		SELECT b.id, b.status, e.id, e.title, e.association_name,
			d.start_datetime, d.end_datetime, d.volunteer_hours, b.created_at
		FROM bookings b
		JOIN experience_dates d ON b.experience_date_id = d.id
		JOIN experiences e ON d.experience_id = e.id
		WHERE b.user_id = $1
		ORDER BY
			(d.start_datetime >= NOW()) DESC,
			CASE WHEN d.start_datetime >= NOW() THEN d.start_datetime END ASC,
			CASE WHEN d.start_datetime < NOW() THEN d.start_datetime END DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var details []booking.BookingDetail
	for rows.Next() {
		var d booking.BookingDetail
		err := rows.Scan(
			&d.ID,
			&d.Status,
			&d.ExperienceID,
			&d.ExperienceTitle,
			&d.AssociationName,
			&d.StartDatetime,
			&d.EndDatetime,
			&d.VolunteerHours,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking detail: %w", err)
		}
		details = append(details, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return details, nil
}
