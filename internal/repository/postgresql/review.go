package postgresql

import (
	"context"
	"fmt"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/feedback"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/database"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) feedback.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

// Create implements feedback.ReviewRepository.
func (r *reviewRepositoryImpl) Create(ctx context.Context, review feedback.Review) (feedback.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO experience_reviews (id, booking_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, booking_id, user_id, rating, comment, created_at
	`

	var result feedback.Review
	err := q.QueryRow(ctx, query, review.ID, review.BookingID, review.UserID, review.Rating, review.Comment).Scan(
		&result.ID,
		&result.BookingID,
		&result.UserID,
		&result.Rating,
		&result.Comment,
		&result.CreatedAt,
	)
	if err != nil {
		return feedback.Review{}, fmt.Errorf("failed to create review: %w", err)
	}

	return result, nil
}

// ExistsByBookingID implements feedback.ReviewRepository.
func (r *reviewRepositoryImpl) ExistsByBookingID(ctx context.Context, bookingID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM experience_reviews WHERE booking_id = $1)`, bookingID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}

	return exists, nil
}

// ReviewedBookingIDs implements feedback.ReviewRepository.
func (r *reviewRepositoryImpl) ReviewedBookingIDs(ctx context.Context, bookingIDs []string) (map[string]bool, error) {
	if len(bookingIDs) == 0 {
		return map[string]bool{}, nil
	}

	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT booking_id FROM experience_reviews WHERE booking_id = ANY($1)`, bookingIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	defer rows.Close()

	reviewed := make(map[string]bool)
	for rows.Next() {
		var bookingID string
		if err := rows.Scan(&bookingID); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviewed[bookingID] = true
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reviewed, nil
}
