package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/feedback"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/database"
)

type feedbackCandidateRepositoryImpl struct {
	db *database.DB
}

func NewFeedbackCandidateRepository(db *database.DB) feedback.CandidateRepository {
	return &feedbackCandidateRepositoryImpl{db: db}
}

// CandidatesEndedBetween implements feedback.CandidateRepository.
func (r *feedbackCandidateRepositoryImpl) CandidatesEndedBetween(ctx context.Context, from, to time.Time) ([]feedback.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.user_id, p.email, p.first_name,
			e.title, e.association_name, d.end_datetime
		FROM bookings b
		JOIN experience_dates d ON b.experience_date_id = d.id
		JOIN experiences e ON d.experience_id = e.id
		JOIN profiles p ON p.id = b.user_id
		WHERE b.status = 'confirmed'
		AND d.end_datetime >= $1 AND d.end_datetime <= $2
		ORDER BY d.end_datetime ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback candidates: %w", err)
	}
	defer rows.Close()

	var candidates []feedback.Candidate
	for rows.Next() {
		var c feedback.Candidate
		err := rows.Scan(
			&c.BookingID,
			&c.UserID,
			&c.Email,
			&c.FirstName,
			&c.ExperienceTitle,
			&c.AssociationName,
			&c.EndDatetime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return candidates, nil
}
