package postgresql

import (
	"context"
	"fmt"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/feedback"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/database"
)

type emailLogRepositoryImpl struct {
	db *database.DB
}

func NewEmailLogRepository(db *database.DB) feedback.EmailLogRepository {
	return &emailLogRepositoryImpl{db: db}
}

// Create implements feedback.EmailLogRepository.
func (r *emailLogRepositoryImpl) Create(ctx context.Context, log feedback.EmailLog) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO email_logs (id, booking_id, email_type, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	if _, err := q.Exec(ctx, query, log.ID, log.BookingID, log.EmailType, log.Status); err != nil {
		return fmt.Errorf("failed to create email log: %w", err)
	}

	return nil
}

// LoggedBookingIDs implements feedback.EmailLogRepository.
func (r *emailLogRepositoryImpl) LoggedBookingIDs(ctx context.Context, bookingIDs []string, emailType string) (map[string]bool, error) {
	if len(bookingIDs) == 0 {
		return map[string]bool{}, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT booking_id FROM email_logs
		WHERE booking_id = ANY($1) AND email_type = $2
	`

	rows, err := q.Query(ctx, query, bookingIDs, emailType)
	if err != nil {
		return nil, fmt.Errorf("failed to get email logs: %w", err)
	}
	defer rows.Close()

	logged := make(map[string]bool)
	for rows.Next() {
		var bookingID string
		if err := rows.Scan(&bookingID); err != nil {
			return nil, fmt.Errorf("failed to scan email log: %w", err)
		}
		logged[bookingID] = true
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return logged, nil
}
