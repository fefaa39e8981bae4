package feedback

import (
	"context"
	"time"
)

type ReviewRepository interface {
	Create(ctx context.Context, review Review) (Review, error)
	ExistsByBookingID(ctx context.Context, bookingID string) (bool, error)
	// ReviewedBookingIDs narrows the given set to bookings that already
	// have a review.
	ReviewedBookingIDs(ctx context.Context, bookingIDs []string) (map[string]bool, error)
}

type EmailLogRepository interface {
	Create(ctx context.Context, log EmailLog) error
	// LoggedBookingIDs narrows the given set to bookings that already have
	// a log row of the given email type, whatever its send status.
	LoggedBookingIDs(ctx context.Context, bookingIDs []string, emailType string) (map[string]bool, error)
}

// CandidateRepository finds bookings eligible for a feedback request.
type CandidateRepository interface {
	// CandidatesEndedBetween returns confirmed bookings whose event end
	// time falls within [from, to], joined with recipient and experience.
	CandidatesEndedBetween(ctx context.Context, from, to time.Time) ([]Candidate, error)
}
