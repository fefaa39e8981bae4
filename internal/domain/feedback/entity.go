package feedback

import "time"

// Review is an employee's post-event feedback, one per booking. A stored
// review also suppresses feedback-request emails for that booking.
type Review struct {
	ID        string
	BookingID string
	UserID    string
	Rating    int
	Comment   *string
	CreatedAt time.Time
}

// EmailLog is the durable dedup record for outbound transactional email,
// one row per (booking, email type).
type EmailLog struct {
	ID        string
	BookingID string
	EmailType string
	Status    SendStatus
	CreatedAt time.Time
}

const EmailTypeFeedbackRequest = "feedback_request"

type SendStatus string

const (
	SendStatusSent      SendStatus = "sent"
	SendStatusFailed    SendStatus = "failed"
	SendStatusSimulated SendStatus = "simulated"
)
