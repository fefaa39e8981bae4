package feedback

import "context"

// FeedbackService defines the interface for reviews and feedback requests
type FeedbackService interface {
	// CreateReview records the user's review of their own confirmed,
	// ended booking. One review per booking.
	CreateReview(ctx context.Context, userID, bookingID string, req CreateReviewRequest) (Review, error)

	// RunFeedbackRequests sends feedback-request emails for bookings whose
	// event recently ended, skipping bookings already emailed or reviewed.
	// Safe to run repeatedly.
	RunFeedbackRequests(ctx context.Context) (RunResult, error)
}
