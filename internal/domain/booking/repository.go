package booking

import "context"

type BookingRepository interface {
	Create(ctx context.Context, b Booking) (Booking, error)
	GetByID(ctx context.Context, id string) (Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// ExistsConfirmed reports whether the user already holds a confirmed
	// booking on the date.
	ExistsConfirmed(ctx context.Context, userID, experienceDateID string) (bool, error)

	// CountConfirmedByDateID counts confirmed bookings across all companies;
	// capacity is global even when an experience is shared between tenants.
	CountConfirmedByDateID(ctx context.Context, experienceDateID string) (int, error)

	// ListByUserID returns the user's bookings joined with date and
	// experience details, future events first (soonest first), then past
	// events most recent first.
	ListByUserID(ctx context.Context, userID string) ([]BookingDetail, error)
}
