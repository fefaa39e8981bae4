package booking

import "context"

// BookingService defines the interface for booking operations
type BookingService interface {
	// Create books a spot on a future date for the user. Fails when the
	// date has already started, is full, or the user already holds a
	// confirmed booking on it.
	Create(ctx context.Context, userID string, req CreateBookingRequest) (Booking, error)

	// Cancel marks the user's own confirmed booking as cancelled. Not
	// allowed once the event has started.
	Cancel(ctx context.Context, userID, bookingID string) error

	// ListMine returns the user's bookings, future events first.
	ListMine(ctx context.Context, userID string) ([]BookingDetail, error)
}
