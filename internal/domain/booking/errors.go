package booking

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotBookingOwner  = errors.New("booking belongs to another user")
	ErrDateFull         = errors.New("no spots left on this date")
	ErrDateAlreadyBegun = errors.New("the event has already started")
	ErrAlreadyBooked    = errors.New("already booked this date")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrCancelAfterStart = errors.New("cannot cancel a booking after the event started")
)
