package feedback

import "errors"

var (
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrAlreadyReviewed      = errors.New("booking already has a review")
	ErrEventNotEnded        = errors.New("cannot review an event that has not ended")
	ErrBookingNotReviewable = errors.New("only confirmed bookings can be reviewed")
)
