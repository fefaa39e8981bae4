package response

import (
	"errors"
	"net/http"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/booking"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/employee"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/feedback"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Not allowed")
	case errors.Is(err, employee.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, employee.ErrHRAccessRequired):
		Forbidden(w, "HR admin access required")
	case errors.Is(err, employee.ErrSuperAdminRequired):
		Forbidden(w, "Super admin access required")

	// Experience domain errors
	case errors.Is(err, experience.ErrExperienceNotFound):
		NotFound(w, "Experience not found")
	case errors.Is(err, experience.ErrDateNotFound):
		NotFound(w, "Experience date not found")

	// Booking domain errors
	case errors.Is(err, booking.ErrBookingNotFound):
		NotFound(w, "Booking not found")
	case errors.Is(err, booking.ErrNotBookingOwner):
		Forbidden(w, "Booking belongs to another user")
	case errors.Is(err, booking.ErrDateFull):
		Conflict(w, "No spots left on this date")
	case errors.Is(err, booking.ErrDateAlreadyBegun):
		BadRequest(w, "The event has already started", nil)
	case errors.Is(err, booking.ErrAlreadyBooked):
		Conflict(w, "Already booked this date")
	case errors.Is(err, booking.ErrAlreadyCancelled):
		Conflict(w, "Booking is already cancelled")
	case errors.Is(err, booking.ErrCancelAfterStart):
		BadRequest(w, "Cannot cancel a booking after the event started", nil)

	// Feedback domain errors
	case errors.Is(err, feedback.ErrInvalidRating):
		BadRequest(w, "Rating must be between 1 and 5", nil)
	case errors.Is(err, feedback.ErrAlreadyReviewed):
		Conflict(w, "Booking already reviewed")
	case errors.Is(err, feedback.ErrEventNotEnded):
		BadRequest(w, "The event has not ended yet", nil)
	case errors.Is(err, feedback.ErrBookingNotReviewable):
		BadRequest(w, "Only confirmed bookings can be reviewed", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
