package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/booking"
	"github.com/bravoapp/volunteering-backend-go/internal/handler/http/response"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/jwt"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/validator"
)

type BookingHandler interface {
	// Create books a spot on an experience date
	Create(w http.ResponseWriter, r *http.Request)
	// Cancel cancels the caller's booking
	Cancel(w http.ResponseWriter, r *http.Request)
	// ListMine returns the caller's bookings
	ListMine(w http.ResponseWriter, r *http.Request)
}

type bookingHandlerImpl struct {
	bookingService booking.BookingService
}

func NewBookingHandler(bookingService booking.BookingService) BookingHandler {
	return &bookingHandlerImpl{bookingService: bookingService}
}

// Create handles POST /bookings
func (h *bookingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := jwt.UserID(r.Context())
	if err != nil {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	var req booking.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if validator.IsEmpty(req.ExperienceDateID) {
		response.ValidationError(w, map[string]string{"experience_date_id": "is required"})
		return
	}

	created, err := h.bookingService.Create(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Booking confirmed", created)
}

// Cancel handles POST /bookings/{bookingID}/cancel
func (h *bookingHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, err := jwt.UserID(r.Context())
	if err != nil {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	bookingID := chi.URLParam(r, "bookingID")

	if err := h.bookingService.Cancel(r.Context(), userID, bookingID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Booking cancelled", nil)
}

// ListMine handles GET /bookings/my
func (h *bookingHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := jwt.UserID(r.Context())
	if err != nil {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	details, err := h.bookingService.ListMine(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}
