package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/feedback"
	"github.com/bravoapp/volunteering-backend-go/internal/handler/http/response"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/jwt"
)

type FeedbackHandler interface {
	// CreateReview records a review for the caller's booking
	CreateReview(w http.ResponseWriter, r *http.Request)
	// RunFeedbackJob triggers the feedback-request job immediately
	RunFeedbackJob(w http.ResponseWriter, r *http.Request)
}

type feedbackHandlerImpl struct {
	feedbackService feedback.FeedbackService
}

func NewFeedbackHandler(feedbackService feedback.FeedbackService) FeedbackHandler {
	return &feedbackHandlerImpl{feedbackService: feedbackService}
}

// CreateReview handles POST /bookings/{bookingID}/review
func (h *feedbackHandlerImpl) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, err := jwt.UserID(r.Context())
	if err != nil {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	bookingID := chi.URLParam(r, "bookingID")

	var req feedback.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.feedbackService.CreateReview(r.Context(), userID, bookingID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Review saved", review)
}

// RunFeedbackJob handles POST /jobs/feedback-request
func (h *feedbackHandlerImpl) RunFeedbackJob(w http.ResponseWriter, r *http.Request) {
	result, err := h.feedbackService.RunFeedbackRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Feedback request job completed", result)
}
