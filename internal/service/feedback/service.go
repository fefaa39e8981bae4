package feedback

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bravoapp/volunteering-backend-go/internal/config"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/booking"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/feedback"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/email"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/validator"
)

type FeedbackServiceImpl struct {
	reviewRepo     feedback.ReviewRepository
	emailLogRepo   feedback.EmailLogRepository
	candidateRepo  feedback.CandidateRepository
	bookingRepo    booking.BookingRepository
	experienceRepo experience.ExperienceRepository
	emailSvc       email.EmailService
	cfg            config.FeedbackConfig
}

func NewFeedbackService(
	reviewRepo feedback.ReviewRepository,
	emailLogRepo feedback.EmailLogRepository,
	candidateRepo feedback.CandidateRepository,
	bookingRepo booking.BookingRepository,
	experienceRepo experience.ExperienceRepository,
	emailSvc email.EmailService,
	cfg config.FeedbackConfig,
) feedback.FeedbackService {
	return &FeedbackServiceImpl{
		reviewRepo:     reviewRepo,
		emailLogRepo:   emailLogRepo,
		candidateRepo:  candidateRepo,
		bookingRepo:    bookingRepo,
		experienceRepo: experienceRepo,
		emailSvc:       emailSvc,
		cfg:            cfg,
	}
}

// CreateReview implements feedback.FeedbackService.
func (s *FeedbackServiceImpl) CreateReview(ctx context.Context, userID, bookingID string, req feedback.CreateReviewRequest) (feedback.Review, error) {
	if !validator.IsValidRating(req.Rating) {
		return feedback.Review{}, feedback.ErrInvalidRating
	}

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return feedback.Review{}, err
	}
	if b.UserID != userID {
		return feedback.Review{}, booking.ErrNotBookingOwner
	}
	if b.Status != booking.StatusConfirmed {
		return feedback.Review{}, feedback.ErrBookingNotReviewable
	}

	date, err := s.experienceRepo.GetDateByID(ctx, b.ExperienceDateID)
	if err != nil {
		return feedback.Review{}, err
	}
	if date.EndDatetime.After(time.Now()) {
		return feedback.Review{}, feedback.ErrEventNotEnded
	}

	exists, err := s.reviewRepo.ExistsByBookingID(ctx, bookingID)
	if err != nil {
		return feedback.Review{}, err
	}
	if exists {
		return feedback.Review{}, feedback.ErrAlreadyReviewed
	}

	return s.reviewRepo.Create(ctx, feedback.Review{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
}

// RunFeedbackRequests implements feedback.FeedbackService.
//
// Candidates are confirmed bookings whose event ended between WindowFar and
// WindowNear ago. A booking is skipped when a feedback email was already
// logged for it, whatever the send outcome, or when a review already exists.
// Sends happen one at a time; a failed send is logged and does not stop the
// run.
func (s *FeedbackServiceImpl) RunFeedbackRequests(ctx context.Context) (feedback.RunResult, error) {
	now := time.Now()
	from := now.Add(-s.cfg.WindowFar)
	to := now.Add(-s.cfg.WindowNear)

	candidates, err := s.candidateRepo.CandidatesEndedBetween(ctx, from, to)
	if err != nil {
		return feedback.RunResult{}, err
	}

	result := feedback.RunResult{Total: len(candidates)}
	if len(candidates) == 0 {
		return result, nil
	}

	bookingIDs := make([]string, 0, len(candidates))
	for _, c := range candidates {
		bookingIDs = append(bookingIDs, c.BookingID)
	}

	logged, err := s.emailLogRepo.LoggedBookingIDs(ctx, bookingIDs, feedback.EmailTypeFeedbackRequest)
	if err != nil {
		return feedback.RunResult{}, err
	}
	reviewed, err := s.reviewRepo.ReviewedBookingIDs(ctx, bookingIDs)
	if err != nil {
		return feedback.RunResult{}, err
	}

	for _, c := range candidates {
		if logged[c.BookingID] || reviewed[c.BookingID] {
			result.Skipped++
			continue
		}

		status := s.sendOne(c)
		if status == feedback.SendStatusFailed {
			result.Failed++
		} else {
			result.Sent++
		}

		logErr := s.emailLogRepo.Create(ctx, feedback.EmailLog{
			ID:        uuid.NewString(),
			BookingID: c.BookingID,
			EmailType: feedback.EmailTypeFeedbackRequest,
			Status:    status,
		})
		if logErr != nil {
			slog.Error("Failed to record email log", "booking_id", c.BookingID, "error", logErr)
		}
	}

	return result, nil
}

func (s *FeedbackServiceImpl) sendOne(c feedback.Candidate) feedback.SendStatus {
	if !s.emailSvc.Enabled() {
		slog.Info("SMTP disabled, feedback request simulated", "booking_id", c.BookingID, "to", c.Email)
		return feedback.SendStatusSimulated
	}

	var firstName, associationName string
	if c.FirstName != nil {
		firstName = *c.FirstName
	}
	if c.AssociationName != nil {
		associationName = *c.AssociationName
	}

	if err := s.emailSvc.SendFeedbackRequest(c.Email, firstName, c.ExperienceTitle, associationName); err != nil {
		slog.Error("Failed to send feedback request", "booking_id", c.BookingID, "to", c.Email, "error", err)
		return feedback.SendStatusFailed
	}

	return feedback.SendStatusSent
}
