package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/booking"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/database"
)

type BookingServiceImpl struct {
	bookingRepo    booking.BookingRepository
	experienceRepo experience.ExperienceRepository
	txManager      database.TxManager
}

func NewBookingService(
	bookingRepo booking.BookingRepository,
	experienceRepo experience.ExperienceRepository,
	txManager database.TxManager,
) booking.BookingService {
	return &BookingServiceImpl{
		bookingRepo:    bookingRepo,
		experienceRepo: experienceRepo,
		txManager:      txManager,
	}
}

// Create implements booking.BookingService. The capacity check and the insert
// run in one transaction so two concurrent bookings cannot both take the last
// spot.
func (s *BookingServiceImpl) Create(ctx context.Context, userID string, req booking.CreateBookingRequest) (booking.Booking, error) {
	var created booking.Booking

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		date, err := s.experienceRepo.GetDateByID(ctx, req.ExperienceDateID)
		if err != nil {
			return err
		}

		if !date.StartDatetime.After(time.Now()) {
			return booking.ErrDateAlreadyBegun
		}

		exists, err := s.bookingRepo.ExistsConfirmed(ctx, userID, date.ID)
		if err != nil {
			return err
		}
		if exists {
			return booking.ErrAlreadyBooked
		}

		if date.MaxParticipants > 0 {
			confirmed, err := s.bookingRepo.CountConfirmedByDateID(ctx, date.ID)
			if err != nil {
				return err
			}
			if confirmed >= date.MaxParticipants {
				return booking.ErrDateFull
			}
		}

		created, err = s.bookingRepo.Create(ctx, booking.Booking{
			ID:               uuid.NewString(),
			UserID:           userID,
			ExperienceDateID: date.ID,
			Status:           booking.StatusConfirmed,
		})
		return err
	})
	if err != nil {
		return booking.Booking{}, err
	}

	return created, nil
}

// Cancel implements booking.BookingService.
func (s *BookingServiceImpl) Cancel(ctx context.Context, userID, bookingID string) error {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return booking.ErrNotBookingOwner
	}
	if b.Status == booking.StatusCancelled {
		return booking.ErrAlreadyCancelled
	}

	date, err := s.experienceRepo.GetDateByID(ctx, b.ExperienceDateID)
	if err != nil {
		return err
	}
	if !date.StartDatetime.After(time.Now()) {
		return booking.ErrCancelAfterStart
	}

	return s.bookingRepo.UpdateStatus(ctx, b.ID, booking.StatusCancelled)
}

// ListMine implements booking.BookingService.
func (s *BookingServiceImpl) ListMine(ctx context.Context, userID string) ([]booking.BookingDetail, error) {
	details, err := s.bookingRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		details = []booking.BookingDetail{}
	}
	return details, nil
}
