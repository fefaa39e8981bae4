package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/booking"
	"github.com/bravoapp/volunteering-backend-go/internal/domain/experience"
)

type fakeBookingRepo struct {
	bookings map[string]booking.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]booking.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	b.CreatedAt = time.Now()
	f.bookings[b.ID] = b
	return b, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (booking.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return booking.Booking{}, booking.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status booking.Status) error {
	b, ok := f.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}
	b.Status = status
	f.bookings[id] = b
	return nil
}

func (f *fakeBookingRepo) ExistsConfirmed(ctx context.Context, userID, experienceDateID string) (bool, error) {
	for _, b := range f.bookings {
		if b.UserID == userID && b.ExperienceDateID == experienceDateID && b.Status == booking.StatusConfirmed {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) CountConfirmedByDateID(ctx context.Context, experienceDateID string) (int, error) {
	count := 0
	for _, b := range f.bookings {
		if b.ExperienceDateID == experienceDateID && b.Status == booking.StatusConfirmed {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) ListByUserID(ctx context.Context, userID string) ([]booking.BookingDetail, error) {
	var details []booking.BookingDetail
	for _, b := range f.bookings {
		if b.UserID == userID {
			details = append(details, booking.BookingDetail{ID: b.ID, Status: b.Status, CreatedAt: b.CreatedAt})
		}
	}
	return details, nil
}

type fakeExperienceRepo struct {
	dates map[string]experience.ExperienceDate
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{dates: make(map[string]experience.ExperienceDate)}
}

func (f *fakeExperienceRepo) ListByCompanyID(ctx context.Context, companyID string) ([]experience.Experience, error) {
	return nil, nil
}

func (f *fakeExperienceRepo) ListPublishedByCompanyID(ctx context.Context, companyID string, after time.Time) ([]experience.BrowseExperience, error) {
	return nil, nil
}

func (f *fakeExperienceRepo) GetDateByID(ctx context.Context, dateID string) (experience.ExperienceDate, error) {
	d, ok := f.dates[dateID]
	if !ok {
		return experience.ExperienceDate{}, experience.ErrDateNotFound
	}
	return d, nil
}

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func setupService() (booking.BookingService, *fakeBookingRepo, *fakeExperienceRepo) {
	bookingRepo := newFakeBookingRepo()
	experienceRepo := newFakeExperienceRepo()
	return NewBookingService(bookingRepo, experienceRepo, fakeTxManager{}), bookingRepo, experienceRepo
}

func futureDate(id string, max int) experience.ExperienceDate {
	start := time.Now().Add(48 * time.Hour)
	return experience.ExperienceDate{
		ID:              id,
		ExperienceID:    "exp-1",
		StartDatetime:   start,
		EndDatetime:     start.Add(3 * time.Hour),
		MaxParticipants: max,
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	ctx := context.Background()
	svc, _, experienceRepo := setupService()
	experienceRepo.dates["d1"] = futureDate("d1", 10)

	created, err := svc.Create(ctx, "u1", booking.CreateBookingRequest{ExperienceDateID: "d1"})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, booking.StatusConfirmed, created.Status)
}

func TestBookingService_Create_DateNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService()

	_, err := svc.Create(ctx, "u1", booking.CreateBookingRequest{ExperienceDateID: "missing"})

	assert.ErrorIs(t, err, experience.ErrDateNotFound)
}

func TestBookingService_Create_DateAlreadyBegun(t *testing.T) {
	ctx := context.Background()
	svc, _, experienceRepo := setupService()
	d := futureDate("d1", 10)
	d.StartDatetime = time.Now().Add(-time.Hour)
	experienceRepo.dates["d1"] = d

	_, err := svc.Create(ctx, "u1", booking.CreateBookingRequest{ExperienceDateID: "d1"})

	assert.ErrorIs(t, err, booking.ErrDateAlreadyBegun)
}

func TestBookingService_Create_DateFull(t *testing.T) {
	ctx := context.Background()
	svc, bookingRepo, experienceRepo := setupService()
	experienceRepo.dates["d1"] = futureDate("d1", 1)
	bookingRepo.bookings["b1"] = booking.Booking{ID: "b1", UserID: "other", ExperienceDateID: "d1", Status: booking.StatusConfirmed}

	_, err := svc.Create(ctx, "u1", booking.CreateBookingRequest{ExperienceDateID: "d1"})

	assert.ErrorIs(t, err, booking.ErrDateFull)
}

func TestBookingService_Create_CancelledBookingFreesSpot(t *testing.T) {
	ctx := context.Background()
	svc, bookingRepo, experienceRepo := setupService()
	experienceRepo.dates["d1"] = futureDate("d1", 1)
	bookingRepo.bookings["b1"] = booking.Booking{ID: "b1", UserID: "other", ExperienceDateID: "d1", Status: booking.StatusCancelled}

	_, err := svc.Create(ctx, "u1", booking.CreateBookingRequest{ExperienceDateID: "d1"})

	assert.NoError(t, err)
}

func TestBookingService_Create_AlreadyBooked(t *testing.T) {
	ctx := context.Background()
	svc, bookingRepo, experienceRepo := setupService()
	experienceRepo.dates["d1"] = futureDate("d1", 10)
	bookingRepo.bookings["b1"] = booking.Booking{ID: "b1", UserID: "u1", ExperienceDateID: "d1", Status: booking.StatusConfirmed}

	_, err := svc.Create(ctx, "u1", booking.CreateBookingRequest{ExperienceDateID: "d1"})

	assert.ErrorIs(t, err, booking.ErrAlreadyBooked)
}

func TestBookingService_Create_RebookAfterCancel(t *testing.T) {
	ctx := context.Background()
	svc, bookingRepo, experienceRepo := setupService()
	experienceRepo.dates["d1"] = futureDate("d1", 10)
	bookingRepo.bookings["b1"] = booking.Booking{ID: "b1", UserID: "u1", ExperienceDateID: "d1", Status: booking.StatusCancelled}

	created, err := svc.Create(ctx, "u1", booking.CreateBookingRequest{ExperienceDateID: "d1"})

	require.NoError(t, err)
	assert.NotEqual(t, "b1", created.ID)
}

func TestBookingService_Create_ZeroCapacityIsUnlimited(t *testing.T) {
	ctx := context.Background()
	svc, bookingRepo, experienceRepo := setupService()
	experienceRepo.dates["d1"] = futureDate("d1", 0)
	bookingRepo.bookings["b1"] = booking.Booking{ID: "b1", UserID: "other", ExperienceDateID: "d1", Status: booking.StatusConfirmed}

	_, err := svc.Create(ctx, "u1", booking.CreateBookingRequest{ExperienceDateID: "d1"})

	assert.NoError(t, err)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	ctx := context.Background()
	svc, bookingRepo, experienceRepo := setupService()
	experienceRepo.dates["d1"] = futureDate("d1", 10)
	bookingRepo.bookings["b1"] = booking.Booking{ID: "b1", UserID: "u1", ExperienceDateID: "d1", Status: booking.StatusConfirmed}

	err := svc.Cancel(ctx, "u1", "b1")

	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, bookingRepo.bookings["b1"].Status)
}

func TestBookingService_Cancel_NotOwner(t *testing.T) {
	ctx := context.Background()
	svc, bookingRepo, experienceRepo := setupService()
	experienceRepo.dates["d1"] = futureDate("d1", 10)
	bookingRepo.bookings["b1"] = booking.Booking{ID: "b1", UserID: "other", ExperienceDateID: "d1", Status: booking.StatusConfirmed}

	err := svc.Cancel(ctx, "u1", "b1")

	assert.ErrorIs(t, err, booking.ErrNotBookingOwner)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	ctx := context.Background()
	svc, bookingRepo, experienceRepo := setupService()
	experienceRepo.dates["d1"] = futureDate("d1", 10)
	bookingRepo.bookings["b1"] = booking.Booking{ID: "b1", UserID: "u1", ExperienceDateID: "d1", Status: booking.StatusCancelled}

	err := svc.Cancel(ctx, "u1", "b1")

	assert.ErrorIs(t, err, booking.ErrAlreadyCancelled)
}

func TestBookingService_Cancel_AfterStart(t *testing.T) {
	ctx := context.Background()
	svc, bookingRepo, experienceRepo := setupService()
	d := futureDate("d1", 10)
	d.StartDatetime = time.Now().Add(-time.Hour)
	experienceRepo.dates["d1"] = d
	bookingRepo.bookings["b1"] = booking.Booking{ID: "b1", UserID: "u1", ExperienceDateID: "d1", Status: booking.StatusConfirmed}

	err := svc.Cancel(ctx, "u1", "b1")

	assert.ErrorIs(t, err, booking.ErrCancelAfterStart)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService()

	err := svc.Cancel(ctx, "u1", "missing")

	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestBookingService_ListMine_EmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService()

	details, err := svc.ListMine(ctx, "u1")

	require.NoError(t, err)
	assert.NotNil(t, details)
	assert.Empty(t, details)
}
