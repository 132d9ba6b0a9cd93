package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fieldmax/booking-service/internal/domain"
	bookingRepo "github.com/fieldmax/booking-service/internal/infra/storage/booking"
	"github.com/fieldmax/booking-service/internal/service/bookings/models"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64, page domain.PageRequest) (*domain.BookingPage, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingPage), args.Error(1)
}

func (m *MockBookingRepository) ListByVenue(ctx context.Context, filter domain.VenueBookingsFilter, page domain.PageRequest) (*domain.BookingPage, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingPage), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, id int64, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

type MockFieldRepository struct {
	mock.Mock
}

func (m *MockFieldRepository) GetByID(ctx context.Context, id int64) (*domain.Field, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Field), args.Error(1)
}

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)

func setupService() (*Service, *MockBookingRepository, *MockFieldRepository, *MockVenueRepository) {
	bookings := &MockBookingRepository{}
	fields := &MockFieldRepository{}
	venues := &MockVenueRepository{}

	svc := &Service{
		bookingRepo:  bookings,
		fieldRepo:    fields,
		venueRepo:    venues,
		timeProvider: &fixedTimeProvider{now: testNow},
		logger:       nopLogger{},
	}

	return svc, bookings, fields, venues
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:          42,
		FieldID:     1,
		UserID:      7,
		BookingDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      domain.StatusConfirmed,
	}
}

func TestService_GetByID_OwnBooking(t *testing.T) {
	svc, bookings, _, _ := setupService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(sampleBooking(), nil)

	resp, err := svc.GetByID(context.Background(), 42, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestService_GetByID_VenueOwnerAccess(t *testing.T) {
	svc, bookings, fields, venues := setupService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(sampleBooking(), nil)
	fields.On("GetByID", mock.Anything, int64(1)).Return(&domain.Field{ID: 1, VenueID: 10}, nil)
	venues.On("GetByID", mock.Anything, int64(10)).Return(&domain.Venue{ID: 10, OwnerID: 100}, nil)

	_, err := svc.GetByID(context.Background(), 42, 100)

	require.NoError(t, err)
}

func TestService_GetByID_AccessDenied(t *testing.T) {
	svc, bookings, fields, venues := setupService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(sampleBooking(), nil)
	fields.On("GetByID", mock.Anything, int64(1)).Return(&domain.Field{ID: 1, VenueID: 10}, nil)
	venues.On("GetByID", mock.Anything, int64(10)).Return(&domain.Venue{ID: 10, OwnerID: 100}, nil)

	_, err := svc.GetByID(context.Background(), 42, 555)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc, bookings, _, _ := setupService()

	bookings.On("GetByID", mock.Anything, int64(99)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := svc.GetByID(context.Background(), 99, 7)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel_ByRenter(t *testing.T) {
	svc, bookings, _, _ := setupService()

	reason := gofakeit.Sentence(5)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(sampleBooking(), nil)
	bookings.On("Cancel", mock.Anything, int64(42), reason).Return(nil)

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		UserID:             7,
		CancellationReason: reason,
	})

	require.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestService_Cancel_CompletedBooking(t *testing.T) {
	svc, bookings, _, _ := setupService()

	booking := sampleBooking()
	booking.Status = domain.StatusCompleted
	bookings.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 7})

	assert.ErrorIs(t, err, ErrCannotCancel)
	bookings.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Complete_ByOwnerAfterSlotEnd(t *testing.T) {
	svc, bookings, fields, venues := setupService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(sampleBooking(), nil)
	fields.On("GetByID", mock.Anything, int64(1)).Return(&domain.Field{ID: 1, VenueID: 10}, nil)
	venues.On("GetByID", mock.Anything, int64(10)).Return(&domain.Venue{ID: 10, OwnerID: 100}, nil)
	bookings.On("UpdateStatus", mock.Anything, int64(42), domain.StatusCompleted).Return(nil)

	err := svc.Complete(context.Background(), 42, &models.CompleteBookingRequest{UserID: 100})

	require.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestService_Complete_BeforeSlotEnd(t *testing.T) {
	svc, bookings, fields, venues := setupService()

	booking := sampleBooking()
	booking.BookingDate = time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC) // завтра

	bookings.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)
	fields.On("GetByID", mock.Anything, int64(1)).Return(&domain.Field{ID: 1, VenueID: 10}, nil)
	venues.On("GetByID", mock.Anything, int64(10)).Return(&domain.Venue{ID: 10, OwnerID: 100}, nil)

	err := svc.Complete(context.Background(), 42, &models.CompleteBookingRequest{UserID: 100})

	assert.ErrorIs(t, err, ErrCannotComplete)
}

func TestService_Complete_RenterCannotComplete(t *testing.T) {
	svc, bookings, fields, venues := setupService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(sampleBooking(), nil)
	fields.On("GetByID", mock.Anything, int64(1)).Return(&domain.Field{ID: 1, VenueID: 10}, nil)
	venues.On("GetByID", mock.Anything, int64(10)).Return(&domain.Venue{ID: 10, OwnerID: 100}, nil)

	err := svc.Complete(context.Background(), 42, &models.CompleteBookingRequest{UserID: 7})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetUserBookings_OffsetMeta(t *testing.T) {
	svc, bookings, _, _ := setupService()

	page := domain.OffsetPage(2, 10)
	bookings.On("ListByUser", mock.Anything, int64(7), page).Return(&domain.BookingPage{
		Bookings: []*domain.Booking{sampleBooking()},
		Meta:     domain.PageMeta{Page: 2, Limit: 10, Total: 15},
	}, nil)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7, Page: page})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	require.NotNil(t, resp.Meta.Page)
	assert.Equal(t, 2, *resp.Meta.Page)
	assert.Equal(t, int64(15), *resp.Meta.Total)
	assert.Nil(t, resp.Meta.NextCursor)
}

func TestService_GetUserBookings_CursorMeta(t *testing.T) {
	svc, bookings, _, _ := setupService()

	page := domain.CursorPage(10, nil)
	next := int64(33)
	bookings.On("ListByUser", mock.Anything, int64(7), page).Return(&domain.BookingPage{
		Bookings: []*domain.Booking{sampleBooking()},
		Meta:     domain.PageMeta{NextCursor: &next},
	}, nil)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7, Page: page})

	require.NoError(t, err)
	assert.Nil(t, resp.Meta.Page)
	require.NotNil(t, resp.Meta.NextCursor)
	assert.Equal(t, "33", *resp.Meta.NextCursor)
}

func TestService_GetVenueBookings_NotOwner(t *testing.T) {
	svc, _, _, venues := setupService()

	venues.On("GetByID", mock.Anything, int64(10)).Return(&domain.Venue{ID: 10, OwnerID: 100}, nil)

	_, err := svc.GetVenueBookings(context.Background(), &models.GetVenueBookingsRequest{
		UserID:  555,
		VenueID: 10,
		Page:    domain.OffsetPage(1, 20),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}
