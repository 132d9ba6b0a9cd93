package venues

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fieldmax/booking-service/internal/domain"
	"github.com/fieldmax/booking-service/internal/service/venues/models"
)

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

func (m *MockVenueRepository) ListByStatus(ctx context.Context, status domain.VenueStatus) ([]*domain.Venue, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) UpdateStatus(ctx context.Context, id int64, status domain.VenueStatus) error {
	args := m.Called(ctx, id, status)
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

func (m *MockFieldRepository) SetClosed(ctx context.Context, id int64, closed bool) error {
	args := m.Called(ctx, id, closed)
	return args.Error(0)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) ListWeekly(ctx context.Context, venueID int64) ([]*domain.Schedule, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) UpsertWeekly(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	args := m.Called(ctx, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) GetOverride(ctx context.Context, venueID int64, date time.Time) (*domain.ScheduleOverride, error) {
	args := m.Called(ctx, venueID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleOverride), args.Error(1)
}

func (m *MockScheduleRepository) CreateOverride(ctx context.Context, override *domain.ScheduleOverride) (*domain.ScheduleOverride, error) {
	args := m.Called(ctx, override)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleOverride), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func setupService() (*Service, *MockVenueRepository, *MockFieldRepository, *MockScheduleRepository) {
	venues := &MockVenueRepository{}
	fields := &MockFieldRepository{}
	schedules := &MockScheduleRepository{}

	svc := NewService(venues, fields, schedules, nopLogger{})

	return svc, venues, fields, schedules
}

func draftVenue() *domain.Venue {
	return &domain.Venue{ID: 10, OwnerID: 100, Name: "Arena", Status: domain.VenueDraft}
}

func TestService_Submit_Draft(t *testing.T) {
	svc, venues, _, _ := setupService()

	venues.On("GetByID", mock.Anything, int64(10)).Return(draftVenue(), nil)
	venues.On("UpdateStatus", mock.Anything, int64(10), domain.VenuePending).Return(nil)

	resp, err := svc.Submit(context.Background(), 10, 100)

	require.NoError(t, err)
	assert.Equal(t, string(domain.VenuePending), resp.Status)
	venues.AssertExpectations(t)
}

func TestService_Submit_Rejected(t *testing.T) {
	svc, venues, _, _ := setupService()

	venue := draftVenue()
	venue.Status = domain.VenueRejected
	venues.On("GetByID", mock.Anything, int64(10)).Return(venue, nil)
	venues.On("UpdateStatus", mock.Anything, int64(10), domain.VenuePending).Return(nil)

	_, err := svc.Submit(context.Background(), 10, 100)

	require.NoError(t, err)
}

func TestService_Submit_AlreadyApproved(t *testing.T) {
	svc, venues, _, _ := setupService()

	venue := draftVenue()
	venue.Status = domain.VenueApproved
	venues.On("GetByID", mock.Anything, int64(10)).Return(venue, nil)

	_, err := svc.Submit(context.Background(), 10, 100)

	assert.ErrorIs(t, err, ErrCannotSubmit)
}

func TestService_Submit_NotOwner(t *testing.T) {
	svc, venues, _, _ := setupService()

	venues.On("GetByID", mock.Anything, int64(10)).Return(draftVenue(), nil)

	_, err := svc.Submit(context.Background(), 10, 555)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Moderate_Approve(t *testing.T) {
	svc, venues, _, _ := setupService()

	venue := draftVenue()
	venue.Status = domain.VenuePending
	venues.On("GetByID", mock.Anything, int64(10)).Return(venue, nil)
	venues.On("UpdateStatus", mock.Anything, int64(10), domain.VenueApproved).Return(nil)

	resp, err := svc.Moderate(context.Background(), 10, &models.ModerateVenueRequest{Approve: true})

	require.NoError(t, err)
	assert.Equal(t, string(domain.VenueApproved), resp.Status)
}

func TestService_Moderate_Reject(t *testing.T) {
	svc, venues, _, _ := setupService()

	venue := draftVenue()
	venue.Status = domain.VenuePending
	venues.On("GetByID", mock.Anything, int64(10)).Return(venue, nil)
	venues.On("UpdateStatus", mock.Anything, int64(10), domain.VenueRejected).Return(nil)

	resp, err := svc.Moderate(context.Background(), 10, &models.ModerateVenueRequest{Approve: false})

	require.NoError(t, err)
	assert.Equal(t, string(domain.VenueRejected), resp.Status)
}

func TestService_Moderate_NotPending(t *testing.T) {
	svc, venues, _, _ := setupService()

	venues.On("GetByID", mock.Anything, int64(10)).Return(draftVenue(), nil)

	_, err := svc.Moderate(context.Background(), 10, &models.ModerateVenueRequest{Approve: true})

	assert.ErrorIs(t, err, ErrCannotModerate)
}

func TestService_UpdateSchedule(t *testing.T) {
	svc, venues, _, schedules := setupService()

	venue := draftVenue()
	venue.Status = domain.VenueApproved
	venues.On("GetByID", mock.Anything, int64(10)).Return(venue, nil)
	schedules.On("UpsertWeekly", mock.Anything, mock.MatchedBy(func(s *domain.Schedule) bool {
		return s.VenueID == 10 && s.DayOfWeek == 1 && s.OpenTime == "08:00" && s.CloseTime == "22:00"
	})).Return(&domain.Schedule{VenueID: 10, DayOfWeek: 1, OpenTime: "08:00", CloseTime: "22:00"}, nil)
	schedules.On("ListWeekly", mock.Anything, int64(10)).Return([]*domain.Schedule{
		{VenueID: 10, DayOfWeek: 1, OpenTime: "08:00", CloseTime: "22:00"},
	}, nil)

	resp, err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
		UserID:    100,
		DayOfWeek: 1,
		OpenTime:  "08:00",
		CloseTime: "22:00",
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
}

func TestService_UpdateSchedule_InvalidDay(t *testing.T) {
	svc, venues, _, _ := setupService()

	venues.On("GetByID", mock.Anything, int64(10)).Return(draftVenue(), nil)

	_, err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
		UserID:    100,
		DayOfWeek: 7,
		OpenTime:  "08:00",
		CloseTime: "22:00",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateSchedule_InvalidTime(t *testing.T) {
	svc, venues, _, _ := setupService()

	venues.On("GetByID", mock.Anything, int64(10)).Return(draftVenue(), nil)

	_, err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
		UserID:    100,
		DayOfWeek: 1,
		OpenTime:  "8am",
		CloseTime: "22:00",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_CreateOverride_ClosedDay(t *testing.T) {
	svc, venues, _, schedules := setupService()

	venues.On("GetByID", mock.Anything, int64(10)).Return(draftVenue(), nil)
	schedules.On("CreateOverride", mock.Anything, mock.MatchedBy(func(o *domain.ScheduleOverride) bool {
		return o.VenueID == 10 && o.IsClosed
	})).Return(&domain.ScheduleOverride{
		ID: 1, VenueID: 10, IsClosed: true,
		Date: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
	}, nil)

	resp, err := svc.CreateOverride(context.Background(), 10, &models.CreateOverrideRequest{
		UserID:   100,
		Date:     "2026-03-08",
		IsClosed: true,
	})

	require.NoError(t, err)
	assert.True(t, resp.IsClosed)
}

func TestService_CloseField(t *testing.T) {
	svc, venues, fields, _ := setupService()

	fields.On("GetByID", mock.Anything, int64(1)).Return(&domain.Field{ID: 1, VenueID: 10}, nil)
	venues.On("GetByID", mock.Anything, int64(10)).Return(draftVenue(), nil)
	fields.On("SetClosed", mock.Anything, int64(1), true).Return(nil)

	err := svc.CloseField(context.Background(), 1, &models.CloseFieldRequest{UserID: 100, Closed: true})

	require.NoError(t, err)
	fields.AssertExpectations(t)
}

func TestService_CloseField_NotOwner(t *testing.T) {
	svc, venues, fields, _ := setupService()

	fields.On("GetByID", mock.Anything, int64(1)).Return(&domain.Field{ID: 1, VenueID: 10}, nil)
	venues.On("GetByID", mock.Anything, int64(10)).Return(draftVenue(), nil)

	err := svc.CloseField(context.Background(), 1, &models.CloseFieldRequest{UserID: 555, Closed: true})

	assert.ErrorIs(t, err, ErrAccessDenied)
	fields.AssertNotCalled(t, "SetClosed", mock.Anything, mock.Anything, mock.Anything)
}
