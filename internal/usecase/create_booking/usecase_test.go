package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fieldmax/booking-service/internal/domain"
	bookingRepo "github.com/fieldmax/booking-service/internal/infra/storage/booking"
	scheduleRepo "github.com/fieldmax/booking-service/internal/infra/storage/schedule"
	"github.com/fieldmax/booking-service/internal/integrations/paymentgw"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByFieldWithFilter(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SetSnapToken(ctx context.Context, id int64, snapToken string) error {
	args := m.Called(ctx, id, snapToken)
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

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) GetWeekly(ctx context.Context, venueID int64, dayOfWeek int) (*domain.Schedule, error) {
	args := m.Called(ctx, venueID, dayOfWeek)
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

type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) CreateTransaction(ctx context.Context, orderID string, amount decimal.Decimal, userID int64) (*paymentgw.SnapTransaction, error) {
	args := m.Called(ctx, orderID, amount, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentgw.SnapTransaction), args.Error(1)
}

// passthroughTxManager выполняет функцию без настоящей транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

type useCaseMocks struct {
	bookings  *MockBookingRepository
	payments  *MockPaymentRepository
	fields    *MockFieldRepository
	venues    *MockVenueRepository
	schedules *MockScheduleRepository
	gateway   *MockGatewayClient
}

var (
	testNow  = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
)

func setupUseCase() (*UseCase, *useCaseMocks) {
	m := &useCaseMocks{
		bookings:  &MockBookingRepository{},
		payments:  &MockPaymentRepository{},
		fields:    &MockFieldRepository{},
		venues:    &MockVenueRepository{},
		schedules: &MockScheduleRepository{},
		gateway:   &MockGatewayClient{},
	}

	uc := &UseCase{
		bookingRepo:  m.bookings,
		paymentRepo:  m.payments,
		fieldRepo:    m.fields,
		venueRepo:    m.venues,
		scheduleRepo: m.schedules,
		gateway:      m.gateway,
		txManager:    passthroughTxManager{},
		timeProvider: &fixedTimeProvider{now: testNow},
		logger:       nopLogger{},
	}

	return uc, m
}

func (m *useCaseMocks) expectBookableField() {
	m.fields.On("GetByID", mock.Anything, int64(1)).Return(&domain.Field{
		ID:           1,
		VenueID:      10,
		Status:       domain.FieldApproved,
		PricePerHour: decimal.NewFromInt(1500),
	}, nil)
	m.venues.On("GetByID", mock.Anything, int64(10)).Return(&domain.Venue{
		ID:     10,
		Status: domain.VenueApproved,
	}, nil)
	m.schedules.On("GetOverride", mock.Anything, int64(10), testDate).Return(nil, scheduleRepo.ErrOverrideNotFound)
	m.schedules.On("GetWeekly", mock.Anything, int64(10), int(testDate.Weekday())).
		Return(&domain.Schedule{VenueID: 10, OpenTime: "08:00", CloseTime: "22:00"}, nil)
}

func validRequest() *Request {
	return &Request{UserID: 7, FieldID: 1, Date: testDate, StartTime: "10:00"}
}

func TestCreateBooking_Success(t *testing.T) {
	uc, m := setupUseCase()
	m.expectBookableField()

	m.bookings.On("GetByFieldWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	m.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.StartTime == "10:00" && b.EndTime == "11:00" &&
			b.Status == domain.StatusPending && b.PaymentStatus == domain.PaymentStatusPending
	})).Return(&domain.Booking{
		ID:          42,
		UserID:      7,
		FieldID:     1,
		BookingDate: testDate,
		StartTime:   "10:00",
		EndTime:     "11:00",
		TotalPrice:  decimal.NewFromInt(1500),
		Status:      domain.StatusPending,
	}, nil)
	m.payments.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.BookingID == 42 && p.OrderID != "" && p.Amount.Equal(decimal.NewFromInt(1500))
	})).Return(&domain.Payment{ID: 5, BookingID: 42, OrderID: "order-1", Amount: decimal.NewFromInt(1500)}, nil)
	m.gateway.On("CreateTransaction", mock.Anything, "order-1", decimal.NewFromInt(1500), int64(7)).
		Return(&paymentgw.SnapTransaction{Token: "snap-token"}, nil)
	m.payments.On("SetSnapToken", mock.Anything, int64(5), "snap-token").Return(nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "order-1", resp.OrderID)
	require.NotNil(t, resp.SnapToken)
	assert.Equal(t, "snap-token", *resp.SnapToken)
	m.bookings.AssertExpectations(t)
	m.payments.AssertExpectations(t)
}

func TestCreateBooking_GatewayUnavailable_BookingStaysPending(t *testing.T) {
	uc, m := setupUseCase()
	m.expectBookableField()

	m.bookings.On("GetByFieldWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{
		ID: 42, UserID: 7, FieldID: 1, BookingDate: testDate,
		StartTime: "10:00", EndTime: "11:00",
		TotalPrice: decimal.NewFromInt(1500), Status: domain.StatusPending,
	}, nil)
	m.payments.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Payment{ID: 5, BookingID: 42, OrderID: "order-1", Amount: decimal.NewFromInt(1500)}, nil)
	m.gateway.On("CreateTransaction", mock.Anything, "order-1", mock.Anything, int64(7)).
		Return(nil, errors.New("gateway timeout"))

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Nil(t, resp.SnapToken)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	m.payments.AssertNotCalled(t, "SetSnapToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_SlotOverlap(t *testing.T) {
	uc, m := setupUseCase()
	m.expectBookableField()

	m.bookings.On("GetByFieldWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{
		{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
	}, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	m.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_ConcurrentInsertLosesRace(t *testing.T) {
	uc, m := setupUseCase()
	m.expectBookableField()

	m.bookings.On("GetByFieldWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).Return(nil, bookingRepo.ErrSlotTaken)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateBooking_SlotNotAligned(t *testing.T) {
	uc, m := setupUseCase()
	m.expectBookableField()

	req := validRequest()
	req.StartTime = "10:30"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestCreateBooking_SlotOutsideWindow(t *testing.T) {
	uc, m := setupUseCase()
	m.expectBookableField()

	req := validRequest()
	req.StartTime = "07:00"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	// Слот 23:00-24:00 вылезает за закрытие в 22:00
	req.StartTime = "23:00"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestCreateBooking_SameDayStartedSlot(t *testing.T) {
	uc, m := setupUseCase()

	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	m.fields.On("GetByID", mock.Anything, int64(1)).Return(&domain.Field{
		ID: 1, VenueID: 10, Status: domain.FieldApproved, PricePerHour: decimal.NewFromInt(1500),
	}, nil)
	m.venues.On("GetByID", mock.Anything, int64(10)).Return(&domain.Venue{
		ID: 10, Status: domain.VenueApproved,
	}, nil)
	m.schedules.On("GetOverride", mock.Anything, int64(10), today).Return(nil, scheduleRepo.ErrOverrideNotFound)
	m.schedules.On("GetWeekly", mock.Anything, int64(10), int(today.Weekday())).
		Return(&domain.Schedule{VenueID: 10, OpenTime: "08:00", CloseTime: "22:00"}, nil)

	// Сейчас 09:00 - слот 08:00 на сегодня уже начался
	req := &Request{UserID: 7, FieldID: 1, Date: today, StartTime: "08:00"}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTooLateToBook)
	m.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_PastDate(t *testing.T) {
	uc, _ := setupUseCase()

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBooking_VenueClosedOnDate(t *testing.T) {
	uc, m := setupUseCase()

	m.fields.On("GetByID", mock.Anything, int64(1)).Return(&domain.Field{
		ID: 1, VenueID: 10, Status: domain.FieldApproved,
	}, nil)
	m.venues.On("GetByID", mock.Anything, int64(10)).Return(&domain.Venue{
		ID: 10, Status: domain.VenueApproved,
	}, nil)
	m.schedules.On("GetOverride", mock.Anything, int64(10), testDate).
		Return(&domain.ScheduleOverride{VenueID: 10, Date: testDate, IsClosed: true}, nil)
	m.schedules.On("GetWeekly", mock.Anything, int64(10), int(testDate.Weekday())).
		Return(&domain.Schedule{VenueID: 10, OpenTime: "08:00", CloseTime: "22:00"}, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrVenueClosed)
}

func TestCreateBooking_FieldNotBookable(t *testing.T) {
	uc, m := setupUseCase()

	m.fields.On("GetByID", mock.Anything, int64(1)).Return(&domain.Field{
		ID: 1, VenueID: 10, Status: domain.FieldApproved, IsClosed: true,
	}, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrFieldNotBookable)
}

func TestValidateSlotInWindow_GridAlignment(t *testing.T) {
	window := domain.DayWindow{IsOpen: true, OpenTime: "08:30", CloseTime: "22:30"}

	assert.NoError(t, validateSlotInWindow("08:30", window))
	assert.NoError(t, validateSlotInWindow("12:30", window))
	assert.ErrorIs(t, validateSlotInWindow("12:00", window), ErrInvalidTimeSlot)
}
