package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fieldmax/booking-service/internal/domain"
	bookingRepo "github.com/fieldmax/booking-service/internal/infra/storage/booking"
	fieldRepo "github.com/fieldmax/booking-service/internal/infra/storage/field"
	scheduleRepo "github.com/fieldmax/booking-service/internal/infra/storage/schedule"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	paymentRepo  PaymentRepository
	fieldRepo    FieldRepository
	venueRepo    VenueRepository
	scheduleRepo ScheduleRepository
	gateway      PaymentGatewayClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	fieldRepo FieldRepository,
	venueRepo VenueRepository,
	scheduleRepo ScheduleRepository,
	gateway PaymentGatewayClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		fieldRepo:    fieldRepo,
		venueRepo:    venueRepo,
		scheduleRepo: scheduleRepo,
		gateway:      gateway,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// повторная проверка занятости выполняется под блокировкой FOR UPDATE,
// а частичный уникальный индекс в БД закрывает гонку на уровне хранилища
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, field=%d, date=%s, time=%s",
		req.UserID, req.FieldID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Прошедшие даты бронировать нельзя
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Получаем площадку
	field, err := uc.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("CreateBooking: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("CreateBooking: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	if !field.IsBookable() {
		uc.logger.Warn("CreateBooking: field id=%d is not bookable (status=%s, closed=%t)",
			field.ID, field.Status, field.IsClosed)
		return nil, ErrFieldNotBookable
	}

	// 5. Комплекс тоже должен пройти модерацию
	venue, err := uc.venueRepo.GetByID(ctx, field.VenueID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get venue id=%d: %v", field.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}
	if !venue.IsApproved() {
		uc.logger.Warn("CreateBooking: venue id=%d is not approved (status=%s)", venue.ID, venue.Status)
		return nil, ErrFieldNotBookable
	}

	// 6. Получаем окно работы на указанную дату
	override, err := uc.scheduleRepo.GetOverride(ctx, venue.ID, req.Date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
		uc.logger.Error("CreateBooking: failed to get schedule override: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule override: %v", ErrInternal, err)
	}

	weekly, err := uc.scheduleRepo.GetWeekly(ctx, venue.ID, int(req.Date.Weekday()))
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("CreateBooking: failed to get weekly schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get weekly schedule: %v", ErrInternal, err)
	}

	window := domain.ResolveDayWindow(weekly, override)
	if !window.IsOpen {
		uc.logger.Warn("CreateBooking: venue id=%d is closed on %s", venue.ID, req.Date.Format(domain.DateFormat))
		return nil, ErrVenueClosed
	}

	// 7. Проверяем, что слот совпадает с сеткой расписания
	if err := validateSlotInWindow(req.StartTime, window); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 7.1. Слот на сегодняшнюю дату не должен быть уже начавшимся
	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	endTime, err := req.StartTime.AddMinutes(domain.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to calculate slot end: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate slot end: %v", ErrInternal, err)
	}

	// Переменные для хранения результата
	var (
		createdBooking *domain.Booking
		createdPayment *domain.Payment
	)

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем все активные бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.FieldBookingsFilter{
			FieldID:         req.FieldID,
			Date:            &req.Date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByFieldWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 8.2. Проверяем доступность слота
		if hasOverlappingBooking(req.StartTime, endTime, bookings) {
			uc.logger.Warn("CreateBooking: slot %s-%s is already taken for field=%d",
				req.StartTime, endTime, req.FieldID)
			return ErrSlotNotAvailable
		}

		// 8.3. Создаем бронирование со статусом PENDING до подтверждения оплаты
		booking := &domain.Booking{
			FieldID:       req.FieldID,
			UserID:        req.UserID,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			EndTime:       endTime,
			TotalPrice:    field.PricePerHour,
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentStatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: concurrent booking won the slot for field=%d", req.FieldID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 8.4. Создаем платёж с уникальным идентификатором заказа
		payment := &domain.Payment{
			BookingID: created.ID,
			OrderID:   uuid.NewString(),
			Amount:    created.TotalPrice,
			Status:    domain.PaymentStatusPending,
		}

		createdPay, err := uc.paymentRepo.Create(txCtx, payment)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create payment: %v", err)
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		createdBooking = created
		createdPayment = createdPay
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, order=%s",
		createdBooking.ID, createdPayment.OrderID)

	// 9. Запрашиваем токен оплаты у платёжного шлюза уже после фиксации транзакции.
	// Если шлюз недоступен, бронирование остаётся в PENDING, а токен можно
	// запросить повторно
	var snapToken *string
	snap, err := uc.gateway.CreateTransaction(ctx, createdPayment.OrderID, createdPayment.Amount, req.UserID)
	if err != nil {
		uc.logger.Warn("CreateBooking: payment gateway unavailable for order=%s: %v", createdPayment.OrderID, err)
	} else {
		if err := uc.paymentRepo.SetSnapToken(ctx, createdPayment.ID, snap.Token); err != nil {
			uc.logger.Error("CreateBooking: failed to store snap token for payment id=%d: %v", createdPayment.ID, err)
		}
		snapToken = &snap.Token
	}

	return &Response{
		ID:          createdBooking.ID,
		UserID:      createdBooking.UserID,
		FieldID:     createdBooking.FieldID,
		BookingDate: createdBooking.BookingDate,
		StartTime:   createdBooking.StartTime,
		EndTime:     createdBooking.EndTime,
		TotalPrice:  createdBooking.TotalPrice,
		Status:      string(createdBooking.Status),
		OrderID:     createdPayment.OrderID,
		SnapToken:   snapToken,
		CreatedAt:   createdBooking.CreatedAt,
		UpdatedAt:   createdBooking.UpdatedAt,
	}, nil
}
