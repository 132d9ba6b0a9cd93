package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldmax/booking-service/internal/domain"
	fieldRepo "github.com/fieldmax/booking-service/internal/infra/storage/field"
	scheduleRepo "github.com/fieldmax/booking-service/internal/infra/storage/schedule"
	"github.com/fieldmax/booking-service/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	fieldRepo    FieldRepository
	venueRepo    VenueRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	fieldRepo FieldRepository,
	venueRepo VenueRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		fieldRepo:    fieldRepo,
		venueRepo:    venueRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: field=%d, date=%s", req.FieldID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем площадку
	field, err := uc.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("GetAvailableSlots: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	// 4. Закрытая или немодерированная площадка слотов не имеет
	if !field.IsBookable() {
		uc.logger.Info("GetAvailableSlots: field id=%d is not bookable (status=%s, closed=%t)",
			field.ID, field.Status, field.IsClosed)
		return emptyResponse(req), nil
	}

	// 5. Комплекс тоже должен пройти модерацию
	venue, err := uc.venueRepo.GetByID(ctx, field.VenueID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get venue id=%d: %v", field.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}
	if !venue.IsApproved() {
		uc.logger.Info("GetAvailableSlots: venue id=%d is not approved (status=%s)", venue.ID, venue.Status)
		return emptyResponse(req), nil
	}

	// 6. Получаем окно работы на указанную дату: исключение на дату имеет приоритет
	// над недельным расписанием
	override, err := uc.scheduleRepo.GetOverride(ctx, venue.ID, req.Date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get schedule override: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule override: %v", ErrInternal, err)
	}

	weekly, err := uc.scheduleRepo.GetWeekly(ctx, venue.ID, int(req.Date.Weekday()))
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get weekly schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get weekly schedule: %v", ErrInternal, err)
	}

	window := domain.ResolveDayWindow(weekly, override)
	if !window.IsOpen {
		uc.logger.Info("GetAvailableSlots: venue id=%d is closed on %s", venue.ID, req.Date.Format(domain.DateFormat))
		return emptyResponse(req), nil
	}

	// 7. Генерируем временные слоты
	timeSlots, err := generateTimeSlots(window, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 8. Получаем все активные бронирования площадки на эту дату
	filter := domain.FieldBookingsFilter{
		FieldID:         req.FieldID,
		Date:            &req.Date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByFieldWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 9. Убираем занятые слоты
	slots := filterAvailableSlots(timeSlots, bookings)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for field=%d, date=%s",
		len(slots), len(timeSlots), req.FieldID, req.Date.Format(domain.DateFormat))

	return &Response{
		FieldID: req.FieldID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}

func emptyResponse(req *Request) *Response {
	return &Response{
		FieldID: req.FieldID,
		Date:    req.Date,
		Slots:   []types.TimeString{},
	}
}
