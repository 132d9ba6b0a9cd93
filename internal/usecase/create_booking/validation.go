package create_booking

import (
	"fmt"
	"time"

	"github.com/fieldmax/booking-service/internal/domain"
	"github.com/fieldmax/booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.FieldID <= 0 {
		return fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlotInWindow проверяет, что запрошенный слот лежит в окне работы
// и совпадает с сеткой слотов (начало кратно шагу от времени открытия)
func validateSlotInWindow(startTime types.TimeString, window domain.DayWindow) error {
	if startTime.IsBefore(window.OpenTime) {
		return fmt.Errorf("%w: slot starts before opening time", ErrInvalidTimeSlot)
	}

	slotEnd, err := startTime.AddMinutes(domain.SlotDurationMinutes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if slotEnd.IsAfter(window.CloseTime) {
		return fmt.Errorf("%w: slot ends after closing time", ErrInvalidTimeSlot)
	}

	currentSlot := window.OpenTime
	for !currentSlot.IsAfter(startTime) {
		if currentSlot == startTime {
			return nil
		}
		currentSlot, err = currentSlot.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			break
		}
	}

	return fmt.Errorf("%w: slot is not aligned to the schedule grid", ErrInvalidTimeSlot)
}

// validateBookingTime проверяет, что слот на сегодняшнюю дату ещё не начался
func validateBookingTime(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	// Если дата бронирования не сегодня, проверка не нужна
	if !isSameDay(bookingDate, now) {
		return nil
	}

	if startTime.IsBefore(types.NewTimeString(now)) {
		return fmt.Errorf("%w: slot start has already passed", ErrTooLateToBook)
	}

	return nil
}

// hasOverlappingBooking проверяет, пересекается ли слот хотя бы с одним активным бронированием
// Используются строгие неравенства, граничные случаи не считаются пересечением
func hasOverlappingBooking(slotStart, slotEnd types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		if booking.StartTime.IsBefore(slotEnd) && booking.EndTime.IsAfter(slotStart) {
			return true
		}
	}

	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
