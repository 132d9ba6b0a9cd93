package get_available_slots

import (
	"time"

	"github.com/fieldmax/booking-service/internal/domain"
	"github.com/fieldmax/booking-service/pkg/types"
)

// generateTimeSlots генерирует список всех возможных временных слотов на день
// Слоты генерируются с времени открытия с фиксированным шагом domain.SlotDurationMinutes
// Слот попадает в список, только если целиком помещается до времени закрытия
// Для сегодняшней даты дополнительно отбрасываются слоты, которые уже начались
func generateTimeSlots(window domain.DayWindow, requestDate time.Time, now time.Time) ([]types.TimeString, error) {
	// Прошедшие даты бронировать нельзя, слотов нет
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	if !window.IsOpen {
		return []types.TimeString{}, nil
	}

	// Шаг 1: Генерируем ВСЕ слоты от открытия до закрытия с фиксированным шагом
	allSlots := make([]types.TimeString, 0)
	currentSlot := window.OpenTime

	for currentSlot.IsBefore(window.CloseTime) {
		slotEnd, err := currentSlot.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		// Слот не должен выходить за время закрытия
		if slotEnd.IsAfter(window.CloseTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot = slotEnd
	}

	// Шаг 2: Если дата бронирования НЕ сегодня - возвращаем все слоты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: Для сегодняшней даты фильтруем слоты по текущему времени
	cutoff := types.NewTimeString(now)
	availableSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if !slot.IsBefore(cutoff) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// filterAvailableSlots оставляет только слоты, не пересекающиеся с активными бронированиями
// Пересечение есть только если интервалы действительно накладываются друг на друга
// Если бронирование заканчивается ровно там, где начинается слот (или наоборот) - это НЕ пересечение
//
// Примеры:
// - Слот 10:00-11:00, бронирование 10:30-11:30 → ЕСТЬ пересечение (10:30-11:00)
// - Слот 10:00-11:00, бронирование 09:00-10:00 → НЕТ пересечения (граничат)
// - Слот 10:00-11:00, бронирование 11:00-12:00 → НЕТ пересечения (граничат)
func filterAvailableSlots(slots []types.TimeString, bookings []*domain.Booking) []types.TimeString {
	available := make([]types.TimeString, 0, len(slots))

	for _, slotStart := range slots {
		slotEnd, err := slotStart.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			continue
		}

		if !hasOverlappingBooking(slotStart, slotEnd, bookings) {
			available = append(available, slotStart)
		}
	}

	return available
}

// hasOverlappingBooking проверяет, пересекается ли слот хотя бы с одним активным бронированием
func hasOverlappingBooking(slotStart, slotEnd types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		// Пропускаем неактивные бронирования
		if !booking.IsActive() {
			continue
		}

		// Интервалы пересекаются, только если:
		// - начало бронирования СТРОГО раньше конца слота И
		// - конец бронирования СТРОГО позже начала слота
		//
		// Используем строгие неравенства (IsBefore, IsAfter), чтобы граничные случаи не считались пересечением
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
