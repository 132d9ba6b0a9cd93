package create_booking

import "errors"

var (
	// ErrFieldNotFound возвращается, когда площадка не найдена
	ErrFieldNotFound = errors.New("create_booking: field not found")

	// ErrFieldNotBookable возвращается, когда площадка закрыта или не прошла модерацию
	ErrFieldNotBookable = errors.New("create_booking: field is not bookable")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrVenueClosed возвращается, когда комплекс закрыт в указанную дату
	ErrVenueClosed = errors.New("create_booking: venue is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время слота не совпадает с сеткой расписания
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда слот на сегодняшнюю дату уже начался
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
