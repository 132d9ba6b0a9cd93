package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда комплекс не найден
	ErrVenueNotFound = errors.New("venue not found")

	// ErrFieldNotFound возвращается, когда площадка не найдена
	ErrFieldNotFound = errors.New("field not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotSubmit возвращается, когда комплекс нельзя отправить на модерацию
	ErrCannotSubmit = errors.New("venue cannot be submitted for moderation")

	// ErrCannotModerate возвращается, когда комплекс не ожидает модерации
	ErrCannotModerate = errors.New("venue is not pending moderation")

	// ErrInvalidHours возвращается при некорректном интервале работы
	ErrInvalidHours = errors.New("invalid working hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
