package dashboard

import "errors"

var (
	// ErrNoVenues возвращается, когда у владельца нет ни одного комплекса
	ErrNoVenues = errors.New("owner has no venues")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
