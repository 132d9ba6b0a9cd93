package payment_callback

import "errors"

var (
	// ErrInvalidSignature возвращается, когда подпись уведомления не прошла проверку
	ErrInvalidSignature = errors.New("payment_callback: invalid notification signature")

	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("payment_callback: order not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("payment_callback: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("payment_callback: internal error")
)
