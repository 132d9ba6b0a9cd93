package paymentgw

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgw client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("paymentgw client: invalid response")

	// ErrGatewayRejected возвращается, когда шлюз отклонил запрос на создание транзакции
	ErrGatewayRejected = errors.New("paymentgw client: transaction rejected by gateway")
)
