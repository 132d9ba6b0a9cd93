package payment_callback

import "github.com/fieldmax/booking-service/internal/domain"

// Request модель уведомления платёжного шлюза
type Request struct {
	OrderID           string // Идентификатор заказа
	TransactionID     string // Идентификатор транзакции в шлюзе
	TransactionStatus string // Статус транзакции (settlement, expire и т.д.)
	StatusCode        string // HTTP-код статуса из уведомления
	GrossAmount       string // Сумма платежа строкой, как прислал шлюз
	SignatureKey      string // Подпись уведомления
	FraudStatus       string // Результат антифрод-проверки (для capture)
}

// Response модель результата обработки уведомления
type Response struct {
	OrderID       string               // Идентификатор заказа
	BookingID     int64                // ID бронирования
	PaymentStatus domain.PaymentStatus // Статус платежа после обработки
	BookingStatus domain.BookingStatus // Статус бронирования после обработки
	Applied       bool                 // false, если уведомление идемпотентно пропущено
}
