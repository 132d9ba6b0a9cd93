package payment_callback

import (
	"context"

	"github.com/fieldmax/booking-service/internal/domain"
	"github.com/fieldmax/booking-service/internal/integrations/paymentgw"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	// GetByOrderID получает платёж по идентификатору заказа
	// Внутри транзакции строка блокируется (FOR UPDATE)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, transactionID *string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	UpdatePaymentState(ctx context.Context, id int64, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error
}

// SignatureVerifier интерфейс проверки подписи уведомления платёжного шлюза
type SignatureVerifier interface {
	VerifySignature(n *paymentgw.Notification) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
