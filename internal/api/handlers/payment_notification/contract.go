package payment_notification

import (
	"context"

	paymentCallback "github.com/fieldmax/booking-service/internal/usecase/payment_callback"
)

type PaymentCallbackUseCase interface {
	Execute(ctx context.Context, req *paymentCallback.Request) (*paymentCallback.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
