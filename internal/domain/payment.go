package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusExpired PaymentStatus = "EXPIRED"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Payment represents a 1:1 payment record for a booking,
// driven by the external gateway's notification callbacks
type Payment struct {
	ID        int64
	BookingID int64
	OrderID   string // идентификатор заказа на стороне шлюза (uuid)
	Amount    decimal.Decimal
	Status    PaymentStatus

	SnapToken     *string // токен для клиентского виджета оплаты
	TransactionID *string // идентификатор транзакции шлюза из callback

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the payment reached a final state
// and further gateway notifications must not change it
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusPaid || p.Status == PaymentStatusExpired || p.Status == PaymentStatusFailed
}
