package payment_notification

import paymentCallback "github.com/fieldmax/booking-service/internal/usecase/payment_callback"

// NotificationRequest HTTP request model: уведомление платёжного шлюза
// Поля именуются в snake_case, как их присылает шлюз
type NotificationRequest struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	FraudStatus       string `json:"fraud_status"`
}

// NotificationResponse HTTP response model
type NotificationResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *NotificationRequest) ToUseCaseRequest() *paymentCallback.Request {
	return &paymentCallback.Request{
		OrderID:           r.OrderID,
		TransactionID:     r.TransactionID,
		TransactionStatus: r.TransactionStatus,
		StatusCode:        r.StatusCode,
		GrossAmount:       r.GrossAmount,
		SignatureKey:      r.SignatureKey,
		FraudStatus:       r.FraudStatus,
	}
}
