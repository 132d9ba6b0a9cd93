package paymentgw

// snapRequest тело запроса на создание Snap-транзакции
type snapRequest struct {
	TransactionDetails transactionDetails `json:"transaction_details"`
	CustomerDetails    customerDetails    `json:"customer_details"`
}

type transactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount string `json:"gross_amount"`
}

type customerDetails struct {
	UserID int64 `json:"user_id"`
}

// SnapTransaction ответ шлюза на создание транзакции
// Token передается клиентскому виджету оплаты
type SnapTransaction struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// Notification уведомление шлюза о смене статуса транзакции (webhook)
type Notification struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	FraudStatus       string `json:"fraud_status,omitempty"`
}

// Статусы транзакции шлюза
const (
	TxStatusCapture    = "capture"
	TxStatusSettlement = "settlement"
	TxStatusPending    = "pending"
	TxStatusDeny       = "deny"
	TxStatusCancel     = "cancel"
	TxStatusExpire     = "expire"
	TxStatusFailure    = "failure"
)

// Статусы антифрод-проверки для capture
const (
	FraudStatusAccept    = "accept"
	FraudStatusChallenge = "challenge"
)

// errorResponse тело ошибки от шлюза
type errorResponse struct {
	ErrorMessages []string `json:"error_messages"`
}
