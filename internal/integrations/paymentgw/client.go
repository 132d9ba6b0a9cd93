package paymentgw

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Snap API платёжного шлюза
type Client struct {
	baseURL    string
	serverKey  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного шлюза
func NewClient(baseURL string, serverKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		serverKey: serverKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateTransaction создает Snap-транзакцию для заказа и возвращает токен оплаты
func (c *Client) CreateTransaction(ctx context.Context, orderID string, amount decimal.Decimal, userID int64) (*SnapTransaction, error) {
	url := fmt.Sprintf("%s/snap/v1/transactions", c.baseURL)

	body, err := json.Marshal(snapRequest{
		TransactionDetails: transactionDetails{
			OrderID:     orderID,
			GrossAmount: amount.StringFixed(2),
		},
		CustomerDetails: customerDetails{UserID: userID},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.serverKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnauthorized:
		var gwErr errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&gwErr)
		c.log.Warn("paymentgw: transaction rejected for order_id=%s: %v", orderID, gwErr.ErrorMessages)
		return nil, fmt.Errorf("%w: order_id=%s: %v", ErrGatewayRejected, orderID, gwErr.ErrorMessages)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var tx SnapTransaction
	if err := json.NewDecoder(resp.Body).Decode(&tx); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if tx.Token == "" {
		return nil, fmt.Errorf("%w: empty snap token for order_id=%s", ErrInvalidResponse, orderID)
	}

	c.log.Info("paymentgw: snap transaction created, order_id=%s", orderID)
	return &tx, nil
}

// VerifySignature проверяет подпись уведомления шлюза
// Подпись - sha512(order_id + status_code + gross_amount + server_key)
func (c *Client) VerifySignature(n *Notification) bool {
	payload := n.OrderID + n.StatusCode + n.GrossAmount + c.serverKey
	sum := sha512.Sum512([]byte(payload))
	return hex.EncodeToString(sum[:]) == n.SignatureKey
}
