package paymentgw

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, "test-server-key", 5*time.Second, nopLogger{})
}

func TestClient_CreateTransaction_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/snap/v1/transactions", r.URL.Path)

		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "test-server-key", user)

		var req snapRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "order-1", req.TransactionDetails.OrderID)
		assert.Equal(t, "1500.00", req.TransactionDetails.GrossAmount)
		assert.Equal(t, int64(7), req.CustomerDetails.UserID)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SnapTransaction{Token: "snap-token", RedirectURL: "https://pay.example/t"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	tx, err := client.CreateTransaction(context.Background(), "order-1", decimal.NewFromInt(1500), 7)

	require.NoError(t, err)
	assert.Equal(t, "snap-token", tx.Token)
}

func TestClient_CreateTransaction_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errorResponse{ErrorMessages: []string{"order_id has already been taken"}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateTransaction(context.Background(), "order-1", decimal.NewFromInt(1500), 7)

	assert.ErrorIs(t, err, ErrGatewayRejected)
}

func TestClient_CreateTransaction_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateTransaction(context.Background(), "order-1", decimal.NewFromInt(1500), 7)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_CreateTransaction_EmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(SnapTransaction{})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateTransaction(context.Background(), "order-1", decimal.NewFromInt(1500), 7)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_VerifySignature(t *testing.T) {
	client := newTestClient("http://unused")

	n := &Notification{
		OrderID:     "order-1",
		StatusCode:  "200",
		GrossAmount: "1500.00",
	}

	sum := sha512.Sum512([]byte("order-1" + "200" + "1500.00" + "test-server-key"))
	n.SignatureKey = hex.EncodeToString(sum[:])

	assert.True(t, client.VerifySignature(n))

	n.SignatureKey = "forged"
	assert.False(t, client.VerifySignature(n))
}
