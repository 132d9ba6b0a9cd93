package payment_notification

import (
	"errors"
	"net/http"

	"github.com/fieldmax/booking-service/internal/api/handlers"
	paymentCallback "github.com/fieldmax/booking-service/internal/usecase/payment_callback"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSignature   = "подпись уведомления не прошла проверку"
	msgOrderNotFound      = "заказ не найден"
)

type Handler struct {
	useCase PaymentCallbackUseCase
	logger  Logger
}

func NewHandler(useCase PaymentCallbackUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/notification
// Webhook платёжного шлюза, аутентифицируется подписью в теле уведомления
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req NotificationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/notification - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, paymentCallback.ErrInvalidSignature):
			h.logger.Warn("POST /payments/notification - Invalid signature: order_id=%s", req.OrderID)
			handlers.RespondForbidden(w, msgInvalidSignature)

		case errors.Is(err, paymentCallback.ErrOrderNotFound):
			h.logger.Warn("POST /payments/notification - Order not found: order_id=%s", req.OrderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, paymentCallback.ErrInvalidInput):
			h.logger.Warn("POST /payments/notification - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /payments/notification - Failed to process notification: order_id=%s, error=%v",
				req.OrderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/notification - Notification processed: order_id=%s, payment_status=%s, applied=%t",
		result.OrderID, result.PaymentStatus, result.Applied)
	handlers.RespondJSON(w, http.StatusOK, NotificationResponse{
		Success: true,
		OrderID: result.OrderID,
		Status:  string(result.PaymentStatus),
	})
}
