package payment_callback

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldmax/booking-service/internal/domain"
	paymentRepo "github.com/fieldmax/booking-service/internal/infra/storage/payment"
	"github.com/fieldmax/booking-service/internal/integrations/paymentgw"
)

// UseCase use case обработки уведомления платёжного шлюза
type UseCase struct {
	paymentRepo PaymentRepository
	bookingRepo BookingRepository
	verifier    SignatureVerifier
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	paymentRepo PaymentRepository,
	bookingRepo BookingRepository,
	verifier SignatureVerifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		verifier:    verifier,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case обработки уведомления
// Обработка идемпотентна: уведомление по платежу в терминальном статусе
// пропускается без изменений. Шлюз может присылать уведомления повторно
// и в произвольном порядке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PaymentCallback: order=%s, status=%s", req.OrderID, req.TransactionStatus)

	// 1. Валидация входных данных
	if req.OrderID == "" {
		uc.logger.Warn("PaymentCallback: empty order id")
		return nil, fmt.Errorf("%w: orderID is required", ErrInvalidInput)
	}
	if req.TransactionStatus == "" {
		uc.logger.Warn("PaymentCallback: empty transaction status for order=%s", req.OrderID)
		return nil, fmt.Errorf("%w: transactionStatus is required", ErrInvalidInput)
	}

	// 2. Проверяем подпись уведомления
	notification := &paymentgw.Notification{
		OrderID:           req.OrderID,
		TransactionID:     req.TransactionID,
		TransactionStatus: req.TransactionStatus,
		StatusCode:        req.StatusCode,
		GrossAmount:       req.GrossAmount,
		SignatureKey:      req.SignatureKey,
		FraudStatus:       req.FraudStatus,
	}
	if !uc.verifier.VerifySignature(notification) {
		uc.logger.Warn("PaymentCallback: signature verification failed for order=%s", req.OrderID)
		return nil, ErrInvalidSignature
	}

	var result *Response

	// 3. Применяем переход статусов в транзакции, платёж блокируется FOR UPDATE
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		payment, err := uc.paymentRepo.GetByOrderID(txCtx, req.OrderID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				uc.logger.Warn("PaymentCallback: order=%s not found", req.OrderID)
				return ErrOrderNotFound
			}
			uc.logger.Error("PaymentCallback: failed to get payment for order=%s: %v", req.OrderID, err)
			return fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
		}

		// Терминальный платёж больше не меняется
		if payment.IsTerminal() {
			uc.logger.Info("PaymentCallback: order=%s already in terminal status %s, skipping",
				req.OrderID, payment.Status)
			result = &Response{
				OrderID:       payment.OrderID,
				BookingID:     payment.BookingID,
				PaymentStatus: payment.Status,
				BookingStatus: bookingStatusFor(payment.Status),
				Applied:       false,
			}
			return nil
		}

		paymentStatus, bookingStatus, apply := resolveTransition(req.TransactionStatus, req.FraudStatus)
		if !apply {
			uc.logger.Info("PaymentCallback: order=%s status %s requires no transition",
				req.OrderID, req.TransactionStatus)
			result = &Response{
				OrderID:       payment.OrderID,
				BookingID:     payment.BookingID,
				PaymentStatus: payment.Status,
				BookingStatus: domain.StatusPending,
				Applied:       false,
			}
			return nil
		}

		var transactionID *string
		if req.TransactionID != "" {
			transactionID = &req.TransactionID
		}

		if err := uc.paymentRepo.UpdateStatus(txCtx, payment.ID, paymentStatus, transactionID); err != nil {
			uc.logger.Error("PaymentCallback: failed to update payment id=%d: %v", payment.ID, err)
			return fmt.Errorf("%w: failed to update payment: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.UpdatePaymentState(txCtx, payment.BookingID, bookingStatus, paymentStatus); err != nil {
			uc.logger.Error("PaymentCallback: failed to update booking id=%d: %v", payment.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = &Response{
			OrderID:       payment.OrderID,
			BookingID:     payment.BookingID,
			PaymentStatus: paymentStatus,
			BookingStatus: bookingStatus,
			Applied:       true,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if result.Applied {
		uc.logger.Info("PaymentCallback: order=%s processed, payment=%s, booking=%s",
			result.OrderID, result.PaymentStatus, result.BookingStatus)
	}

	return result, nil
}

// resolveTransition отображает статус транзакции шлюза в пару статусов
// платежа и бронирования. apply=false означает, что уведомление не требует
// изменений (например, промежуточный статус pending)
func resolveTransition(transactionStatus, fraudStatus string) (domain.PaymentStatus, domain.BookingStatus, bool) {
	switch transactionStatus {
	case paymentgw.TxStatusCapture:
		// Платёж с непройденной антифрод-проверкой остаётся в ожидании
		if fraudStatus != "" && fraudStatus != paymentgw.FraudStatusAccept {
			return "", "", false
		}
		return domain.PaymentStatusPaid, domain.StatusConfirmed, true
	case paymentgw.TxStatusSettlement:
		return domain.PaymentStatusPaid, domain.StatusConfirmed, true
	case paymentgw.TxStatusExpire:
		return domain.PaymentStatusExpired, domain.StatusCancelled, true
	case paymentgw.TxStatusDeny, paymentgw.TxStatusCancel, paymentgw.TxStatusFailure:
		return domain.PaymentStatusFailed, domain.StatusCancelled, true
	default:
		return "", "", false
	}
}

// bookingStatusFor возвращает статус бронирования, соответствующий
// терминальному статусу платежа
func bookingStatusFor(paymentStatus domain.PaymentStatus) domain.BookingStatus {
	if paymentStatus == domain.PaymentStatusPaid {
		return domain.StatusConfirmed
	}
	return domain.StatusCancelled
}
