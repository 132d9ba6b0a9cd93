package create_booking

import (
	"time"

	"github.com/fieldmax/booking-service/internal/domain"
	createBooking "github.com/fieldmax/booking-service/internal/usecase/create_booking"
	"github.com/fieldmax/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FieldID     int64  `json:"fieldId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	FieldID     int64  `json:"fieldId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	TotalPrice  string `json:"totalPrice"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// CreateBookingResponse HTTP response model: бронирование и токен оплаты
type CreateBookingResponse struct {
	Booking   BookingResponse `json:"booking"`
	OrderID   string          `json:"orderId"`
	SnapToken *string         `json:"snapToken,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		FieldID:   r.FieldID,
		Date:      bookingDate,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking: BookingResponse{
			ID:          resp.ID,
			UserID:      resp.UserID,
			FieldID:     resp.FieldID,
			BookingDate: resp.BookingDate.Format(domain.DateFormat),
			StartTime:   resp.StartTime.String(),
			EndTime:     resp.EndTime.String(),
			TotalPrice:  resp.TotalPrice.StringFixed(2),
			Status:      resp.Status,
			CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
		},
		OrderID:   resp.OrderID,
		SnapToken: resp.SnapToken,
	}
}
