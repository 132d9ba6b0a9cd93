package models

import (
	"errors"
	"strconv"
	"time"

	"github.com/fieldmax/booking-service/internal/domain"
	"github.com/fieldmax/booking-service/pkg/ptr"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// CompleteBookingRequest запрос на завершение бронирования
type CompleteBookingRequest struct {
	UserID int64 `json:"userId"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64
	Page   domain.PageRequest
}

// GetVenueBookingsRequest запрос на получение бронирований комплекса
type GetVenueBookingsRequest struct {
	UserID    int64
	VenueID   int64
	StartDate *time.Time // Начало периода (опционально)
	EndDate   *time.Time // Конец периода (опционально)
	Status    *string    // Фильтр по статусу (опционально)
	Page      domain.PageRequest
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetVenueBookingsRequest) ToDomainFilter() (domain.VenueBookingsFilter, error) {
	filter := domain.VenueBookingsFilter{
		VenueID:   r.VenueID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	FieldID     int64  `json:"fieldId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "10:00"
	EndTime     string `json:"endTime"`     // "11:00"
	TotalPrice  string `json:"totalPrice"`  // Десятичная строка, например "250000.00"
	Status      string `json:"status"`

	PaymentStatus string `json:"paymentStatus"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PageMetaResponse метаданные страницы
// Для постраничной выборки заполнены page/limit/total, для курсорной - nextCursor
type PageMetaResponse struct {
	Page       *int    `json:"page,omitempty"`
	Limit      *int    `json:"limit,omitempty"`
	Total      *int64  `json:"total,omitempty"`
	NextCursor *string `json:"nextCursor,omitempty"` // ID последней записи страницы в виде строки
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"data"`
	Meta     PageMetaResponse  `json:"meta"`
}

// Методы конвертации

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		FieldID:            b.FieldID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		TotalPrice:         b.TotalPrice.StringFixed(2),
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(b.CancelledAt.Format(time.RFC3339))
	}

	return resp
}

// FromDomainBookingPage конвертирует страницу domain моделей в DTO
func FromDomainBookingPage(mode domain.PageMode, page *domain.BookingPage) *BookingListResponse {
	if page == nil {
		return &BookingListResponse{Bookings: []BookingResponse{}}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(page.Bookings)),
	}

	for i, booking := range page.Bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	switch mode {
	case domain.PageModeCursor:
		if page.Meta.NextCursor != nil {
			resp.Meta.NextCursor = ptr.Ptr(strconv.FormatInt(*page.Meta.NextCursor, 10))
		}
	default:
		resp.Meta.Page = ptr.Ptr(page.Meta.Page)
		resp.Meta.Limit = ptr.Ptr(page.Meta.Limit)
		resp.Meta.Total = ptr.Ptr(page.Meta.Total)
	}

	return resp
}
