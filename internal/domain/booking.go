package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldmax/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// Booking represents a field reservation for a single hourly slot
type Booking struct {
	ID      int64
	FieldID int64
	UserID  int64

	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	TotalPrice    decimal.Decimal
	Status        BookingStatus
	PaymentStatus PaymentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
// (cancelled bookings release the slot, everything else holds it)
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking can be marked completed:
// it must be confirmed and its slot must have ended
func (b *Booking) CanBeCompleted(now time.Time) bool {
	if b.Status != StatusConfirmed {
		return false
	}
	slotEnd := time.Date(
		b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		0, 0, 0, 0, b.BookingDate.Location(),
	)
	endMinutes := 0
	if end, err := time.Parse(TimeFormat, b.EndTime.String()); err == nil {
		endMinutes = end.Hour()*60 + end.Minute()
	}
	return now.After(slotEnd.Add(time.Duration(endMinutes) * time.Minute))
}

// Overlaps reports whether the half-open interval [StartTime, EndTime)
// intersects [start, end); touching boundaries do not count
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && start.IsBefore(b.EndTime)
}

// FieldBookingsFilter фильтр для получения бронирований поля
type FieldBookingsFilter struct {
	FieldID         int64          // Обязательный параметр
	Date            *time.Time     // Конкретная дата (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}

// VenueBookingsFilter фильтр для получения бронирований площадки (для владельца)
type VenueBookingsFilter struct {
	VenueID   int64
	StartDate *time.Time
	EndDate   *time.Time
	Status    *BookingStatus
}
