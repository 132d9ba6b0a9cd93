package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_IsActive(t *testing.T) {
	for _, status := range ActiveStatuses {
		b := &Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s", status)
	}

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
}

func TestBooking_CanBeCompleted(t *testing.T) {
	booking := &Booking{
		Status:      StatusConfirmed,
		BookingDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "11:00",
	}

	beforeSlotEnd := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	assert.False(t, booking.CanBeCompleted(beforeSlotEnd))

	afterSlotEnd := time.Date(2026, 3, 2, 11, 0, 1, 0, time.UTC)
	assert.True(t, booking.CanBeCompleted(afterSlotEnd))
}

func TestBooking_CanBeCompleted_OnlyConfirmed(t *testing.T) {
	past := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, status := range []BookingStatus{StatusPending, StatusCancelled, StatusCompleted} {
		b := &Booking{
			Status:      status,
			BookingDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			StartTime:   "10:00",
			EndTime:     "11:00",
		}
		assert.False(t, b.CanBeCompleted(past), "status %s", status)
	}
}

func TestBooking_Overlaps(t *testing.T) {
	booking := &Booking{StartTime: "10:00", EndTime: "11:00"}

	assert.True(t, booking.Overlaps("10:30", "11:30"))
	assert.True(t, booking.Overlaps("09:30", "10:30"))
	assert.True(t, booking.Overlaps("10:00", "11:00"))

	// Граничащие интервалы не пересекаются
	assert.False(t, booking.Overlaps("09:00", "10:00"))
	assert.False(t, booking.Overlaps("11:00", "12:00"))
}
