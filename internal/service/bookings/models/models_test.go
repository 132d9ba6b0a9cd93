package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldmax/booking-service/internal/domain"
	"github.com/fieldmax/booking-service/pkg/types"
)

func listPageBooking(t *testing.T) *domain.Booking {
	t.Helper()

	start, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)
	end, err := types.NewTimeStringFromString("11:00")
	require.NoError(t, err)

	return &domain.Booking{
		ID:            42,
		UserID:        7,
		FieldID:       1,
		BookingDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:     start,
		EndTime:       end,
		TotalPrice:    decimal.NewFromInt(1500),
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentStatusPending,
	}
}

func TestFromDomainBookingPage_CursorWireFormat(t *testing.T) {
	next := int64(42)
	page := &domain.BookingPage{
		Bookings: []*domain.Booking{listPageBooking(t)},
		Meta:     domain.PageMeta{NextCursor: &next},
	}

	resp := FromDomainBookingPage(domain.PageModeCursor, page)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &envelope))

	// Список отдаётся под ключом data
	assert.Contains(t, envelope, "data")
	assert.NotContains(t, envelope, "bookings")

	var meta map[string]any
	require.NoError(t, json.Unmarshal(envelope["meta"], &meta))

	// Курсор сериализуется строкой
	assert.Equal(t, "42", meta["nextCursor"])
	assert.NotContains(t, meta, "page")
	assert.NotContains(t, meta, "total")
}

func TestFromDomainBookingPage_OffsetWireFormat(t *testing.T) {
	page := &domain.BookingPage{
		Bookings: []*domain.Booking{listPageBooking(t)},
		Meta:     domain.PageMeta{Page: 1, Limit: 20, Total: 1},
	}

	resp := FromDomainBookingPage(domain.PageModeOffset, page)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Contains(t, envelope, "data")

	var meta map[string]any
	require.NoError(t, json.Unmarshal(envelope["meta"], &meta))
	assert.Equal(t, float64(1), meta["page"])
	assert.Equal(t, float64(20), meta["limit"])
	assert.Equal(t, float64(1), meta["total"])
	assert.NotContains(t, meta, "nextCursor")
}
