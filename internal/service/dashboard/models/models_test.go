package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldmax/booking-service/internal/domain"
)

func revenueRequest(bucket domain.RevenueBucket) *GetRevenueRequest {
	return &GetRevenueRequest{
		UserID: 100,
		From:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Bucket: bucket,
	}
}

func TestFromDomainRevenueRows_DayBuckets(t *testing.T) {
	day1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	rows := []domain.RevenueRow{
		{Bucket: day1, PaymentStatus: domain.PaymentStatusPaid, Total: decimal.NewFromInt(3000), Count: 2},
		{Bucket: day1, PaymentStatus: domain.PaymentStatusPending, Total: decimal.NewFromInt(1500), Count: 1},
		{Bucket: day2, PaymentStatus: domain.PaymentStatusPaid, Total: decimal.NewFromInt(1500), Count: 1},
	}

	resp := FromDomainRevenueRows(revenueRequest(domain.BucketDay), rows)

	require.Len(t, resp.Points, 2)

	assert.Equal(t, "2026-03-02", resp.Points[0].Bucket)
	assert.Equal(t, "3000.00", resp.Points[0].Realized)
	assert.Equal(t, "1500.00", resp.Points[0].Pending)
	assert.Equal(t, int64(3), resp.Points[0].Bookings)

	assert.Equal(t, "2026-03-03", resp.Points[1].Bucket)
	assert.Equal(t, "1500.00", resp.Points[1].Realized)
	assert.Equal(t, "0.00", resp.Points[1].Pending)

	assert.Equal(t, "4500.00", resp.TotalRealized)
}

func TestFromDomainRevenueRows_MonthBuckets(t *testing.T) {
	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := []domain.RevenueRow{
		{Bucket: march, PaymentStatus: domain.PaymentStatusPaid, Total: decimal.NewFromInt(45000), Count: 30},
	}

	resp := FromDomainRevenueRows(revenueRequest(domain.BucketMonth), rows)

	require.Len(t, resp.Points, 1)
	assert.Equal(t, "2026-03", resp.Points[0].Bucket)
	assert.Equal(t, "month", resp.Bucket)
}

func TestFromDomainRevenueRows_Empty(t *testing.T) {
	resp := FromDomainRevenueRows(revenueRequest(domain.BucketDay), nil)

	assert.Empty(t, resp.Points)
	assert.Equal(t, "0.00", resp.TotalRealized)
	assert.Equal(t, "2026-03-01", resp.From)
	assert.Equal(t, "2026-03-31", resp.To)
}

// Статусы EXPIRED и FAILED в выручку не попадают, но бронирования считаются
func TestFromDomainRevenueRows_TerminalFailuresExcludedFromTotals(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	rows := []domain.RevenueRow{
		{Bucket: day, PaymentStatus: domain.PaymentStatusExpired, Total: decimal.NewFromInt(1500), Count: 1},
	}

	resp := FromDomainRevenueRows(revenueRequest(domain.BucketDay), rows)

	require.Len(t, resp.Points, 1)
	assert.Equal(t, "0.00", resp.Points[0].Realized)
	assert.Equal(t, "0.00", resp.Points[0].Pending)
	assert.Equal(t, int64(1), resp.Points[0].Bookings)
	assert.Equal(t, "0.00", resp.TotalRealized)
}
