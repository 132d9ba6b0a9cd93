package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldmax/booking-service/internal/domain"
)

// GetRevenueRequest запрос на агрегацию выручки
type GetRevenueRequest struct {
	UserID  int64
	IsAdmin bool // Администратор видит выручку по всем комплексам
	From    time.Time
	To      time.Time
	Bucket  domain.RevenueBucket
}

// RevenuePoint точка временного ряда выручки
// Realized - сумма по оплаченным бронированиям, Pending - по ожидающим оплату
type RevenuePoint struct {
	Bucket   string `json:"bucket"` // "2025-10-15" для дней, "2025-10" для месяцев
	Realized string `json:"realized"`
	Pending  string `json:"pending"`
	Bookings int64  `json:"bookings"`
}

// RevenueResponse временной ряд выручки за период
type RevenueResponse struct {
	From          string         `json:"from"`
	To            string         `json:"to"`
	Bucket        string         `json:"bucket"`
	TotalRealized string         `json:"totalRealized"`
	Points        []RevenuePoint `json:"points"`
}

// FromDomainRevenueRows сворачивает строки агрегации в временной ряд
// Строки приходят отсортированными по интервалу, разные статусы оплаты
// одного интервала складываются в одну точку
func FromDomainRevenueRows(req *GetRevenueRequest, rows []domain.RevenueRow) *RevenueResponse {
	layout := bucketLayout(req.Bucket)

	resp := &RevenueResponse{
		From:   req.From.Format(domain.DateFormat),
		To:     req.To.Format(domain.DateFormat),
		Bucket: string(req.Bucket),
		Points: make([]RevenuePoint, 0, len(rows)),
	}

	totalRealized := decimal.Zero

	type bucketTotals struct {
		realized decimal.Decimal
		pending  decimal.Decimal
		bookings int64
	}

	order := make([]string, 0, len(rows))
	totals := make(map[string]*bucketTotals)

	for _, row := range rows {
		key := row.Bucket.Format(layout)
		t, ok := totals[key]
		if !ok {
			t = &bucketTotals{realized: decimal.Zero, pending: decimal.Zero}
			totals[key] = t
			order = append(order, key)
		}

		t.bookings += row.Count
		switch row.PaymentStatus {
		case domain.PaymentStatusPaid:
			t.realized = t.realized.Add(row.Total)
			totalRealized = totalRealized.Add(row.Total)
		case domain.PaymentStatusPending:
			t.pending = t.pending.Add(row.Total)
		}
	}

	for _, key := range order {
		t := totals[key]
		resp.Points = append(resp.Points, RevenuePoint{
			Bucket:   key,
			Realized: t.realized.StringFixed(2),
			Pending:  t.pending.StringFixed(2),
			Bookings: t.bookings,
		})
	}

	resp.TotalRealized = totalRealized.StringFixed(2)
	return resp
}

func bucketLayout(bucket domain.RevenueBucket) string {
	if bucket == domain.BucketMonth {
		return "2006-01"
	}
	return domain.DateFormat
}
