package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueBucket is the granularity of the revenue time series
type RevenueBucket string

const (
	BucketDay   RevenueBucket = "day"
	BucketMonth RevenueBucket = "month"
)

// RevenueFilter holds revenue aggregation parameters
// An empty VenueIDs list means all venues (admin scope)
type RevenueFilter struct {
	VenueIDs []int64
	From     time.Time
	To       time.Time
	Bucket   RevenueBucket
}

// RevenueRow is one aggregation row: the sum of booking totals
// with a given payment status within a single time bucket
type RevenueRow struct {
	Bucket        time.Time
	PaymentStatus PaymentStatus
	Total         decimal.Decimal
	Count         int64
}
