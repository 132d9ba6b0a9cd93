package get_revenue

import (
	"net/url"
	"time"

	"github.com/fieldmax/booking-service/internal/domain"
	"github.com/fieldmax/booking-service/internal/service/dashboard/models"
)

// ToServiceRequest собирает запрос сервиса из query-параметров
// from и to обязательны, bucket по умолчанию day
func ToServiceRequest(userID int64, isAdmin bool, query url.Values) (*models.GetRevenueRequest, error) {
	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		return nil, err
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		return nil, err
	}

	bucket := domain.BucketDay
	if bucketStr := query.Get("bucket"); bucketStr != "" {
		bucket = domain.RevenueBucket(bucketStr)
	}

	return &models.GetRevenueRequest{
		UserID:  userID,
		IsAdmin: isAdmin,
		From:    from,
		To:      to,
		Bucket:  bucket,
	}, nil
}
