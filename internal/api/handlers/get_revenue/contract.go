package get_revenue

import (
	"context"

	"github.com/fieldmax/booking-service/internal/service/dashboard/models"
)

type DashboardService interface {
	GetRevenue(ctx context.Context, req *models.GetRevenueRequest) (*models.RevenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
