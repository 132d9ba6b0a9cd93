package create_schedule_override

import (
	"context"

	"github.com/fieldmax/booking-service/internal/service/venues/models"
)

type VenuesService interface {
	CreateOverride(ctx context.Context, venueID int64, req *models.CreateOverrideRequest) (*models.OverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
