package get_schedule

import (
	"context"

	"github.com/fieldmax/booking-service/internal/service/venues/models"
)

type VenuesService interface {
	GetSchedule(ctx context.Context, venueID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
