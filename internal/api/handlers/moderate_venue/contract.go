package moderate_venue

import (
	"context"

	"github.com/fieldmax/booking-service/internal/service/venues/models"
)

type VenuesService interface {
	Moderate(ctx context.Context, venueID int64, req *models.ModerateVenueRequest) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
