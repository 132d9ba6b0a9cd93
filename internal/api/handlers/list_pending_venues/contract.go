package list_pending_venues

import (
	"context"

	"github.com/fieldmax/booking-service/internal/service/venues/models"
)

type VenuesService interface {
	ListPending(ctx context.Context) (*models.VenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
