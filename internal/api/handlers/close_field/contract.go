package close_field

import (
	"context"

	"github.com/fieldmax/booking-service/internal/service/venues/models"
)

type VenuesService interface {
	CloseField(ctx context.Context, fieldID int64, req *models.CloseFieldRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
