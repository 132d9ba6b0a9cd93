package get_venue_bookings

import (
	"context"

	"github.com/fieldmax/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetVenueBookings(ctx context.Context, req *models.GetVenueBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
