package dashboard

import (
	"context"

	"github.com/fieldmax/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Revenue агрегирует выручку по временным интервалам и статусам оплаты
	Revenue(ctx context.Context, filter domain.RevenueFilter) ([]domain.RevenueRow, error)
}

// VenueRepository интерфейс репозитория комплексов
type VenueRepository interface {
	GetIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
