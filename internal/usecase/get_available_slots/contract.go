package get_available_slots

import (
	"context"
	"time"

	"github.com/fieldmax/booking-service/internal/domain"
)

// FieldRepository интерфейс репозитория площадок
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
}

// VenueRepository интерфейс репозитория комплексов
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	// GetWeekly получает недельное расписание комплекса на указанный день недели
	GetWeekly(ctx context.Context, venueID int64, dayOfWeek int) (*domain.Schedule, error)
	// GetOverride получает исключение из расписания на конкретную дату
	GetOverride(ctx context.Context, venueID int64, date time.Time) (*domain.ScheduleOverride, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByFieldWithFilter получает все бронирования площадки на конкретную дату
	GetByFieldWithFilter(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
