package venues

import (
	"context"
	"time"

	"github.com/fieldmax/booking-service/internal/domain"
)

// VenueRepository интерфейс репозитория комплексов
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	ListByStatus(ctx context.Context, status domain.VenueStatus) ([]*domain.Venue, error)
	UpdateStatus(ctx context.Context, id int64, status domain.VenueStatus) error
}

// FieldRepository интерфейс репозитория площадок
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
	SetClosed(ctx context.Context, id int64, closed bool) error
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	ListWeekly(ctx context.Context, venueID int64) ([]*domain.Schedule, error)
	UpsertWeekly(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	GetOverride(ctx context.Context, venueID int64, date time.Time) (*domain.ScheduleOverride, error)
	CreateOverride(ctx context.Context, override *domain.ScheduleOverride) (*domain.ScheduleOverride, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
