package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/fieldmax/booking-service/internal/domain"
	"github.com/fieldmax/booking-service/pkg/dbmetrics"
	"github.com/fieldmax/booking-service/pkg/psqlbuilder"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с недельным расписанием и исключениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeekly получает недельное расписание площадки на день недели (0=воскресенье..6=суббота)
func (r *Repository) GetWeekly(ctx context.Context, venueID int64, dayOfWeek int) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"venue_id",
		"day_of_week",
		"open_time",
		"close_time",
		"created_at",
		"updated_at",
	).
		From("schedules").
		Where(squirrel.Eq{"venue_id": venueID, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekly - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.Schedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.VenueID,
		&schedule.DayOfWeek,
		&schedule.OpenTime,
		&schedule.CloseTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekly - scan schedule: %v", ErrScanRow, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}

// ListWeekly получает все строки недельного расписания площадки
func (r *Repository) ListWeekly(ctx context.Context, venueID int64) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"venue_id",
		"day_of_week",
		"open_time",
		"close_time",
		"created_at",
		"updated_at",
	).
		From("schedules").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWeekly - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWeekly - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		var schedule domain.Schedule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&schedule.ID,
			&schedule.VenueID,
			&schedule.DayOfWeek,
			&schedule.OpenTime,
			&schedule.CloseTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWeekly - scan row: %v", ErrScanRow, err)
		}

		schedule.CreatedAt = createdAt.Time
		schedule.UpdatedAt = updatedAt.Time

		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWeekly - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// UpsertWeekly создает или заменяет строку недельного расписания
// Уникальность (venue_id, day_of_week) гарантируется индексом, конфликт превращается в UPDATE
func (r *Repository) UpsertWeekly(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if !schedule.OpenTime.IsBefore(schedule.CloseTime) {
		return nil, ErrInvalidHours
	}

	query, args, err := psqlbuilder.Insert("schedules").
		Columns("venue_id", "day_of_week", "open_time", "close_time").
		Values(schedule.VenueID, schedule.DayOfWeek, schedule.OpenTime, schedule.CloseTime).
		Suffix(`ON CONFLICT (venue_id, day_of_week)
			DO UPDATE SET open_time = EXCLUDED.open_time, close_time = EXCLUDED.close_time, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertWeekly - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertWeekly - execute insert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// GetOverride получает исключение из расписания на конкретную дату
func (r *Repository) GetOverride(ctx context.Context, venueID int64, date time.Time) (*domain.ScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"venue_id",
		"date",
		"is_closed",
		"open_time",
		"close_time",
		"created_at",
		"updated_at",
	).
		From("schedule_overrides").
		Where(squirrel.Eq{"venue_id": venueID, "date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - build select query: %v", ErrBuildQuery, err)
	}

	var override domain.ScheduleOverride
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&override.VenueID,
		&override.Date,
		&override.IsClosed,
		&override.OpenTime,
		&override.CloseTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - scan override: %v", ErrScanRow, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}

// CreateOverride создает исключение из расписания на дату
// Повторное исключение на ту же дату заменяет предыдущее
func (r *Repository) CreateOverride(ctx context.Context, override *domain.ScheduleOverride) (*domain.ScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if !override.IsClosed {
		if override.OpenTime == nil || override.CloseTime == nil {
			return nil, ErrInvalidHours
		}
		if !override.OpenTime.IsBefore(*override.CloseTime) {
			return nil, ErrInvalidHours
		}
	}

	query, args, err := psqlbuilder.Insert("schedule_overrides").
		Columns("venue_id", "date", "is_closed", "open_time", "close_time").
		Values(override.VenueID, override.Date, override.IsClosed, override.OpenTime, override.CloseTime).
		Suffix(`ON CONFLICT (venue_id, date)
			DO UPDATE SET is_closed = EXCLUDED.is_closed, open_time = EXCLUDED.open_time, close_time = EXCLUDED.close_time, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateOverride - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateOverride - execute insert: %v", ErrExecQuery, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return override, nil
}
