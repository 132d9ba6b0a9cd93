package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/fieldmax/booking-service/internal/domain"
	"github.com/fieldmax/booking-service/pkg/dbmetrics"
	"github.com/fieldmax/booking-service/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"field_id",
	"user_id",
	"booking_date",
	"start_time",
	"end_time",
	"total_price",
	"status",
	"payment_status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Двойное бронирование одного слота закрыто на уровне БД: частичный уникальный
// индекс на (field_id, booking_date, start_time) по активным статусам превращает
// гонку "проверил-вставил" в ErrSlotTaken, а не во второе бронирование
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"field_id",
			"user_id",
			"booking_date",
			"start_time",
			"end_time",
			"total_price",
			"status",
			"payment_status",
		).
		Values(
			booking.FieldID,
			booking.UserID,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
			booking.TotalPrice,
			booking.Status,
			booking.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByFieldWithFilter получает бронирования поля с фильтрацией по дате и статусу
//
// Внутри транзакции для конкретной даты добавляет FOR UPDATE:
// usecase создания бронирования блокирует существующие бронирования слота
// на время проверки доступности
func (r *Repository) GetByFieldWithFilter(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"field_id": filter.FieldID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Отменённые бронирования не занимают слот
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListByUser получает страницу бронирований пользователя
// Поддерживает оба плана пагинации (offset и cursor), выбранных на границе API
func (r *Repository) ListByUser(ctx context.Context, userID int64, page domain.PageRequest) (*domain.BookingPage, error) {
	base := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID})

	countBase := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"user_id": userID})

	return r.listPage(ctx, base, countBase, "id", page)
}

// ListByVenue получает страницу бронирований площадки (для владельца/админа)
func (r *Repository) ListByVenue(ctx context.Context, filter domain.VenueBookingsFilter, page domain.PageRequest) (*domain.BookingPage, error) {
	prefixed := make([]string, len(bookingColumns))
	for i, col := range bookingColumns {
		prefixed[i] = "b." + col
	}

	base := psqlbuilder.Select(prefixed...).
		From("bookings b").
		Join("fields f ON f.id = b.field_id").
		Where(squirrel.Eq{"f.venue_id": filter.VenueID})

	countBase := psqlbuilder.Select("COUNT(*)").
		From("bookings b").
		Join("fields f ON f.id = b.field_id").
		Where(squirrel.Eq{"f.venue_id": filter.VenueID})

	if filter.StartDate != nil {
		base = base.Where(squirrel.GtOrEq{"b.booking_date": *filter.StartDate})
		countBase = countBase.Where(squirrel.GtOrEq{"b.booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		base = base.Where(squirrel.LtOrEq{"b.booking_date": *filter.EndDate})
		countBase = countBase.Where(squirrel.LtOrEq{"b.booking_date": *filter.EndDate})
	}
	if filter.Status != nil {
		base = base.Where(squirrel.Eq{"b.status": *filter.Status})
		countBase = countBase.Where(squirrel.Eq{"b.status": *filter.Status})
	}

	return r.listPage(ctx, base, countBase, "b.id", page)
}

// listPage выполняет один из двух планов пагинации над подготовленным запросом
func (r *Repository) listPage(
	ctx context.Context,
	base squirrel.SelectBuilder,
	countBase squirrel.SelectBuilder,
	idColumn string,
	page domain.PageRequest,
) (*domain.BookingPage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	switch page.Mode {
	case domain.PageModeCursor:
		selectBuilder := base.OrderBy(idColumn + " DESC")
		if page.Cursor != nil {
			selectBuilder = selectBuilder.Where(squirrel.Lt{idColumn: *page.Cursor})
		}
		// Выбираем на одну строку больше, чтобы понять, есть ли следующая страница
		selectBuilder = selectBuilder.Limit(uint64(page.Take) + 1)

		query, args, err := selectBuilder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: listPage - build cursor query: %v", ErrBuildQuery, err)
		}

		rows, err := executor.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("%w: listPage - execute cursor query: %v", ErrExecQuery, err)
		}
		defer rows.Close()

		bookings, err := r.scanBookings(rows)
		if err != nil {
			return nil, err
		}

		meta := domain.PageMeta{}
		if len(bookings) > page.Take {
			bookings = bookings[:page.Take]
			last := bookings[len(bookings)-1].ID
			meta.NextCursor = &last
		}

		return &domain.BookingPage{Bookings: bookings, Meta: meta}, nil

	default: // PageModeOffset
		countQuery, countArgs, err := countBase.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: listPage - build count query: %v", ErrBuildQuery, err)
		}

		var total int64
		if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
			return nil, fmt.Errorf("%w: listPage - scan count: %v", ErrScanRow, err)
		}

		query, args, err := base.
			OrderBy(idColumn + " DESC").
			Limit(uint64(page.Limit)).
			Offset(uint64((page.Page - 1) * page.Limit)).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: listPage - build offset query: %v", ErrBuildQuery, err)
		}

		rows, err := executor.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("%w: listPage - execute offset query: %v", ErrExecQuery, err)
		}
		defer rows.Close()

		bookings, err := r.scanBookings(rows)
		if err != nil {
			return nil, err
		}

		return &domain.BookingPage{
			Bookings: bookings,
			Meta: domain.PageMeta{
				Page:  page.Page,
				Limit: page.Limit,
				Total: total,
			},
		}, nil
	}
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// UpdatePaymentState обновляет статус бронирования вместе со статусом оплаты
// Используется обработчиком callback платёжного шлюза
func (r *Repository) UpdatePaymentState(ctx context.Context, id int64, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("payment_status", paymentStatus).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentState - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdatePaymentState")
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// Revenue агрегирует выручку: сумма total_price по статусам оплаты,
// сгруппированная по временным корзинам (день или месяц)
func (r *Repository) Revenue(ctx context.Context, filter domain.RevenueFilter) ([]domain.RevenueRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Гранулярность подставляется из доменного перечисления, не из пользовательского ввода
	bucket := "day"
	if filter.Bucket == domain.BucketMonth {
		bucket = "month"
	}

	selectBuilder := psqlbuilder.Select(
		fmt.Sprintf("date_trunc('%s', b.booking_date) AS bucket", bucket),
		"b.payment_status",
		"COALESCE(SUM(b.total_price), 0)",
		"COUNT(*)",
	).
		From("bookings b").
		Join("fields f ON f.id = b.field_id").
		Where(squirrel.GtOrEq{"b.booking_date": filter.From}).
		Where(squirrel.LtOrEq{"b.booking_date": filter.To}).
		GroupBy("bucket", "b.payment_status").
		OrderBy("bucket ASC", "b.payment_status ASC")

	if len(filter.VenueIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"f.venue_id": filter.VenueIDs})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Revenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Revenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.RevenueRow, 0)
	for rows.Next() {
		var row domain.RevenueRow
		if err := rows.Scan(&row.Bucket, &row.PaymentStatus, &row.Total, &row.Count); err != nil {
			return nil, fmt.Errorf("%w: Revenue - scan row: %v", ErrScanRow, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Revenue - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// execExpectingRow выполняет запрос и проверяет, что затронута хотя бы одна строка
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.FieldID,
		&booking.UserID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.TotalPrice,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
