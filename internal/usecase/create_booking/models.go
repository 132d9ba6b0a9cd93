package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldmax/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID арендатора
	FieldID   int64            // ID площадки
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	UserID      int64            // ID арендатора
	FieldID     int64            // ID площадки
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время окончания
	TotalPrice  decimal.Decimal  // Итоговая стоимость
	Status      string           // Статус бронирования

	// Данные платежа
	OrderID   string  // Идентификатор заказа в платёжном шлюзе
	SnapToken *string // Токен оплаты, nil если шлюз недоступен

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
