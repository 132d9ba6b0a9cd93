package get_available_slots

import (
	"time"

	"github.com/fieldmax/booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	FieldID int64     // ID площадки
	Date    time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	FieldID int64              // ID площадки
	Date    time.Time          // Дата, на которую запрашивались слоты
	Slots   []types.TimeString // Время начала каждого свободного слота, по возрастанию
}
