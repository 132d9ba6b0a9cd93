package get_available_slots

import (
	"time"

	"github.com/fieldmax/booking-service/internal/domain"
	getAvailableSlots "github.com/fieldmax/booking-service/internal/usecase/get_available_slots"
)

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Ответ - плоский массив времён начала свободных слотов: ["08:00", "09:00", ...]
func FromUseCaseResponse(resp *getAvailableSlots.Response) []string {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}
	return slots
}

// ToUseCaseRequest создает запрос use case из параметров URL
func ToUseCaseRequest(fieldID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		FieldID: fieldID,
		Date:    date,
	}, nil
}
