package domain

// Slot constants
const (
	// SlotDurationMinutes длительность слота, совпадает с единицей тарификации (цена за час)
	SlotDurationMinutes = 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Pagination constants
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ActiveStatuses список статусов, при которых бронирование занимает слот
// Используется при подсчёте доступных слотов и в частичном уникальном индексе
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// InactiveStatuses список статусов, при которых слот освобождён
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
