package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание на день недели не задано
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrOverrideNotFound возвращается, когда исключение на дату не задано
	ErrOverrideNotFound = errors.New("schedule.repository: override not found")

	// ErrInvalidHours возвращается, когда открытие не раньше закрытия
	ErrInvalidHours = errors.New("schedule.repository: open time must be before close time")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
