package domain

import (
	"time"

	"github.com/fieldmax/booking-service/pkg/types"
)

// Schedule represents recurring weekly open hours for a venue
// DayOfWeek uses 0=Sunday..6=Saturday, matching time.Weekday
type Schedule struct {
	ID        int64
	VenueID   int64
	DayOfWeek int
	OpenTime  types.TimeString
	CloseTime types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleOverride represents a date-specific exception to the weekly schedule:
// either the venue is closed for the day, or it uses replacement hours
type ScheduleOverride struct {
	ID        int64
	VenueID   int64
	Date      time.Time
	IsClosed  bool
	OpenTime  *types.TimeString
	CloseTime *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayWindow open hours resolved for a concrete date
type DayWindow struct {
	IsOpen    bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// ResolveDayWindow resolves the open hours for a date:
// a closed override wins, an override with hours replaces the weekly row,
// otherwise the weekly schedule for the weekday applies; no data means closed
func ResolveDayWindow(weekly *Schedule, override *ScheduleOverride) DayWindow {
	if override != nil {
		if override.IsClosed || override.OpenTime == nil || override.CloseTime == nil {
			return DayWindow{IsOpen: false}
		}
		return DayWindow{IsOpen: true, OpenTime: *override.OpenTime, CloseTime: *override.CloseTime}
	}
	if weekly == nil {
		return DayWindow{IsOpen: false}
	}
	return DayWindow{IsOpen: true, OpenTime: weekly.OpenTime, CloseTime: weekly.CloseTime}
}
