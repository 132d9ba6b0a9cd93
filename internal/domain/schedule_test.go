package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldmax/booking-service/pkg/types"
)

func timePtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func TestResolveDayWindow_WeeklyOnly(t *testing.T) {
	weekly := &Schedule{DayOfWeek: 1, OpenTime: "08:00", CloseTime: "22:00"}

	window := ResolveDayWindow(weekly, nil)

	assert.True(t, window.IsOpen)
	assert.Equal(t, types.TimeString("08:00"), window.OpenTime)
	assert.Equal(t, types.TimeString("22:00"), window.CloseTime)
}

func TestResolveDayWindow_NoSchedule(t *testing.T) {
	window := ResolveDayWindow(nil, nil)

	assert.False(t, window.IsOpen)
}

func TestResolveDayWindow_ClosedOverrideWins(t *testing.T) {
	weekly := &Schedule{DayOfWeek: 1, OpenTime: "08:00", CloseTime: "22:00"}
	override := &ScheduleOverride{IsClosed: true}

	window := ResolveDayWindow(weekly, override)

	assert.False(t, window.IsOpen)
}

func TestResolveDayWindow_OverrideHoursReplaceWeekly(t *testing.T) {
	weekly := &Schedule{DayOfWeek: 1, OpenTime: "08:00", CloseTime: "22:00"}
	override := &ScheduleOverride{OpenTime: timePtr("10:00"), CloseTime: timePtr("18:00")}

	window := ResolveDayWindow(weekly, override)

	assert.True(t, window.IsOpen)
	assert.Equal(t, types.TimeString("10:00"), window.OpenTime)
	assert.Equal(t, types.TimeString("18:00"), window.CloseTime)
}

func TestResolveDayWindow_OverrideWithoutHoursMeansClosed(t *testing.T) {
	weekly := &Schedule{DayOfWeek: 1, OpenTime: "08:00", CloseTime: "22:00"}
	override := &ScheduleOverride{OpenTime: timePtr("10:00")}

	window := ResolveDayWindow(weekly, override)

	assert.False(t, window.IsOpen)
}

func TestResolveDayWindow_OverrideWithoutWeekly(t *testing.T) {
	override := &ScheduleOverride{OpenTime: timePtr("09:00"), CloseTime: timePtr("13:00")}

	window := ResolveDayWindow(nil, override)

	assert.True(t, window.IsOpen)
	assert.Equal(t, types.TimeString("09:00"), window.OpenTime)
	assert.Equal(t, types.TimeString("13:00"), window.CloseTime)
}
