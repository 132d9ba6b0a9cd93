package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString_Valid(t *testing.T) {
	ts, err := NewTimeStringFromString("08:30")

	require.NoError(t, err)
	assert.Equal(t, "08:30", ts.String())
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	for _, s := range []string{"", "8:30am", "25:00", "12:60", "abc"} {
		_, err := NewTimeStringFromString(s)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", s)
	}
}

func TestTimeString_IsBefore(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("10:00").IsBefore("09:00"))
	assert.True(t, TimeString("23:00").IsBefore("24:00"))
}

func TestTimeString_IsAfter(t *testing.T) {
	assert.True(t, TimeString("10:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
	assert.True(t, TimeString("24:00").IsAfter("23:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("08:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), ts)

	ts, err = TimeString("22:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), ts)
}

func TestTimeString_AddMinutes_Overflow(t *testing.T) {
	_, err := TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrMinutesOverflow)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("14:30")))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 1, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestTimeString_Scan_UnsupportedType(t *testing.T) {
	var ts TimeString
	assert.ErrorIs(t, ts.Scan(42), ErrInvalidTimeString)
}
