package get_user_bookings

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldmax/booking-service/internal/domain"
)

func TestParsePageRequest_Defaults(t *testing.T) {
	req, err := ParsePageRequest(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, domain.PageModeOffset, req.Mode)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, domain.DefaultPageLimit, req.Limit)
}

func TestParsePageRequest_OffsetMode(t *testing.T) {
	req, err := ParsePageRequest(url.Values{"page": {"3"}, "limit": {"50"}})

	require.NoError(t, err)
	assert.Equal(t, domain.PageModeOffset, req.Mode)
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, 50, req.Limit)
}

func TestParsePageRequest_CursorMode(t *testing.T) {
	req, err := ParsePageRequest(url.Values{"take": {"10"}, "cursor": {"42"}})

	require.NoError(t, err)
	assert.Equal(t, domain.PageModeCursor, req.Mode)
	assert.Equal(t, 10, req.Take)
	require.NotNil(t, req.Cursor)
	assert.Equal(t, int64(42), *req.Cursor)
}

func TestParsePageRequest_CursorFirstPage(t *testing.T) {
	req, err := ParsePageRequest(url.Values{"take": {"10"}})

	require.NoError(t, err)
	assert.Equal(t, domain.PageModeCursor, req.Mode)
	assert.Nil(t, req.Cursor)
}

func TestParsePageRequest_MixedModes(t *testing.T) {
	_, err := ParsePageRequest(url.Values{"page": {"1"}, "take": {"10"}})
	assert.ErrorIs(t, err, errMixedPagination)

	_, err = ParsePageRequest(url.Values{"limit": {"20"}, "cursor": {"42"}})
	assert.ErrorIs(t, err, errMixedPagination)
}

func TestParsePageRequest_InvalidValues(t *testing.T) {
	_, err := ParsePageRequest(url.Values{"page": {"abc"}})
	assert.ErrorIs(t, err, errInvalidPagination)

	_, err = ParsePageRequest(url.Values{"cursor": {"-5"}})
	assert.ErrorIs(t, err, errInvalidPagination)

	_, err = ParsePageRequest(url.Values{"take": {"ten"}})
	assert.ErrorIs(t, err, errInvalidPagination)
}

func TestParsePageRequest_LimitClamped(t *testing.T) {
	req, err := ParsePageRequest(url.Values{"limit": {"1000"}})

	require.NoError(t, err)
	assert.Equal(t, domain.MaxPageLimit, req.Limit)
}
