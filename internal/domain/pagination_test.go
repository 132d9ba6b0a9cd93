package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetPage_Normalization(t *testing.T) {
	req := OffsetPage(0, 0)
	assert.Equal(t, PageModeOffset, req.Mode)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, DefaultPageLimit, req.Limit)

	req = OffsetPage(3, 500)
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, MaxPageLimit, req.Limit)
}

func TestCursorPage_Normalization(t *testing.T) {
	req := CursorPage(0, nil)
	assert.Equal(t, PageModeCursor, req.Mode)
	assert.Equal(t, DefaultPageLimit, req.Take)
	assert.Nil(t, req.Cursor)

	cursor := int64(42)
	req = CursorPage(1000, &cursor)
	assert.Equal(t, MaxPageLimit, req.Take)
	assert.Equal(t, int64(42), *req.Cursor)
}
