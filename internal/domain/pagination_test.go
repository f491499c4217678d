package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationCursor_OffsetOf(t *testing.T) {
	c := NewPaginationCursor(100)

	for page, want := range map[int]int{1: 0, 2: 100, 7: 600} {
		got, err := c.OffsetOf(page)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := c.OffsetOf(0)
	require.ErrorIs(t, err, ErrInvalidPage)
}

func TestPaginationCursor_PageCount(t *testing.T) {
	c := NewPaginationCursor(10)
	assert.Equal(t, 0, c.PageCount())

	c.Total = 1
	assert.Equal(t, 1, c.PageCount())

	c.Total = 10
	assert.Equal(t, 1, c.PageCount())

	c.Total = 11
	assert.Equal(t, 2, c.PageCount())
}

func TestPaginationCursor_Navigation(t *testing.T) {
	c := NewPaginationCursor(10)
	c.Total = 25

	assert.False(t, c.HasPrev())
	assert.True(t, c.HasNext())
	assert.Equal(t, 1, c.PrevPage())
	assert.Equal(t, 2, c.NextPage())

	c.Page = 3
	assert.Equal(t, 20, c.Offset())
	assert.False(t, c.HasNext())
	assert.Equal(t, 3, c.NextPage())
	assert.Equal(t, 2, c.PrevPage())

	c.Reset()
	assert.Equal(t, 1, c.Page)
	assert.Equal(t, 0, c.Total)
	assert.Equal(t, 10, c.PageSize)
}

func TestNewPaginationCursor_ClampsPageSize(t *testing.T) {
	assert.Equal(t, 1, NewPaginationCursor(0).PageSize)
}
