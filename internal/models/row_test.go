package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/qwixx/internal/models"
)

func redRow(t *testing.T) *models.Row {
	t.Helper()
	return models.NewGrid().Row(models.ColorRed)
}

func TestRowOpenSpots(t *testing.T) {
	row := redRow(t)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, row.OpenSpots())

	require.NoError(t, row.Mark(4))
	require.NoError(t, row.Mark(7))

	assert.Equal(t, []int{8, 9, 10, 11, 12}, row.OpenSpots())
	assert.Equal(t, []int{4, 7}, row.Marks())
}

func TestRowValidSpot(t *testing.T) {
	row := redRow(t)
	require.NoError(t, row.Mark(4))
	require.NoError(t, row.Mark(7))

	assert.True(t, row.ValidSpot(8))
	assert.False(t, row.ValidSpot(7), "marked spots are no longer open")
	assert.False(t, row.ValidSpot(5), "skipped spots are no longer open")
	assert.False(t, row.ValidSpot(12), "the final spot needs five marks first")
}

func TestRowMarkRejectsInvalidSpot(t *testing.T) {
	row := redRow(t)
	require.NoError(t, row.Mark(4))
	require.NoError(t, row.Mark(7))

	assert.ErrorIs(t, row.Mark(5), models.ErrInvalidSpot)
	assert.ErrorIs(t, row.Mark(12), models.ErrInvalidSpot)
	assert.Equal(t, []int{4, 7}, row.Marks(), "rejected marks must not change the row")
}

func TestRowLock(t *testing.T) {
	row := redRow(t)
	for _, spot := range []int{4, 7, 8, 9, 10} {
		require.NoError(t, row.Mark(spot))
	}

	assert.False(t, row.Locked())
	assert.True(t, row.ValidSpot(12), "five marks make the final spot markable")

	require.NoError(t, row.Mark(12))

	assert.True(t, row.Locked())
	for spot := 2; spot <= 12; spot++ {
		assert.False(t, row.ValidSpot(spot), "locked rows accept nothing")
	}
	assert.ErrorIs(t, row.Mark(11), models.ErrInvalidSpot)
}

func TestRowScore(t *testing.T) {
	row := redRow(t)
	assert.Equal(t, 0, row.Score())

	require.NoError(t, row.Mark(2))
	assert.Equal(t, 1, row.Score())

	require.NoError(t, row.Mark(3))
	require.NoError(t, row.Mark(4))
	assert.Equal(t, 6, row.Score())
}

func TestRowScoreCountsLockAsExtraMark(t *testing.T) {
	row := redRow(t)
	for _, spot := range []int{4, 7, 8, 9, 10, 12} {
		require.NoError(t, row.Mark(spot))
	}

	require.True(t, row.Locked())
	assert.Equal(t, 28, row.Score(), "six marks plus the lock bonus")
}

func TestDescendingRow(t *testing.T) {
	row := models.NewGrid().Row(models.ColorGreen)
	assert.Equal(t, []int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2}, row.Spots())

	require.NoError(t, row.Mark(12))
	require.NoError(t, row.Mark(5))

	assert.Equal(t, []int{4, 3, 2}, row.OpenSpots())
	assert.False(t, row.ValidSpot(7), "direction is fixed, 7 is already behind")
	assert.False(t, row.ValidSpot(2), "2 is the final spot of a descending row")
}
