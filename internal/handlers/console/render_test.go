package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/qwixx/internal/models"
)

func TestRenderFreshCard(t *testing.T) {
	lines := strings.Split(RenderCard(models.NewCard()), "\n")
	require.Len(t, lines, 6)

	// The final spot renders blank until five marks exist
	assert.Equal(t, "R  2  3  4  5  6  7  8  9 10 11    L", lines[0])
	assert.Equal(t, "Y  2  3  4  5  6  7  8  9 10 11    L", lines[1])
	assert.Equal(t, "G 12 11 10  9  8  7  6  5  4  3    L", lines[2])
	assert.Equal(t, "B 12 11 10  9  8  7  6  5  4  3    L", lines[3])
	assert.Equal(t, strings.Repeat(" ", 31)+"OOOO", lines[4])
}

func TestRenderMarkedRow(t *testing.T) {
	card := models.NewCard()
	row := card.Grid().Row(models.ColorRed)
	require.NoError(t, row.Mark(4))
	require.NoError(t, row.Mark(7))

	lines := strings.Split(RenderCard(card), "\n")
	// Spots before a mark go blank, marks show as X
	assert.Equal(t, "R        X        X  8  9 10 11    L", lines[0])
}

func TestRenderLockedRow(t *testing.T) {
	card := models.NewCard()
	row := card.Grid().Row(models.ColorRed)
	for _, spot := range []int{2, 3, 4, 5, 6, 12} {
		require.NoError(t, row.Mark(spot))
	}

	lines := strings.Split(RenderCard(card), "\n")
	assert.Equal(t, "R  X  X  X  X  X                 X X", lines[0])
}

func TestRenderPenalties(t *testing.T) {
	card := models.NewCard()
	card.AddPenalty()
	card.AddPenalty()

	lines := strings.Split(RenderCard(card), "\n")
	assert.Equal(t, strings.Repeat(" ", 31)+"XXOO", lines[4])
}
