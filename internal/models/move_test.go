package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/qwixx/internal/models"
)

func TestParseMoveTake(t *testing.T) {
	move, err := models.ParseMove("R8")
	require.NoError(t, err)
	assert.Equal(t, models.TakeMove(models.Take{Color: models.ColorRed, Spot: 8}), move)

	move, err = models.ParseMove("b12")
	require.NoError(t, err)
	assert.Equal(t, models.TakeMove(models.Take{Color: models.ColorBlue, Spot: 12}), move)
}

func TestParseMovePass(t *testing.T) {
	for _, s := range []string{"P", "p", " p \n"} {
		move, err := models.ParseMove(s)
		require.NoError(t, err, "input %q", s)
		assert.Equal(t, models.PassMove(), move)
	}
}

func TestParseMoveErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", models.ErrMalformedMove},
		{"R", models.ErrMalformedMove},
		{"Rx", models.ErrMalformedMove},
		{"X5", models.ErrUnknownColor},
		{"85", models.ErrUnknownColor},
		{"W5", models.ErrNoRowForColor},
	}
	for _, tt := range tests {
		_, err := models.ParseMove(tt.input)
		assert.ErrorIs(t, err, tt.want, "input %q", tt.input)
	}
}

func TestMoveRoundTrip(t *testing.T) {
	moves := []models.Move{
		models.PassMove(),
		models.TakeMove(models.Take{Color: models.ColorRed, Spot: 8}),
		models.TakeMove(models.Take{Color: models.ColorGreen, Spot: 12}),
	}
	for _, want := range moves {
		got, err := models.ParseMove(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestMoveZeroValueIsPass(t *testing.T) {
	var move models.Move
	assert.Equal(t, models.PassMove(), move)
	assert.Equal(t, "P", move.String())
}
