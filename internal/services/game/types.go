package game

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/qwixx/internal/common/clock"
	"github.com/KirkDiggler/qwixx/internal/common/uuid"
	"github.com/KirkDiggler/qwixx/internal/dice"
	"github.com/KirkDiggler/qwixx/internal/models"
	"github.com/KirkDiggler/qwixx/internal/players"
)

// Config holds configuration for the game service
type Config struct {
	// Players in table order. Seat i plays card i for the whole game.
	Players []players.Player

	// Service dependencies
	DiceRoller dice.Roller
	Clock      clock.Clock
	UUID       uuid.Generator

	// Logger receives per-round logs. Nil means no logging.
	Logger *zerolog.Logger
}

// PlayInput contains parameters for a single game run
type PlayInput struct {
	// StartingRoller is the seat that rolls first. Defaults to seat 0.
	StartingRoller int
}

// PlayOutput contains the result of a finished game
type PlayOutput struct {
	// GameID tags this run in logs
	GameID string

	// Scores holds each seat's final result, in seat order
	Scores []SeatScore

	// Rounds is the number of completed rounds
	Rounds int

	// StartedAt is when the game began
	StartedAt time.Time

	// CompletedAt is when the game ended
	CompletedAt time.Time
}

// SeatScore is one player's final tally
type SeatScore struct {
	// Seat is the player's position in table order
	Seat int

	// Score is the card's final score
	Score int

	// Penalties is the number of penalties the card accumulated
	Penalties int

	// LockedColors lists the rows this card locked
	LockedColors []models.Color
}
