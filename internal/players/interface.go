package players

import (
	"context"

	"github.com/KirkDiggler/qwixx/internal/dice"
	"github.com/KirkDiggler/qwixx/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_player.go github.com/KirkDiggler/qwixx/internal/players Player

// Player picks one move per sub-round. Implementations must return a move
// drawn from the supplied legal-move set; the engine does not re-validate
// the choice. The call may block on external input, so it carries a context.
type Player interface {
	// Choose returns the player's move for this sub-round.
	Choose(ctx context.Context, input *ChooseInput) (models.Move, error)
}

// ChooseInput carries everything a player may consult when choosing.
type ChooseInput struct {
	// Card is the acting player's scorecard. Read it, don't mark it; the
	// engine applies the chosen move itself.
	Card *models.Card

	// Roll is the current dice roll.
	Roll *dice.Roll

	// TurnsToRoller is the number of turns until this player rolls.
	// Zero means the player is the active roller.
	TurnsToRoller int

	// Moves is the legal-move set for this sub-round. Pass is always the
	// first element.
	Moves []models.Move
}
