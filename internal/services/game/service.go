package game

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/qwixx/internal/common/clock"
	"github.com/KirkDiggler/qwixx/internal/common/uuid"
	"github.com/KirkDiggler/qwixx/internal/dice"
	"github.com/KirkDiggler/qwixx/internal/models"
	"github.com/KirkDiggler/qwixx/internal/players"
)

// service implements the Service interface
type service struct {
	players    []players.Player
	diceRoller dice.Roller
	clock      clock.Clock
	uuid       uuid.Generator
	logger     zerolog.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if len(cfg.Players) == 0 {
		return nil, ErrNoPlayers
	}
	for _, p := range cfg.Players {
		if p == nil {
			return nil, ErrNilPlayer
		}
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	// Optional dependencies fall back to real implementations
	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	gen := cfg.UUID
	if gen == nil {
		gen = uuid.New()
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &service{
		players:    cfg.Players,
		diceRoller: cfg.DiceRoller,
		clock:      clk,
		uuid:       gen,
		logger:     logger,
	}, nil
}

// gameState is one run's mutable state. Seat i of players plays cards[i]
// for the whole game; rollerID rotates across rounds; roll is replaced at
// every round start and is never shared between games.
type gameState struct {
	cards    []*models.Card
	rollerID int
	roll     *dice.Roll
}

// newGame creates fresh cards and an independent initial roll for one run.
func (s *service) newGame(startingRoller int) *gameState {
	cards := make([]*models.Card, len(s.players))
	for i := range cards {
		cards[i] = models.NewCard()
	}
	g := &gameState{
		cards:    cards,
		rollerID: startingRoller,
	}
	g.roll = dice.NewRoll(s.diceRoller, nil)
	return g
}

// Play runs the game to completion
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil {
		input = &PlayInput{}
	}
	if input.StartingRoller < 0 || input.StartingRoller >= len(s.players) {
		return nil, ErrBadStartingRoller
	}

	gameID := s.uuid.NewID()
	startedAt := s.clock.Now()
	logger := s.logger.With().Str("game_id", gameID).Logger()
	logger.Info().Int("players", len(s.players)).Msg("game started")

	g := s.newGame(input.StartingRoller)

	rounds := 0
	for {
		over, err := s.doRound(ctx, logger, g)
		if err != nil {
			return nil, err
		}
		rounds++
		if over {
			break
		}
	}

	output := &PlayOutput{
		GameID:      gameID,
		Scores:      make([]SeatScore, 0, len(g.cards)),
		Rounds:      rounds,
		StartedAt:   startedAt,
		CompletedAt: s.clock.Now(),
	}
	for seat, card := range g.cards {
		output.Scores = append(output.Scores, SeatScore{
			Seat:         seat,
			Score:        card.Score(),
			Penalties:    card.Penalties(),
			LockedColors: card.LockedColors(),
		})
	}

	logger.Info().Int("rounds", rounds).Msg("game over")
	return output, nil
}

// doRound plays one full round and reports whether the game is over:
// roll, neutral phase for every seat, termination check, colored phase for
// the roller, penalty on no progress, roller rotation, termination check.
func (s *service) doRound(ctx context.Context, logger zerolog.Logger, g *gameState) (bool, error) {
	g.roll = dice.NewRoll(s.diceRoller, g.lockedColors())
	logger.Debug().
		Int("roller", g.rollerID).
		Str("dice", g.roll.String()).
		Msg("round rolled")

	baseline := g.rollerCard().MarkCount()

	// Neutral phase: every seat, roller included, may take the white sum.
	tableTakes := g.roll.TableTakes()
	for seat := range s.players {
		if err := s.turn(ctx, logger, g, seat, tableTakes); err != nil {
			return false, err
		}
	}
	if g.isOver() {
		return true, nil
	}

	// Colored phase: the roller alone may take a colored pair.
	if err := s.turn(ctx, logger, g, g.rollerID, g.roll.RollerTakes()); err != nil {
		return false, err
	}

	if g.rollerCard().MarkCount() == baseline {
		g.rollerCard().AddPenalty()
		logger.Debug().
			Int("seat", g.rollerID).
			Int("penalties", g.rollerCard().Penalties()).
			Msg("roller made no progress")
	}

	g.rollerID = (g.rollerID + 1) % len(g.cards)
	return g.isOver(), nil
}

// turn runs one seat's sub-round against the given candidates.
func (s *service) turn(ctx context.Context, logger zerolog.Logger, g *gameState, seat int, candidates []models.Take) error {
	card := g.cards[seat]
	moves := card.LegalMoves(candidates)

	move, err := s.players[seat].Choose(ctx, &players.ChooseInput{
		Card:          card,
		Roll:          g.roll,
		TurnsToRoller: g.turnsToRoller(seat),
		Moves:         moves,
	})
	if err != nil {
		return err
	}

	if err := card.Apply(move); err != nil {
		return err
	}

	logger.Debug().
		Int("seat", seat).
		Str("move", move.String()).
		Msg("move applied")
	return nil
}

func (g *gameState) rollerCard() *models.Card {
	return g.cards[g.rollerID]
}

// turnsToRoller is the cyclic distance from seat to its next turn as
// roller. Zero means seat is the active roller.
func (g *gameState) turnsToRoller(seat int) int {
	n := len(g.cards)
	return (seat - g.rollerID + n) % n
}

// lockedColors gathers every color locked on any card. The set is keyed by
// color so dice exclusion can never confuse a row position with a row.
func (g *gameState) lockedColors() map[models.Color]bool {
	locked := make(map[models.Color]bool)
	for _, card := range g.cards {
		for _, color := range card.LockedColors() {
			locked[color] = true
		}
	}
	return locked
}

// isOver checks the single termination predicate: more than one distinct
// color locked across all cards, or any card at the penalty limit.
func (g *gameState) isOver() bool {
	if len(g.lockedColors()) > 1 {
		return true
	}
	for _, card := range g.cards {
		if card.Penalties() >= models.PenaltyLimit {
			return true
		}
	}
	return false
}
