package models

const (
	// PenaltyLimit is the penalty count that ends the game
	PenaltyLimit = 4

	// PenaltyPoints is the score cost of a single penalty
	PenaltyPoints = 5
)

// Card is one player's scorecard: the grid of four rows plus the penalties
// accumulated for rounds in which the player rolled but marked nothing.
type Card struct {
	grid      *Grid
	penalties int
}

// NewCard creates an unmarked card with no penalties.
func NewCard() *Card {
	return &Card{grid: NewGrid()}
}

// Grid returns the card's rows.
func (c *Card) Grid() *Grid {
	return c.grid
}

// Penalties returns the penalties taken so far.
func (c *Card) Penalties() int {
	return c.penalties
}

// AddPenalty records a round in which the roller made no progress.
func (c *Card) AddPenalty() {
	c.penalties++
}

// MarkCount sums marks across the card's rows.
func (c *Card) MarkCount() int {
	return c.grid.MarkCount()
}

// LockedColors returns the scoring colors this card has locked.
func (c *Card) LockedColors() []Color {
	return c.grid.LockedColors()
}

// Score totals the row scores and subtracts the penalty cost.
func (c *Card) Score() int {
	total := -c.penalties * PenaltyPoints
	for _, color := range ScoringColors {
		total += c.grid.Row(color).Score()
	}
	return total
}

// LegalMoves returns pass followed by every candidate the grid accepts.
// Pass is always legal.
func (c *Card) LegalMoves(candidates []Take) []Move {
	moves := []Move{PassMove()}
	for _, take := range c.grid.ValidTakes(candidates) {
		moves = append(moves, TakeMove(take))
	}
	return moves
}

// Apply marks a take on its row; pass is a no-op. The engine only ever
// applies moves drawn from LegalMoves, so an error here means a decision
// collaborator broke its contract.
func (c *Card) Apply(m Move) error {
	switch m.Kind {
	case MovePass:
		return nil
	case MoveTake:
		row := c.grid.Row(m.Take.Color)
		if row == nil {
			return ErrNoRowForColor
		}
		return row.Mark(m.Take.Spot)
	default:
		return ErrMalformedMove
	}
}
