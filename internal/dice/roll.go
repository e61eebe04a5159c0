package dice

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/qwixx/internal/models"
)

// WhiteDice is the number of neutral dice in every roll.
const WhiteDice = 2

// Die is a single rolled die.
type Die struct {
	// Color is white for the neutral dice, otherwise the scoring row the
	// die belongs to
	Color models.Color

	// Face is the rolled value, 1..Sides
	Face int
}

func (d Die) String() string {
	return fmt.Sprintf("%s%d", d.Color, d.Face)
}

// Roll is one round's dice: two white dice plus one die per scoring color
// whose row is still open. A fresh Roll is made at the start of every round
// and each game owns its rolls exclusively.
type Roll struct {
	white   []Die
	colored []Die
}

// NewRoll rolls the full dice set, omitting any scoring color present in
// excluded. The exclusion set is keyed by color, never by row position.
func NewRoll(r Roller, excluded map[models.Color]bool) *Roll {
	roll := &Roll{
		white:   make([]Die, 0, WhiteDice),
		colored: make([]Die, 0, len(models.ScoringColors)),
	}
	for i := 0; i < WhiteDice; i++ {
		roll.white = append(roll.white, Die{Color: models.ColorWhite, Face: r.Face()})
	}
	for _, c := range models.ScoringColors {
		if excluded[c] {
			continue
		}
		roll.colored = append(roll.colored, Die{Color: c, Face: r.Face()})
	}
	return roll
}

// Dice returns every die in the roll, white dice first.
func (r *Roll) Dice() []Die {
	dice := make([]Die, 0, len(r.white)+len(r.colored))
	dice = append(dice, r.white...)
	return append(dice, r.colored...)
}

// TableTakes offers the white-dice sum on every open color. These
// candidates are available to every player at the table.
func (r *Roll) TableTakes() []models.Take {
	total := 0
	for _, d := range r.white {
		total += d.Face
	}
	takes := make([]models.Take, 0, len(r.colored))
	for _, d := range r.colored {
		takes = append(takes, models.Take{Color: d.Color, Spot: total})
	}
	return takes
}

// RollerTakes pairs each colored die with a white die in turn and offers
// the pair sums. These candidates are available to the active roller only.
func (r *Roll) RollerTakes() []models.Take {
	takes := make([]models.Take, 0, len(r.colored))
	for i, d := range r.colored {
		white := r.white[i%len(r.white)]
		takes = append(takes, models.Take{Color: d.Color, Spot: d.Face + white.Face})
	}
	return takes
}

func (r *Roll) String() string {
	parts := make([]string, 0, len(r.white)+len(r.colored))
	for _, d := range r.Dice() {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, " ")
}
