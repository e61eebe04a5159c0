package models

// Grid holds the four scoring rows, keyed by color so a row can never be
// confused with its position.
type Grid struct {
	rows map[Color]*Row
}

// NewGrid creates a fresh grid: red and yellow run 2 up to 12, green and
// blue run 12 down to 2.
func NewGrid() *Grid {
	return &Grid{
		rows: map[Color]*Row{
			ColorRed:    newRow(ascendingSpots()),
			ColorYellow: newRow(ascendingSpots()),
			ColorGreen:  newRow(descendingSpots()),
			ColorBlue:   newRow(descendingSpots()),
		},
	}
}

// Row returns the track owned by a scoring color, or nil for a non-scoring
// color.
func (g *Grid) Row(c Color) *Row {
	return g.rows[c]
}

// ValidTakes filters candidates down to those whose row accepts the spot.
// Candidate order is preserved.
func (g *Grid) ValidTakes(candidates []Take) []Take {
	var valid []Take
	for _, take := range candidates {
		if row := g.rows[take.Color]; row != nil && row.ValidSpot(take.Spot) {
			valid = append(valid, take)
		}
	}
	return valid
}

// MarkCount sums the marks across all four rows.
func (g *Grid) MarkCount() int {
	count := 0
	for _, row := range g.rows {
		count += row.MarkCount()
	}
	return count
}

// LockedColors returns the scoring colors whose rows are locked, in
// scorecard order.
func (g *Grid) LockedColors() []Color {
	var locked []Color
	for _, c := range ScoringColors {
		if g.rows[c].Locked() {
			locked = append(locked, c)
		}
	}
	return locked
}

func ascendingSpots() []int {
	spots := make([]int, 0, 11)
	for v := 2; v <= 12; v++ {
		spots = append(spots, v)
	}
	return spots
}

func descendingSpots() []int {
	spots := make([]int, 0, 11)
	for v := 12; v >= 2; v-- {
		spots = append(spots, v)
	}
	return spots
}
