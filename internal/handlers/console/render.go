package console

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/qwixx/internal/models"
)

// penaltyIndent lines the penalty boxes up under the right edge of the rows.
const penaltyIndent = 31

// RenderCard lays out a scorecard: one line per row plus the penalty boxes.
// Marked spots show as X, spots that can still be marked show their number,
// unreachable spots are blank. The trailing column shows X for a locked row
// and L for an open one.
func RenderCard(card *models.Card) string {
	var b strings.Builder
	for _, color := range models.ScoringColors {
		b.WriteString(renderRow(color, card.Grid().Row(color)))
		b.WriteByte('\n')
	}
	b.WriteString(renderPenalties(card.Penalties()))
	b.WriteByte('\n')
	return b.String()
}

func renderRow(color models.Color, row *models.Row) string {
	marked := make(map[int]bool, row.MarkCount())
	for _, m := range row.Marks() {
		marked[m] = true
	}

	var b strings.Builder
	b.WriteString(color.String())
	for _, spot := range row.Spots() {
		switch {
		case marked[spot]:
			b.WriteString("  X")
		case row.ValidSpot(spot):
			fmt.Fprintf(&b, "%3d", spot)
		default:
			b.WriteString("   ")
		}
	}
	if row.Locked() {
		b.WriteString(" X")
	} else {
		b.WriteString(" L")
	}
	return b.String()
}

func renderPenalties(n int) string {
	return strings.Repeat(" ", penaltyIndent) +
		strings.Repeat("X", n) +
		strings.Repeat("O", models.PenaltyLimit-n)
}
