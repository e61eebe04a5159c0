package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Take is a candidate or chosen move: one spot value on one scoring row.
// Takes are generated fresh from each dice roll and never persisted.
type Take struct {
	Color Color
	Spot  int
}

func (t Take) String() string {
	return fmt.Sprintf("%s%d", t.Color, t.Spot)
}

// MoveKind discriminates the move variants.
type MoveKind int

const (
	// MovePass declines to mark anything
	MovePass MoveKind = iota

	// MoveTake marks one spot on one row
	MoveTake
)

// Move is either a pass or a take. The zero value is a pass.
type Move struct {
	Kind MoveKind
	Take Take
}

// PassMove returns the pass move.
func PassMove() Move {
	return Move{Kind: MovePass}
}

// TakeMove wraps a take as a move.
func TakeMove(t Take) Move {
	return Move{Kind: MoveTake, Take: t}
}

func (m Move) String() string {
	if m.Kind == MovePass {
		return "P"
	}
	return m.Take.String()
}

// ParseTake decodes a color letter followed by a decimal spot number,
// e.g. "R8". Only scoring colors are accepted.
func ParseTake(s string) (Take, error) {
	if len(s) < 2 {
		return Take{}, ErrMalformedMove
	}
	color, err := ParseColor(s[:1])
	if err != nil {
		return Take{}, err
	}
	if !color.IsScoring() {
		return Take{}, ErrNoRowForColor
	}
	spot, err := strconv.Atoi(s[1:])
	if err != nil {
		return Take{}, ErrMalformedMove
	}
	return Take{Color: color, Spot: spot}, nil
}

// ParseMove decodes the console move encoding: a take like "R8", or a
// standalone "P" (case-insensitive) for pass.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "P") {
		return PassMove(), nil
	}
	take, err := ParseTake(s)
	if err != nil {
		return Move{}, err
	}
	return TakeMove(take), nil
}
