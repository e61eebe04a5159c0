package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/qwixx/internal/models"
	"github.com/KirkDiggler/qwixx/internal/players"
)

// Config for a console player
type Config struct {
	// Name shown above the card each turn
	Name string

	// Input is the move source, normally os.Stdin
	Input io.Reader

	// Output is where the card and prompts are written, normally os.Stdout
	Output io.Writer
}

// Player prompts a human for moves on a terminal. Ill-formed or illegal
// input is never surfaced to the engine; the player re-prompts until a
// legal move is typed.
type Player struct {
	name   string
	reader *bufio.Reader
	out    io.Writer
}

// New creates a new console player
func New(cfg *Config) (*Player, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Input == nil {
		return nil, ErrNilInput
	}
	if cfg.Output == nil {
		return nil, ErrNilOutput
	}

	name := cfg.Name
	if name == "" {
		name = "Player"
	}

	return &Player{
		name:   name,
		reader: bufio.NewReader(cfg.Input),
		out:    cfg.Output,
	}, nil
}

// Name returns the player's display name.
func (p *Player) Name() string {
	return p.name
}

// Choose shows the card and dice, then reads moves until a legal one is
// entered. Only a read failure (EOF, closed terminal) returns an error.
func (p *Player) Choose(ctx context.Context, input *players.ChooseInput) (models.Move, error) {
	fmt.Fprint(p.out, strings.Repeat("\n", 10))
	fmt.Fprintln(p.out, p.name)
	fmt.Fprint(p.out, RenderCard(input.Card))
	fmt.Fprintln(p.out, input.Roll)
	if input.TurnsToRoller == 0 {
		fmt.Fprintln(p.out, "Roller")
	} else {
		fmt.Fprintln(p.out, "Watcher")
	}

	for {
		if err := ctx.Err(); err != nil {
			return models.Move{}, err
		}

		fmt.Fprint(p.out, "Move: ")
		line, readErr := p.reader.ReadString('\n')

		move, parseErr := models.ParseMove(line)
		if parseErr == nil && containsMove(input.Moves, move) {
			return move, nil
		}

		if readErr != nil {
			return models.Move{}, readErr
		}
	}
}

func containsMove(moves []models.Move, move models.Move) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}
