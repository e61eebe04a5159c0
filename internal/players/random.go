package players

import (
	"context"
	"math/rand"
	"time"

	"github.com/KirkDiggler/qwixx/internal/models"
)

// Config for the random player
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Random chooses uniformly among the legal moves. It can never return a
// move outside the supplied set.
type Random struct {
	random *rand.Rand
}

// NewRandom creates a new random player. A zero seed falls back to the
// wall clock.
func NewRandom(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &Random{
		random: rand.New(source),
	}
}

// Choose picks one of the legal moves at random.
func (p *Random) Choose(_ context.Context, input *ChooseInput) (models.Move, error) {
	return input.Moves[p.random.Intn(len(input.Moves))], nil
}
