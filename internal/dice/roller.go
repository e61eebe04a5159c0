package dice

import (
	"math/rand"
	"time"
)

// Sides is the face count on every die in the game.
const Sides = 6

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/qwixx/internal/dice Roller

// Roller produces die faces. A roller built from a fixed seed always
// produces the same face sequence, so games can be replayed in tests.
type Roller interface {
	// Face returns a uniform random value in 1..Sides.
	Face() int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller. A zero seed falls back to the wall clock.
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &randRoller{
		random: random,
	}
}

// randRoller implements Roller on math/rand
type randRoller struct {
	random *rand.Rand
}

// Face returns the next die face.
func (r *randRoller) Face() int {
	return r.random.Intn(Sides) + 1
}
