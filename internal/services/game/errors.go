package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNoPlayers         GameError = "at least one player is required"
	ErrNilPlayer         GameError = "player cannot be nil"
	ErrNilDiceRoller     GameError = "dice roller cannot be nil"
	ErrBadStartingRoller GameError = "starting roller seat is out of range"
)
