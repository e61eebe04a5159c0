package game

import "context"

// Service drives a full Qwixx game
type Service interface {
	// Play runs rounds until the game is over and returns final scores
	// in seat order
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)
}
