package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/qwixx/internal/common/uuid Generator

// Generator produces unique identifiers for game runs
type Generator interface {
	NewID() string
}

// Default implements the Generator interface using the uuid package

type Default struct{}

func New() *Default {
	return &Default{}
}

// NewID returns a new random UUID string
func (d *Default) NewID() string {
	return uuid.New().String()
}
