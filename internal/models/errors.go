package models

// ModelError is a custom error type for scorecard-related errors
type ModelError string

// Error implements the error interface
func (e ModelError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnknownColor  ModelError = "unknown color code"
	ErrNoRowForColor ModelError = "color has no scorecard row"
	ErrInvalidSpot   ModelError = "spot is not markable on this row"
	ErrMalformedMove ModelError = "malformed move text"
)
