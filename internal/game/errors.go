package game

import (
	"errors"
	"fmt"
)

var (
	// ErrMatchConcluded is returned by PlayRound once a winner exists.
	ErrMatchConcluded = errors.New("game: match already concluded")

	// ErrInvalidScoreToWin is returned when the winning threshold is not positive.
	ErrInvalidScoreToWin = errors.New("game: score to win must be positive")

	// ErrInvalidChoice is returned when a choice outside Rock, Paper, Scissors is played.
	ErrInvalidChoice = errors.New("game: invalid choice")
)

// ParseError describes text that does not name a choice.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("game: invalid choice %q", e.Input)
}

// Unwrap lets errors.Is match ErrInvalidChoice
func (e *ParseError) Unwrap() error {
	return ErrInvalidChoice
}
