package strategy

import (
	"context"

	"github.com/lox/roshambo/internal/game"
)

// Fixed always throws the same choice. Used for scripted opponents and tests.
type Fixed struct {
	choice game.Choice
}

// NewFixed creates a strategy that always returns choice
func NewFixed(choice game.Choice) *Fixed {
	return &Fixed{choice: choice}
}

func (f *Fixed) MakeChoice(context.Context) (game.Choice, error) {
	return f.choice, nil
}

var _ Strategy = (*Fixed)(nil)
