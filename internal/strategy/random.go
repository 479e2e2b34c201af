package strategy

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/roshambo/internal/game"
)

// Random throws uniformly at random from its own generator.
type Random struct {
	rng    game.RandSource
	logger *log.Logger
}

// NewRandom creates a random strategy. rng must not be shared with anything
// else or sequences stop being reproducible.
func NewRandom(rng game.RandSource, logger *log.Logger) *Random {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Random{rng: rng, logger: logger.WithPrefix("random")}
}

func (r *Random) MakeChoice(context.Context) (game.Choice, error) {
	choice := game.RandomChoice(r.rng)
	r.logger.Debug("Random choice made", "choice", choice)
	return choice, nil
}

var _ Strategy = (*Random)(nil)
