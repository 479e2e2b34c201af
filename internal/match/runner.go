// Package match drives a single match: it asks each player's strategy for a
// choice, feeds the pair into game.State and publishes what happened.
package match

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/strategy"
)

// Player binds a display name to the strategy playing a slot.
type Player struct {
	Name     string
	Strategy strategy.Strategy
	// Kind is a description of the strategy for events and records, e.g. "random:42"
	Kind string
}

// Config controls a Runner
type Config struct {
	ScoreToWin int
	Players    [2]Player
	Logger     *log.Logger
	Clock      quartz.Clock

	// NewID generates the match ID. Defaults to a UUIDv7.
	NewID func() string

	// Ready is called once after the match start event and before the first
	// round, e.g. to wait for a player to press enter. An error abandons the
	// match.
	Ready func(ctx context.Context) error

	// Continue is asked between rounds while the match is undecided. Returning
	// false abandons the match. Nil means always continue.
	Continue func(ctx context.Context) (bool, error)
}

// Result summarises a finished or abandoned match
type Result struct {
	MatchID    string
	ScoreToWin int
	Players    [2]string
	Strategies [2]string
	Winner     game.PlayerIndex
	HasWinner  bool
	Rounds     []game.Round
	Scores     [2]int
	Abandoned  bool
	StartedAt  time.Time
	EndedAt    time.Time
}

// WinnerName returns the winning player's name, or "" when undecided
func (r *Result) WinnerName() string {
	if !r.HasWinner {
		return ""
	}
	return r.Players[r.Winner]
}

// Duration is the wall time between the first and last event
func (r *Result) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Runner plays one match to completion
type Runner struct {
	config Config
	bus    *EventBus
	logger *log.Logger
}

// NewRunner validates config and fills in defaults
func NewRunner(config Config) (*Runner, error) {
	if config.ScoreToWin < 1 {
		return nil, game.ErrInvalidScoreToWin
	}
	for _, p := range game.PlayerIndexes() {
		if config.Players[p].Strategy == nil {
			return nil, fmt.Errorf("no strategy for %s", p)
		}
		if config.Players[p].Name == "" {
			config.Players[p].Name = defaultName(p)
		}
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.NewID == nil {
		config.NewID = newMatchID
	}

	return &Runner{
		config: config,
		bus:    NewEventBus(),
		logger: config.Logger.WithPrefix("match"),
	}, nil
}

func defaultName(p game.PlayerIndex) string {
	if p == game.PlayerOne {
		return "P1"
	}
	return "P2"
}

func newMatchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Subscribe registers a subscriber for this runner's events
func (r *Runner) Subscribe(subscriber EventSubscriber) {
	r.bus.Subscribe(subscriber)
}

// Run plays rounds until a winner is decided, the Continue hook declines, or
// a strategy fails. An abandoned match returns its partial result; a
// strategy failure also returns the error.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	state, err := game.NewState(r.config.ScoreToWin)
	if err != nil {
		return nil, err
	}

	res := &Result{
		MatchID:    r.config.NewID(),
		ScoreToWin: state.ScoreToWin(),
		StartedAt:  r.config.Clock.Now(),
	}
	for _, p := range game.PlayerIndexes() {
		res.Players[p] = r.config.Players[p].Name
		res.Strategies[p] = r.config.Players[p].Kind
	}

	logger := r.logger.With("match", res.MatchID)
	logger.Info("Starting match", "scoreToWin", res.ScoreToWin,
		"playerOne", res.Players[game.PlayerOne], "playerTwo", res.Players[game.PlayerTwo])

	r.bus.Publish(MatchStartEvent{
		MatchID:    res.MatchID,
		ScoreToWin: res.ScoreToWin,
		Players:    res.Players,
		Strategies: res.Strategies,
		timestamp:  res.StartedAt,
	})

	if r.config.Ready != nil {
		if err := r.config.Ready(ctx); err != nil {
			return r.abandon(res, state, err.Error()), fmt.Errorf("match not started: %w", err)
		}
	}

	for !state.Concluded() {
		r.bus.Publish(RoundStartEvent{
			MatchID:   res.MatchID,
			Index:     len(state.Rounds()) + 1,
			Scores:    scores(state),
			timestamp: r.config.Clock.Now(),
		})

		one, err := r.choose(ctx, game.PlayerOne)
		if err != nil {
			return r.abandon(res, state, err.Error()), err
		}
		two, err := r.choose(ctx, game.PlayerTwo)
		if err != nil {
			return r.abandon(res, state, err.Error()), err
		}

		round, err := state.PlayRound(one, two)
		if err != nil {
			return r.abandon(res, state, err.Error()), fmt.Errorf("failed to play round: %w", err)
		}

		logger.Debug("Round played", "round", round.Index(),
			"playerOne", one, "playerTwo", two, "result", round.Result())

		r.bus.Publish(RoundPlayedEvent{
			MatchID:   res.MatchID,
			Round:     round,
			Scores:    scores(state),
			timestamp: r.config.Clock.Now(),
		})

		if state.Concluded() || r.config.Continue == nil {
			continue
		}
		cont, err := r.config.Continue(ctx)
		if err != nil {
			return r.abandon(res, state, err.Error()), fmt.Errorf("failed to prompt for next round: %w", err)
		}
		if !cont {
			logger.Info("Match abandoned by player", "rounds", len(state.Rounds()))
			return r.abandon(res, state, "quit"), nil
		}
	}

	winner, _ := state.Winner()
	final, _ := state.CurrentRound()
	r.fill(res, state)

	logger.Info("Match complete", "winner", res.WinnerName(), "rounds", final.Index(),
		"duration", res.Duration())

	r.bus.Publish(MatchEndEvent{
		MatchID:    res.MatchID,
		Winner:     winner,
		WinnerName: res.WinnerName(),
		FinalRound: final,
		Scores:     res.Scores,
		timestamp:  res.EndedAt,
	})

	return res, nil
}

func (r *Runner) choose(ctx context.Context, p game.PlayerIndex) (game.Choice, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	player := r.config.Players[p]
	choice, err := player.Strategy.MakeChoice(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get choice from %s: %w", player.Name, err)
	}
	if !choice.Valid() {
		return 0, fmt.Errorf("strategy for %s returned %w", player.Name, game.ErrInvalidChoice)
	}
	return choice, nil
}

func (r *Runner) fill(res *Result, state *game.State) {
	res.Rounds = state.Rounds()
	res.Scores = scores(state)
	res.Winner, res.HasWinner = state.Winner()
	res.EndedAt = r.config.Clock.Now()
}

func (r *Runner) abandon(res *Result, state *game.State, reason string) *Result {
	r.fill(res, state)
	res.Abandoned = true

	r.bus.Publish(MatchAbandonedEvent{
		MatchID:   res.MatchID,
		Reason:    reason,
		Rounds:    len(res.Rounds),
		Scores:    res.Scores,
		timestamp: res.EndedAt,
	})
	return res
}

func scores(state *game.State) [2]int {
	return [2]int{state.ScoreOf(game.PlayerOne), state.ScoreOf(game.PlayerTwo)}
}

// IsQuit reports whether err means the person at the console went away
// (end of input or interrupt) rather than something breaking.
func IsQuit(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}
