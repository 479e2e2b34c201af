// Package simulator plays many independent bot-vs-bot matches and
// aggregates the results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/match"
	"github.com/lox/roshambo/internal/randutil"
	"github.com/lox/roshambo/internal/statistics"
	"github.com/lox/roshambo/internal/strategy"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxRounds stops matches that cannot finish, such as two fixed
// strategies throwing the same shape.
const DefaultMaxRounds = 1000

// Config holds configuration for running simulations
type Config struct {
	Matches    int
	Workers    int
	Seed       int64
	ScoreToWin int
	MaxRounds  int
	Players    [2]strategy.Spec
	Logger     *log.Logger
}

// Simulator runs batches of matches
type Simulator struct {
	config Config
	logger *log.Logger
}

// New validates config and creates a simulator
func New(config Config) (*Simulator, error) {
	if config.Matches < 1 {
		return nil, fmt.Errorf("matches must be positive, got %d", config.Matches)
	}
	if config.ScoreToWin < 1 {
		return nil, game.ErrInvalidScoreToWin
	}
	for _, p := range game.PlayerIndexes() {
		if config.Players[p].Kind == strategy.KindHuman {
			return nil, fmt.Errorf("%s: human players cannot be simulated", p)
		}
	}
	if config.Workers < 1 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.MaxRounds < 1 {
		config.MaxRounds = DefaultMaxRounds
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config, logger: config.Logger.WithPrefix("simulator")}, nil
}

// Run plays every match and returns the aggregate. Matches run concurrently
// but each owns its state and generators, and results are folded in match
// order, so a fixed seed always gives the same statistics.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]statistics.MatchResult, s.config.Matches)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Matches; i++ {
		g.Go(func() error {
			res, err := s.playMatch(ctx, i)
			if err != nil {
				return fmt.Errorf("match %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete", "matches", stats.Matches,
		"abandoned", stats.Abandoned, "meanRounds", stats.Mean())
	return stats, nil
}

// playMatch plays match i with generators derived from the batch seed
func (s *Simulator) playMatch(ctx context.Context, i int) (statistics.MatchResult, error) {
	matchSeed := randutil.Derive(s.config.Seed, i)

	var players [2]match.Player
	for _, p := range game.PlayerIndexes() {
		spec := s.config.Players[p]
		base := matchSeed
		if spec.Seed != 0 {
			base = randutil.Derive(spec.Seed, i)
		}
		seed := randutil.Derive(base, int(p))
		spec.Seed = seed

		strat, err := strategy.New(spec, seed, strategy.Deps{Name: p.String(), Logger: s.config.Logger})
		if err != nil {
			return statistics.MatchResult{}, err
		}
		players[p] = match.Player{Name: p.String(), Strategy: strat, Kind: spec.String()}
	}

	rounds := 0
	runner, err := match.NewRunner(match.Config{
		ScoreToWin: s.config.ScoreToWin,
		Players:    players,
		Logger:     s.logger,
		NewID:      func() string { return fmt.Sprintf("sim-%d", i+1) },
		Continue: func(context.Context) (bool, error) {
			rounds++
			return rounds < s.config.MaxRounds, nil
		},
	})
	if err != nil {
		return statistics.MatchResult{}, err
	}

	res, err := runner.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return statistics.MatchResult{}, err
		}
		return statistics.MatchResult{}, fmt.Errorf("failed to play match: %w", err)
	}
	if res.Abandoned {
		s.logger.Warn("Match hit round limit", "match", res.MatchID, "rounds", len(res.Rounds), "seed", matchSeed)
	}

	return statistics.FromRounds(matchSeed, res.Rounds, res.Winner, res.HasWinner), nil
}
