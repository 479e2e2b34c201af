package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestSimulator_RandomVsRandomIsReproducible(t *testing.T) {
	run := func(workers int) [2]int {
		sim, err := New(Config{
			Matches:    200,
			Workers:    workers,
			Seed:       42,
			ScoreToWin: 3,
			Players:    [2]strategy.Spec{{Kind: strategy.KindRandom}, {Kind: strategy.KindRandom}},
			Logger:     quietLogger(),
		})
		require.NoError(t, err)

		stats, err := sim.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 200, stats.Matches)
		assert.Equal(t, 0, stats.Abandoned)
		return stats.Wins
	}

	first := run(1)
	assert.Equal(t, first, run(8), "worker count must not change results")
	assert.Equal(t, 200, first[0]+first[1])
	assert.Greater(t, first[0], 60)
	assert.Greater(t, first[1], 60)
}

func TestSimulator_FixedDominates(t *testing.T) {
	sim, err := New(Config{
		Matches:    10,
		Seed:       1,
		ScoreToWin: 3,
		Players: [2]strategy.Spec{
			{Kind: strategy.KindFixed, Choice: game.Paper},
			{Kind: strategy.KindFixed, Choice: game.Rock},
		},
		Logger: quietLogger(),
	})
	require.NoError(t, err)

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [2]int{10, 0}, stats.Wins)
	assert.InDelta(t, 3.0, stats.Mean(), 1e-9)
	assert.Equal(t, 1.0, stats.ChoiceShare(game.PlayerOne, game.Paper))
}

func TestSimulator_RoundLimit(t *testing.T) {
	sim, err := New(Config{
		Matches:    2,
		ScoreToWin: 1,
		MaxRounds:  5,
		Players: [2]strategy.Spec{
			{Kind: strategy.KindFixed, Choice: game.Rock},
			{Kind: strategy.KindFixed, Choice: game.Rock},
		},
		Logger: quietLogger(),
	})
	require.NoError(t, err)

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Abandoned)
	assert.Equal(t, 10, stats.Rounds)
	assert.Equal(t, 1.0, stats.DrawRate())
}

func TestNew_Validation(t *testing.T) {
	random := strategy.Spec{Kind: strategy.KindRandom}

	_, err := New(Config{Matches: 0, ScoreToWin: 3, Players: [2]strategy.Spec{random, random}})
	assert.Error(t, err)

	_, err = New(Config{Matches: 1, ScoreToWin: 0, Players: [2]strategy.Spec{random, random}})
	assert.ErrorIs(t, err, game.ErrInvalidScoreToWin)

	_, err = New(Config{Matches: 1, ScoreToWin: 3, Players: [2]strategy.Spec{{Kind: strategy.KindHuman}, random}})
	assert.Error(t, err)
}

func TestSimulator_Cancelled(t *testing.T) {
	sim, err := New(Config{
		Matches:    5,
		ScoreToWin: 3,
		Players:    [2]strategy.Spec{{Kind: strategy.KindRandom}, {Kind: strategy.KindRandom}},
		Logger:     quietLogger(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
