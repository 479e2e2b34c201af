package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/randutil"
	"github.com/lox/roshambo/internal/simulator"
	"github.com/lox/roshambo/internal/statistics"
	"github.com/lox/roshambo/internal/strategy"
)

type SimulateCmd struct {
	LogFlags `embed:""`

	Matches    int    `default:"1000" help:"Number of matches to play"`
	Workers    int    `help:"Concurrent matches (0 = GOMAXPROCS)"`
	Seed       int64  `help:"Base seed (0 = time based)"`
	ScoreToWin int    `default:"3" help:"Round wins needed to take a match"`
	MaxRounds  int    `help:"Abandon matches longer than this (0 = default)"`
	P1         string `name:"p1" default:"random" help:"Player one strategy: random[:seed] or fixed:<choice>"`
	P2         string `name:"p2" default:"random" help:"Player two strategy: random[:seed] or fixed:<choice>"`
}

func (cmd *SimulateCmd) Run() error {
	logger, closeLog, err := cmd.setupLogger()
	defer closeLog()
	if err != nil {
		return err
	}

	var players [2]strategy.Spec
	for i, flag := range []string{cmd.P1, cmd.P2} {
		spec, err := strategy.ParseSpec(flag)
		if err != nil {
			return fmt.Errorf("--p%d: %w", i+1, err)
		}
		players[i] = spec
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = randutil.SeedFromTime(time.Now())
	}

	sim, err := simulator.New(simulator.Config{
		Matches:    cmd.Matches,
		Workers:    cmd.Workers,
		Seed:       seed,
		ScoreToWin: cmd.ScoreToWin,
		MaxRounds:  cmd.MaxRounds,
		Players:    players,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	fmt.Printf("Starting simulation: %d matches, %s vs %s, first to %d (seed: %d)\n",
		cmd.Matches, players[0], players[1], cmd.ScoreToWin, seed)

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	printResults(os.Stdout, stats, [2]string{players[0].String(), players[1].String()}, time.Since(start))

	return stats.Validate()
}

func printResults(w io.Writer, stats *statistics.Statistics, names [2]string, duration time.Duration) {
	fmt.Fprintf(w, "\n=== RESULTS ===\n")
	fmt.Fprintf(w, "Matches played: %d (%d decided, %d abandoned)\n", stats.Matches, stats.Decided(), stats.Abandoned)
	fmt.Fprintf(w, "Total time: %v\n", duration.Round(time.Millisecond))

	fmt.Fprintf(w, "\n=== WINS ===\n")
	for _, p := range game.PlayerIndexes() {
		low, high := stats.WinRateCI95(p)
		fmt.Fprintf(w, "%s (%s): %d wins, %.1f%% [95%% CI %.1f%%, %.1f%%]\n",
			p, names[p], stats.Wins[p], stats.WinRate(p)*100, low*100, high*100)
	}

	fmt.Fprintf(w, "\n=== ROUNDS PER MATCH ===\n")
	fmt.Fprintf(w, "Mean: %.2f  Median: %.1f  Std Dev: %.2f\n", stats.Mean(), stats.Median(), stats.StdDev())
	fmt.Fprintf(w, "Min: %d  Max: %d\n", stats.MinR, stats.MaxR)
	fmt.Fprintf(w, "Draw rate: %.1f%% of rounds\n", stats.DrawRate()*100)

	fmt.Fprintf(w, "\n=== CHOICES ===\n")
	for _, p := range game.PlayerIndexes() {
		fmt.Fprintf(w, "%s:", p)
		for _, c := range game.Choices() {
			fmt.Fprintf(w, " %s %.1f%%", c, stats.ChoiceShare(p, c)*100)
		}
		fmt.Fprintln(w)
	}
}
