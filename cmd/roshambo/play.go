package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/roshambo/internal/config"
	"github.com/lox/roshambo/internal/console"
	"github.com/lox/roshambo/internal/display"
	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/history"
	"github.com/lox/roshambo/internal/match"
	"github.com/lox/roshambo/internal/randutil"
	"github.com/lox/roshambo/internal/strategy"
	"github.com/lox/roshambo/internal/tui"
)

const (
	startPrompt    = "Press enter to start... "
	continuePrompt = "Press enter to continue... (q)uit to exit "
	exitPrompt     = "Press enter to exit "
)

type PlayCmd struct {
	LogFlags `embed:""`

	Config     string `default:"${config_path}" help:"HCL config file, ignored if missing" type:"path"`
	ScoreToWin int    `help:"Round wins needed to take the match (0 = config value)"`
	Seed       int64  `help:"Seed for computer players (0 = config value or time based)"`
	P1         string `name:"p1" help:"Player one strategy: human, random[:seed] or fixed:<choice>"`
	P2         string `name:"p2" help:"Player two strategy: human, random[:seed] or fixed:<choice>"`
	History    string `help:"Save a transcript of the match to this TOML file" type:"path"`
	NoColor    bool   `help:"Disable colored output"`
	TUI        bool   `name:"tui" help:"Use the full-screen terminal UI"`
}

func (cmd *PlayCmd) Run() error {
	logger, closeLog, err := cmd.setupLogger()
	defer closeLog()
	if err != nil {
		return err
	}

	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}
	if err := cmd.applyFlags(cfg); err != nil {
		return err
	}

	// Log lines would tear through the full-screen UI
	if cmd.TUI && cmd.LogFile == "" {
		logger.SetOutput(io.Discard)
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	return playMatch(ctx, cfg, playIO{
		in:         os.Stdin,
		out:        os.Stdout,
		color:      !cmd.NoColor,
		history:    cfg.Match.History,
		now:        time.Now,
		tui:        cmd.TUI,
		teaOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}, logger)
}

// applyFlags overrides config values with any flags that were set
func (cmd *PlayCmd) applyFlags(cfg *config.Config) error {
	if cmd.ScoreToWin != 0 {
		cfg.Match.ScoreToWin = cmd.ScoreToWin
	}
	if cmd.Seed != 0 {
		cfg.Match.Seed = cmd.Seed
	}
	if cmd.History != "" {
		cfg.Match.History = cmd.History
	}
	for i, flag := range []string{cmd.P1, cmd.P2} {
		if flag == "" {
			continue
		}
		spec, err := strategy.ParseSpec(flag)
		if err != nil {
			return fmt.Errorf("--p%d: %w", i+1, err)
		}
		cfg.Players[i].Strategy = string(spec.Kind)
		cfg.Players[i].Choice = ""
		if spec.Choice.Valid() {
			cfg.Players[i].Choice = spec.Choice.String()
		}
		cfg.Players[i].Seed = spec.Seed
	}
	return cfg.Validate()
}

type playIO struct {
	in      io.Reader
	out     io.Writer
	color   bool
	history string
	now     func() time.Time

	// tui selects the bubbletea front end instead of the line console
	tui        bool
	teaOptions []tea.ProgramOption
}

// frontend is where an interactive match reads input and writes output
type frontend interface {
	strategy.LineReader
	Writer() io.Writer
}

// openFrontend starts the console or TUI. The returned func releases it.
func openFrontend(pio playIO, logger *log.Logger) (frontend, func()) {
	if !pio.tui {
		return console.New(pio.in, pio.out), func() {}
	}

	session := tui.NewSession(pio.in, pio.out, logger, pio.teaOptions...)
	session.Start()
	return session, func() {
		if err := session.Close(); err != nil {
			logger.Error("Failed to close TUI", "error", err)
		}
	}
}

// playMatch runs one interactive match. Running out of input or being
// interrupted ends the match quietly.
func playMatch(ctx context.Context, cfg *config.Config, pio playIO, logger *log.Logger) error {
	seed := cfg.Match.Seed
	if seed == 0 {
		seed = randutil.SeedFromTime(pio.now())
	}
	logger.Debug("Starting game", "seed", seed, "scoreToWin", cfg.Match.ScoreToWin, "tui", pio.tui)

	front, closeFront := openFrontend(pio, logger)
	defer closeFront()

	var players [2]match.Player
	humans := 0
	for _, p := range game.PlayerIndexes() {
		pc := cfg.Players[p]
		spec, err := pc.Spec()
		if err != nil {
			return fmt.Errorf("player %q: %w", pc.Name, err)
		}
		if spec.Kind == strategy.KindHuman {
			humans++
		}
		strat, err := strategy.New(spec, randutil.Derive(seed, int(p)), strategy.Deps{
			Name:   pc.Name,
			Input:  front,
			Logger: logger,
		})
		if err != nil {
			return err
		}
		players[p] = match.Player{Name: pc.Name, Strategy: strat, Kind: spec.String()}
	}

	renderer := display.NewRenderer(front.Writer(), display.Options{
		Color:      pio.color,
		ForceColor: pio.tui,
		ShowBanner: true,
	})

	matchConfig := match.Config{
		ScoreToWin: cfg.Match.ScoreToWin,
		Players:    players,
		Logger:     logger,
		Continue:   askContinue(front, renderer),
	}
	if humans > 0 {
		matchConfig.Ready = waitForStart(front)
	}

	runner, err := match.NewRunner(matchConfig)
	if err != nil {
		return err
	}

	recorder := history.NewRecorder()
	runner.Subscribe(renderer)
	runner.Subscribe(recorder)

	_, runErr := runner.Run(ctx)
	if runErr != nil && !match.IsQuit(runErr) {
		return runErr
	}

	if pio.history != "" && recorder.Done() {
		if err := history.WriteFile(pio.history, recorder.Record()); err != nil {
			return err
		}
		logger.Info("Saved match history", "path", pio.history)
	}

	// Keep the final screen up until the player is done reading it
	if pio.tui && runErr == nil {
		_, _ = front.ReadLine(ctx, exitPrompt)
	}
	return nil
}

// waitForStart holds the first round until the player presses enter
func waitForStart(in strategy.LineReader) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := in.ReadLine(ctx, startPrompt)
		return err
	}
}

// askContinue pauses between rounds. Anything starting with q quits, anything
// else draws the separator before the next round.
func askContinue(in strategy.LineReader, renderer *display.Renderer) func(ctx context.Context) (bool, error) {
	return func(ctx context.Context) (bool, error) {
		text, err := in.ReadLine(ctx, continuePrompt)
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if strings.HasPrefix(strings.ToLower(text), "q") {
			return false, nil
		}
		renderer.Separator()
		return true, nil
	}
}
