// Package config loads match settings from an optional HCL file, with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/strategy"
)

// DefaultPath is where the CLI looks for a config file
const DefaultPath = "roshambo.hcl"

// Environment variable names
const (
	// EnvScoreToWin overrides match.score_to_win
	EnvScoreToWin = "ROSHAMBO_SCORE_TO_WIN"

	// EnvSeed sets the seed used by random players that have none of their own
	EnvSeed = "ROSHAMBO_SEED"
)

// Config represents the complete configuration
type Config struct {
	Match   *MatchSettings `hcl:"match,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// MatchSettings contains match-level configuration. A zero Seed leaves
// random players unseeded.
type MatchSettings struct {
	ScoreToWin int    `hcl:"score_to_win,optional"`
	Seed       int64  `hcl:"seed,optional"`
	History    string `hcl:"history,optional"`
}

// PlayerConfig defines one player slot. Players are assigned to slots in
// file order.
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Choice   string `hcl:"choice,optional"`
	Seed     int64  `hcl:"seed,optional"`
}

// Default returns the configuration used when no file exists: a human
// against a random computer, first to three.
func Default() *Config {
	return &Config{
		Match: &MatchSettings{ScoreToWin: 3},
		Players: []PlayerConfig{
			{Name: "Human", Strategy: string(strategy.KindHuman)},
			{Name: "Computer", Strategy: string(strategy.KindRandom)},
		},
	}
}

// Load reads filename if it exists, applies defaults, then environment
// overrides from the process and an optional .env file.
func Load(filename string) (*Config, error) {
	cfg, err := loadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Match == nil {
		cfg.Match = &MatchSettings{}
	}
	if cfg.Match.ScoreToWin == 0 {
		cfg.Match.ScoreToWin = 3
	}
	if len(cfg.Players) == 0 {
		cfg.Players = Default().Players
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	// Only a present-but-unreadable .env is an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	if v := os.Getenv(EnvScoreToWin); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvScoreToWin, err)
		}
		c.Match.ScoreToWin = n
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Match.Seed = seed
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Match == nil {
		return errors.New("match settings are required")
	}
	if c.Match.ScoreToWin < 1 {
		return fmt.Errorf("invalid score_to_win: %d", c.Match.ScoreToWin)
	}
	if len(c.Players) != 2 {
		return fmt.Errorf("exactly 2 players required, got %d", len(c.Players))
	}
	if strings.EqualFold(c.Players[0].Name, c.Players[1].Name) {
		return fmt.Errorf("player names must differ, both are %q", c.Players[0].Name)
	}
	for _, p := range c.Players {
		if _, err := p.Spec(); err != nil {
			return fmt.Errorf("player %q: %w", p.Name, err)
		}
	}
	return nil
}

// Spec converts the player block into a strategy spec
func (p PlayerConfig) Spec() (strategy.Spec, error) {
	switch strategy.Kind(strings.ToLower(p.Strategy)) {
	case strategy.KindHuman:
		return strategy.Spec{Kind: strategy.KindHuman}, nil
	case strategy.KindRandom:
		return strategy.Spec{Kind: strategy.KindRandom, Seed: p.Seed}, nil
	case strategy.KindFixed:
		choice, ok := game.ParseChoice(p.Choice)
		if !ok {
			return strategy.Spec{}, fmt.Errorf("fixed strategy needs a valid choice, got %q", p.Choice)
		}
		return strategy.Spec{Kind: strategy.KindFixed, Choice: choice}, nil
	default:
		return strategy.Spec{}, fmt.Errorf("unknown strategy %q", p.Strategy)
	}
}
