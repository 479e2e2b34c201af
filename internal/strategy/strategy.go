// Package strategy provides the ways a player slot can produce a choice:
// a fixed choice, a seeded random choice, or input read from a console.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/randutil"
)

// Strategy produces one choice per call. Implementations only return a valid
// choice or an error; they never return an unset choice.
type Strategy interface {
	MakeChoice(ctx context.Context) (game.Choice, error)
}

// Func adapts a function to the Strategy interface
type Func func(ctx context.Context) (game.Choice, error)

// MakeChoice calls f
func (f Func) MakeChoice(ctx context.Context) (game.Choice, error) {
	return f(ctx)
}

// Kind names a strategy variant
type Kind string

const (
	KindHuman  Kind = "human"
	KindRandom Kind = "random"
	KindFixed  Kind = "fixed"
)

// Spec describes a strategy as it appears in config files and flags.
type Spec struct {
	Kind   Kind
	Choice game.Choice // fixed only
	Seed   int64       // random only; 0 means unseeded
}

// ParseSpec parses "human", "random", "random:<seed>" or "fixed:<choice>".
func ParseSpec(s string) (Spec, error) {
	kind, arg, hasArg := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")

	switch Kind(kind) {
	case KindHuman:
		if hasArg {
			return Spec{}, fmt.Errorf("strategy %q takes no argument", kind)
		}
		return Spec{Kind: KindHuman}, nil
	case KindRandom:
		spec := Spec{Kind: KindRandom}
		if hasArg {
			seed, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return Spec{}, fmt.Errorf("invalid random seed %q: %w", arg, err)
			}
			if seed == 0 {
				return Spec{}, errors.New(`random seed 0 means unseeded, use "random"`)
			}
			spec.Seed = seed
		}
		return spec, nil
	case KindFixed:
		choice, ok := game.ParseChoice(arg)
		if !ok {
			return Spec{}, fmt.Errorf("fixed strategy needs a choice, got %q", arg)
		}
		return Spec{Kind: KindFixed, Choice: choice}, nil
	default:
		return Spec{}, fmt.Errorf("unknown strategy %q", kind)
	}
}

func (s Spec) String() string {
	switch s.Kind {
	case KindFixed:
		return fmt.Sprintf("fixed:%s", strings.ToLower(s.Choice.String()))
	case KindRandom:
		if s.Seed != 0 {
			return fmt.Sprintf("random:%d", s.Seed)
		}
		return string(KindRandom)
	default:
		return string(s.Kind)
	}
}

// Deps are the collaborators a strategy may need. Input is only required for
// human strategies.
type Deps struct {
	Name   string
	Input  LineReader
	Logger *log.Logger
}

// New builds the strategy described by spec. A random strategy with no seed
// takes fallbackSeed, so callers decide where unseeded randomness comes from.
func New(spec Spec, fallbackSeed int64, deps Deps) (Strategy, error) {
	switch spec.Kind {
	case KindFixed:
		if !spec.Choice.Valid() {
			return nil, fmt.Errorf("fixed strategy for %s: %w", deps.Name, game.ErrInvalidChoice)
		}
		return NewFixed(spec.Choice), nil
	case KindRandom:
		seed := spec.Seed
		if seed == 0 {
			seed = fallbackSeed
		}
		return NewRandom(randutil.New(seed), deps.Logger), nil
	case KindHuman:
		if deps.Input == nil {
			return nil, fmt.Errorf("human strategy for %s requires console input", deps.Name)
		}
		return NewInteractive(deps.Name, deps.Input, deps.Logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", spec.Kind)
	}
}
