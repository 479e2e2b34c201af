// Package history exports finished matches as TOML records. A record is a
// transcript for people and tools to read; it is never loaded back into a
// running match.
package history

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lox/roshambo/internal/game"
)

// Record is one match as written to disk.
type Record struct {
	Match      string        `toml:"match"`
	ScoreToWin int           `toml:"score_to_win"`
	Players    []string      `toml:"players"`
	Strategies []string      `toml:"strategies,omitempty"`
	Winner     string        `toml:"winner,omitempty"`
	Abandoned  bool          `toml:"abandoned,omitempty"`
	StartedAt  time.Time     `toml:"started_at"`
	EndedAt    time.Time     `toml:"ended_at"`
	Rounds     []RoundRecord `toml:"rounds"`
}

// RoundRecord is one round of a Record
type RoundRecord struct {
	Index     int         `toml:"index"`
	PlayerOne game.Choice `toml:"player_one"`
	PlayerTwo game.Choice `toml:"player_two"`
	Result    string      `toml:"result"`
}

// Scores recomputes the final scores from the rounds
func (r *Record) Scores() [2]int {
	var sb game.Scoreboard
	for _, round := range r.Rounds {
		if res, ok := game.ParseRoundResult(round.Result); ok {
			sb.Apply(res)
		}
	}
	return [2]int{sb.ScoreOf(game.PlayerOne), sb.ScoreOf(game.PlayerTwo)}
}

// WinnerIndex returns the slot named by Winner
func (r *Record) WinnerIndex() (game.PlayerIndex, bool) {
	for _, p := range game.PlayerIndexes() {
		if len(r.Players) > int(p) && r.Players[p] == r.Winner && r.Winner != "" {
			return p, true
		}
	}
	return 0, false
}

// Validate replays the rounds through a fresh match state, so a record is
// only accepted if the match it describes could have been played. Stored
// results must agree with the choices, no round may follow the deciding one,
// and a record is either won by the player who reached the threshold or
// marked abandoned.
func (r *Record) Validate() error {
	if r.Match == "" {
		return errors.New("history: match id is required")
	}
	if len(r.Players) != 2 {
		return fmt.Errorf("history: expected 2 players, got %d", len(r.Players))
	}

	state, err := game.NewState(r.ScoreToWin)
	if err != nil {
		return err
	}

	for i, round := range r.Rounds {
		if round.Index != i+1 {
			return fmt.Errorf("history: round %d has index %d", i+1, round.Index)
		}
		stored, ok := game.ParseRoundResult(round.Result)
		if !ok {
			return fmt.Errorf("history: round %d has unknown result %q", round.Index, round.Result)
		}
		played, err := state.PlayRound(round.PlayerOne, round.PlayerTwo)
		if err != nil {
			return fmt.Errorf("history: round %d: %w", round.Index, err)
		}
		if played.Result() != stored {
			return fmt.Errorf("history: round %d records %s but %s vs %s is %s",
				round.Index, stored, round.PlayerOne, round.PlayerTwo, played.Result())
		}
	}

	winner, concluded := state.Winner()
	switch {
	case r.Winner != "":
		p, ok := r.WinnerIndex()
		if !ok {
			return fmt.Errorf("history: winner %q is not a player", r.Winner)
		}
		if !concluded || p != winner {
			return fmt.Errorf("history: winner %q did not reach %d", r.Winner, r.ScoreToWin)
		}
		if r.Abandoned {
			return fmt.Errorf("history: match won by %q cannot be abandoned", r.Winner)
		}
	case concluded:
		return fmt.Errorf("history: %s reached %d but no winner is recorded", r.Players[winner], r.ScoreToWin)
	case !r.Abandoned:
		return errors.New("history: undecided match must be marked abandoned")
	}
	return nil
}

// Encode renders a record as TOML
func Encode(r Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(r); err != nil {
		return nil, fmt.Errorf("failed to encode match record: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses and validates a TOML record
func Decode(data []byte) (Record, error) {
	var r Record
	if _, err := toml.Decode(string(data), &r); err != nil {
		return Record{}, fmt.Errorf("failed to decode match record: %w", err)
	}
	r.StartedAt = r.StartedAt.UTC()
	r.EndedAt = r.EndedAt.UTC()
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}
