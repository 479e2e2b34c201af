package history

import (
	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/match"
)

// Recorder builds a Record from match events. Subscribe it to a runner
// before calling Run.
type Recorder struct {
	record Record
	done   bool
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnEvent(event match.Event) {
	switch e := event.(type) {
	case match.MatchStartEvent:
		r.record = Record{
			Match:      e.MatchID,
			ScoreToWin: e.ScoreToWin,
			Players:    []string{e.Players[0], e.Players[1]},
			StartedAt:  e.Timestamp().UTC(),
		}
		if e.Strategies[0] != "" || e.Strategies[1] != "" {
			r.record.Strategies = []string{e.Strategies[0], e.Strategies[1]}
		}
		r.done = false
	case match.RoundPlayedEvent:
		r.record.Rounds = append(r.record.Rounds, RoundRecord{
			Index:     e.Round.Index(),
			PlayerOne: e.Round.Choice(game.PlayerOne),
			PlayerTwo: e.Round.Choice(game.PlayerTwo),
			Result:    e.Round.Result().String(),
		})
	case match.MatchEndEvent:
		r.record.Winner = e.WinnerName
		r.record.EndedAt = e.Timestamp().UTC()
		r.done = true
	case match.MatchAbandonedEvent:
		r.record.Abandoned = true
		r.record.EndedAt = e.Timestamp().UTC()
		r.done = true
	}
}

// Done reports whether the match has ended, by a winner or abandonment
func (r *Recorder) Done() bool {
	return r.done
}

// Record returns a copy of what has been recorded so far
func (r *Recorder) Record() Record {
	out := r.record
	out.Players = append([]string(nil), r.record.Players...)
	out.Strategies = append([]string(nil), r.record.Strategies...)
	out.Rounds = append([]RoundRecord(nil), r.record.Rounds...)
	return out
}
