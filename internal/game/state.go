package game

// Status is the phase of a match
type Status uint8

const (
	InProgress Status = iota
	Concluded
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "IN_PROGRESS"
	case Concluded:
		return "CONCLUDED"
	default:
		return "UNKNOWN"
	}
}

// State is the match aggregate. It owns the scoreboard and the round history
// and is the only thing that mutates them.
type State struct {
	scoreToWin int
	scoreboard Scoreboard
	rounds     []Round

	winner    PlayerIndex
	hasWinner bool
}

// NewState starts a match that ends when a slot reaches scoreToWin.
func NewState(scoreToWin int) (*State, error) {
	if scoreToWin < 1 {
		return nil, ErrInvalidScoreToWin
	}
	return &State{scoreToWin: scoreToWin}, nil
}

// PlayRound resolves one round, updates the scoreboard and records the round.
// Once a winner exists further rounds are rejected with ErrMatchConcluded. On
// error the state is left untouched.
func (s *State) PlayRound(one, two Choice) (Round, error) {
	if s.hasWinner {
		return Round{}, ErrMatchConcluded
	}
	if !one.Valid() || !two.Valid() {
		return Round{}, ErrInvalidChoice
	}

	round := NewRound(len(s.rounds)+1, one, two)
	s.scoreboard.Apply(round.Result())

	// Only the round's winner can have crossed the threshold
	if winner, ok := round.Result().Winner(); ok && s.scoreboard.ScoreOf(winner) == s.scoreToWin {
		s.winner = winner
		s.hasWinner = true
	}

	s.rounds = append(s.rounds, round)
	return round, nil
}

// CurrentRound returns the most recently played round.
func (s *State) CurrentRound() (Round, bool) {
	if len(s.rounds) == 0 {
		return Round{}, false
	}
	return s.rounds[len(s.rounds)-1], true
}

// Winner returns the winning slot once the match has concluded.
func (s *State) Winner() (PlayerIndex, bool) {
	return s.winner, s.hasWinner
}

// ScoreOf returns the score for a slot
func (s *State) ScoreOf(p PlayerIndex) int {
	return s.scoreboard.ScoreOf(p)
}

// ScoreToWin returns the threshold fixed at construction
func (s *State) ScoreToWin() int {
	return s.scoreToWin
}

// Status reports whether the match is still being played
func (s *State) Status() Status {
	if s.hasWinner {
		return Concluded
	}
	return InProgress
}

// Concluded is shorthand for Status() == Concluded
func (s *State) Concluded() bool {
	return s.hasWinner
}

// Rounds returns a copy of the round history in play order.
func (s *State) Rounds() []Round {
	out := make([]Round, len(s.rounds))
	copy(out, s.rounds)
	return out
}
