package game

// RoundResult is the outcome of a single round
type RoundResult uint8

const (
	Draw RoundResult = iota
	PlayerOneWins
	PlayerTwoWins
)

func (r RoundResult) String() string {
	switch r {
	case PlayerOneWins:
		return "PLAYER_ONE_WINS"
	case PlayerTwoWins:
		return "PLAYER_TWO_WINS"
	case Draw:
		return "DRAW"
	default:
		return "UNKNOWN"
	}
}

// Winner returns the slot that won, or false for a draw.
func (r RoundResult) Winner() (PlayerIndex, bool) {
	switch r {
	case PlayerOneWins:
		return PlayerOne, true
	case PlayerTwoWins:
		return PlayerTwo, true
	default:
		return 0, false
	}
}

// ParseRoundResult is the inverse of RoundResult.String
func ParseRoundResult(s string) (RoundResult, bool) {
	for _, r := range []RoundResult{Draw, PlayerOneWins, PlayerTwoWins} {
		if r.String() == s {
			return r, true
		}
	}
	return 0, false
}

// resolve decides a round from the two choices. Distinct valid choices always
// have exactly one winner.
func resolve(one, two Choice) RoundResult {
	switch {
	case one == two:
		return Draw
	case one.Beats(two):
		return PlayerOneWins
	default:
		return PlayerTwoWins
	}
}

// Round is an immutable record of one exchange. The result is computed once
// when the round is created.
type Round struct {
	index  int
	one    Choice
	two    Choice
	result RoundResult
}

// NewRound resolves a round between the given choices. index is 1-based and
// assigned by the caller.
func NewRound(index int, one, two Choice) Round {
	return Round{
		index:  index,
		one:    one,
		two:    two,
		result: resolve(one, two),
	}
}

// Index returns the 1-based position of the round in its match
func (r Round) Index() int {
	return r.index
}

// Choice returns what the given slot threw.
func (r Round) Choice(p PlayerIndex) Choice {
	mustValid(p)
	if p == PlayerOne {
		return r.one
	}
	return r.two
}

// Result returns the frozen outcome
func (r Round) Result() RoundResult {
	return r.result
}
