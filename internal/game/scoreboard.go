package game

// Scoreboard holds one counter per slot. Apply is the only way to change it,
// so scores only move through round resolution.
type Scoreboard struct {
	scores [2]int
}

// ScoreOf returns the current score for a slot
func (s *Scoreboard) ScoreOf(p PlayerIndex) int {
	mustValid(p)
	return s.scores[p]
}

// Apply credits the winner of a decisive result. Draws change nothing.
func (s *Scoreboard) Apply(result RoundResult) {
	if winner, ok := result.Winner(); ok {
		s.scores[winner]++
	}
}
