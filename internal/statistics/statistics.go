package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/roshambo/internal/game"
)

// MatchResult is the outcome of one simulated match
type MatchResult struct {
	Seed      int64 // seed the match was played with, for replay
	Winner    game.PlayerIndex
	HasWinner bool
	Rounds    int
	Draws     int
	Choices   [2][3]int // per slot, indexed by choice in cycle order
	Abandoned bool
}

// FromRounds summarises a round history
func FromRounds(seed int64, rounds []game.Round, winner game.PlayerIndex, hasWinner bool) MatchResult {
	res := MatchResult{
		Seed:      seed,
		Winner:    winner,
		HasWinner: hasWinner,
		Rounds:    len(rounds),
		Abandoned: !hasWinner,
	}
	for _, r := range rounds {
		if r.Result() == game.Draw {
			res.Draws++
		}
		for _, p := range game.PlayerIndexes() {
			res.Choices[p][choiceSlot(r.Choice(p))]++
		}
	}
	return res
}

func choiceSlot(c game.Choice) int {
	return int(c) - int(game.Rock)
}

// Statistics aggregates results across many matches
type Statistics struct {
	Matches   int
	Abandoned int
	Wins      [2]int

	// Round counts of decided matches
	Rounds  int
	SumR    float64
	SumR2   float64 // Sum of squares for variance calculation
	Values  []float64
	MinR    int
	MaxR    int
	Draws   int
	Choices [2][3]int
}

// Add incorporates a match result
func (s *Statistics) Add(result MatchResult) {
	s.Matches++
	for p := range result.Choices {
		for c := range result.Choices[p] {
			s.Choices[p][c] += result.Choices[p][c]
		}
	}
	s.Draws += result.Draws
	s.Rounds += result.Rounds

	if !result.HasWinner {
		s.Abandoned++
		return
	}
	s.Wins[result.Winner]++

	r := float64(result.Rounds)
	s.SumR += r
	s.SumR2 += r * r
	s.Values = append(s.Values, r)
	if s.MinR == 0 || result.Rounds < s.MinR {
		s.MinR = result.Rounds
	}
	if result.Rounds > s.MaxR {
		s.MaxR = result.Rounds
	}
}

// Decided returns the number of matches that produced a winner
func (s *Statistics) Decided() int {
	return s.Wins[game.PlayerOne] + s.Wins[game.PlayerTwo]
}

// Mean returns the mean number of rounds per decided match
func (s *Statistics) Mean() float64 {
	n := s.Decided()
	if n == 0 {
		return 0
	}
	return s.SumR / float64(n)
}

// Variance returns the sample variance of rounds per decided match
func (s *Statistics) Variance() float64 {
	n := s.Decided()
	if n < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumR2 - float64(n)*mean*mean) / float64(n-1)
}

// StdDev returns the sample standard deviation of rounds per decided match
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Median returns the median rounds per decided match
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// WinRate returns the share of decided matches won by p
func (s *Statistics) WinRate(p game.PlayerIndex) float64 {
	n := s.Decided()
	if n == 0 {
		return 0
	}
	return float64(s.Wins[p]) / float64(n)
}

// WinRateCI95 returns the normal-approximation 95% interval for WinRate,
// clamped to [0, 1].
func (s *Statistics) WinRateCI95(p game.PlayerIndex) (float64, float64) {
	n := s.Decided()
	if n == 0 {
		return 0, 0
	}
	rate := s.WinRate(p)
	margin := 1.96 * math.Sqrt(rate*(1-rate)/float64(n))
	return math.Max(0, rate-margin), math.Min(1, rate+margin)
}

// DrawRate returns the share of all rounds that were draws
func (s *Statistics) DrawRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Draws) / float64(s.Rounds)
}

// ChoiceShare returns how often p threw c, as a share of p's throws
func (s *Statistics) ChoiceShare(p game.PlayerIndex, c game.Choice) float64 {
	total := 0
	for _, n := range s.Choices[p] {
		total += n
	}
	if total == 0 || !c.Valid() {
		return 0
	}
	return float64(s.Choices[p][choiceSlot(c)]) / float64(total)
}

// Validate checks the aggregate is internally consistent
func (s *Statistics) Validate() error {
	if s.Matches <= 0 {
		return fmt.Errorf("invalid matches count: %d", s.Matches)
	}
	if s.Decided()+s.Abandoned != s.Matches {
		return fmt.Errorf("wins (%d) plus abandoned (%d) does not match matches (%d)",
			s.Decided(), s.Abandoned, s.Matches)
	}
	if len(s.Values) != s.Decided() {
		return fmt.Errorf("values array length (%d) does not match decided matches (%d)",
			len(s.Values), s.Decided())
	}
	for _, p := range game.PlayerIndexes() {
		throws := 0
		for _, n := range s.Choices[p] {
			throws += n
		}
		if throws != s.Rounds {
			return fmt.Errorf("%s threw %d times in %d rounds", p, throws, s.Rounds)
		}
	}
	if s.Draws > s.Rounds {
		return fmt.Errorf("draws (%d) exceed rounds (%d)", s.Draws, s.Rounds)
	}
	return nil
}
