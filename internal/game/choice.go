package game

import "strings"

// Choice is one of the three hand shapes a player can throw.
// The zero value is not a valid choice.
type Choice uint8

const (
	// Rock beats Scissors
	Rock Choice = iota + 1
	// Paper beats Rock
	Paper
	// Scissors beats Paper
	Scissors
)

// choiceCount is the size of the beats cycle
const choiceCount = 3

var choices = [...]Choice{Rock, Paper, Scissors}

// RandSource is the randomness needed to draw a choice. *rand.Rand from
// math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Choices returns all valid choices in cycle order.
func Choices() []Choice {
	out := make([]Choice, len(choices))
	copy(out, choices[:])
	return out
}

// Valid reports whether c is one of Rock, Paper or Scissors.
func (c Choice) Valid() bool {
	return c >= Rock && c <= Scissors
}

// String returns the upper-case name of the choice
func (c Choice) String() string {
	switch c {
	case Rock:
		return "ROCK"
	case Paper:
		return "PAPER"
	case Scissors:
		return "SCISSORS"
	default:
		return "UNKNOWN"
	}
}

// Alias returns the short form accepted as input
func (c Choice) Alias() string {
	switch c {
	case Rock:
		return "r"
	case Paper:
		return "p"
	case Scissors:
		return "x"
	default:
		return ""
	}
}

// Beats reports whether c defeats other. Each choice beats exactly the one
// before it in the cycle, so the relation is irreflexive and total over
// distinct pairs. Invalid choices beat nothing and are beaten by nothing.
func (c Choice) Beats(other Choice) bool {
	if !c.Valid() || !other.Valid() {
		return false
	}
	return (int(c)-int(other)+choiceCount)%choiceCount == 1
}

// Counter returns the choice that beats c.
func (c Choice) Counter() Choice {
	if !c.Valid() {
		return 0
	}
	return Choice(int(c)%choiceCount + 1)
}

// ParseChoice matches text case-insensitively against the full name or the
// alias of every choice. Blank or unknown input reports false.
func ParseChoice(text string) (Choice, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	for _, c := range choices {
		if strings.EqualFold(text, c.String()) || strings.EqualFold(text, c.Alias()) {
			return c, true
		}
	}
	return 0, false
}

// RandomChoice draws a choice uniformly from src.
func RandomChoice(src RandSource) Choice {
	return choices[src.IntN(len(choices))]
}

// MarshalText implements encoding.TextMarshaler
func (c Choice) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrInvalidChoice
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Choice) UnmarshalText(text []byte) error {
	parsed, ok := ParseChoice(string(text))
	if !ok {
		return &ParseError{Input: string(text)}
	}
	*c = parsed
	return nil
}
