package game

import "fmt"

// PlayerIndex identifies a player slot, independent of who occupies it.
type PlayerIndex uint8

const (
	PlayerOne PlayerIndex = iota
	PlayerTwo
)

// PlayerIndexes returns both slots in order.
func PlayerIndexes() []PlayerIndex {
	return []PlayerIndex{PlayerOne, PlayerTwo}
}

// Valid reports whether p is PlayerOne or PlayerTwo
func (p PlayerIndex) Valid() bool {
	return p == PlayerOne || p == PlayerTwo
}

func (p PlayerIndex) String() string {
	switch p {
	case PlayerOne:
		return "PLAYER_ONE"
	case PlayerTwo:
		return "PLAYER_TWO"
	default:
		return fmt.Sprintf("PlayerIndex(%d)", uint8(p))
	}
}

// mustValid panics on a slot outside the two legal values. Passing one is a
// caller bug, not a recoverable condition.
func mustValid(p PlayerIndex) {
	if !p.Valid() {
		panic(fmt.Sprintf("game: invalid player index %d", uint8(p)))
	}
}
