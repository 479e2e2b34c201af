package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound_Result(t *testing.T) {
	tests := []struct {
		name     string
		one, two Choice
		want     RoundResult
	}{
		{"rock crushes scissors", Rock, Scissors, PlayerOneWins},
		{"paper covers rock", Rock, Paper, PlayerTwoWins},
		{"same shape draws", Rock, Rock, Draw},
		{"scissors cut paper", Scissors, Paper, PlayerOneWins},
		{"paper loses to scissors", Paper, Scissors, PlayerTwoWins},
		{"paper draw", Paper, Paper, Draw},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round := NewRound(i+1, tt.one, tt.two)
			assert.Equal(t, tt.want, round.Result())
			assert.Equal(t, i+1, round.Index())
		})
	}
}

func TestRound_Choice(t *testing.T) {
	round := NewRound(1, Rock, Paper)
	assert.Equal(t, Rock, round.Choice(PlayerOne))
	assert.Equal(t, Paper, round.Choice(PlayerTwo))
}

func TestRound_InvalidPlayerIndexPanics(t *testing.T) {
	round := NewRound(1, Rock, Paper)
	assert.Panics(t, func() { round.Choice(PlayerIndex(2)) })
}

func TestRoundResult_Winner(t *testing.T) {
	p, ok := PlayerOneWins.Winner()
	assert.True(t, ok)
	assert.Equal(t, PlayerOne, p)

	p, ok = PlayerTwoWins.Winner()
	assert.True(t, ok)
	assert.Equal(t, PlayerTwo, p)

	_, ok = Draw.Winner()
	assert.False(t, ok)
}

func TestParseRoundResult(t *testing.T) {
	for _, r := range []RoundResult{Draw, PlayerOneWins, PlayerTwoWins} {
		parsed, ok := ParseRoundResult(r.String())
		assert.True(t, ok)
		assert.Equal(t, r, parsed)
	}
	_, ok := ParseRoundResult("TIE")
	assert.False(t, ok)
}
