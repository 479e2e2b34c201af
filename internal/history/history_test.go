package history

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/match"
	"github.com/lox/roshambo/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	start := time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)
	return Record{
		Match:      "0192f3a4-0000-7000-8000-000000000001",
		ScoreToWin: 2,
		Players:    []string{"Human", "Computer"},
		Strategies: []string{"human", "random:42"},
		Winner:     "Computer",
		StartedAt:  start,
		EndedAt:    start.Add(30 * time.Second),
		Rounds: []RoundRecord{
			{Index: 1, PlayerOne: game.Rock, PlayerTwo: game.Rock, Result: "DRAW"},
			{Index: 2, PlayerOne: game.Rock, PlayerTwo: game.Paper, Result: "PLAYER_TWO_WINS"},
			{Index: 3, PlayerOne: game.Scissors, PlayerTwo: game.Rock, Result: "PLAYER_TWO_WINS"},
		},
	}
}

func TestEncodeDecode(t *testing.T) {
	rec := sampleRecord()

	data, err := Encode(rec)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `score_to_win = 2`)
	assert.Contains(t, text, `[[rounds]]`)
	assert.Contains(t, text, `player_one = "SCISSORS"`)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, rec, decoded)
	assert.Equal(t, [2]int{0, 2}, decoded.Scores())
}

func TestDecode_AcceptsAliases(t *testing.T) {
	data := `
match = "m1"
score_to_win = 1
players = ["A", "B"]
winner = "A"
started_at = 2025-01-01T00:00:00Z
ended_at = 2025-01-01T00:00:05Z

[[rounds]]
index = 1
player_one = "r"
player_two = "x"
result = "PLAYER_ONE_WINS"
`
	rec, err := Decode([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, game.Rock, rec.Rounds[0].PlayerOne)
	assert.Equal(t, game.Scissors, rec.Rounds[0].PlayerTwo)

	p, ok := rec.WinnerIndex()
	require.True(t, ok)
	assert.Equal(t, game.PlayerOne, p)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Record)
		errMsg string
	}{
		{"missing id", func(r *Record) { r.Match = "" }, "match id"},
		{"one player", func(r *Record) { r.Players = r.Players[:1] }, "expected 2 players"},
		{"bad threshold", func(r *Record) { r.ScoreToWin = 0 }, "score to win"},
		{"gap in rounds", func(r *Record) { r.Rounds[1].Index = 5 }, "has index 5"},
		{"unknown result", func(r *Record) { r.Rounds[0].Result = "TIE" }, "unknown result"},
		{"result disagrees", func(r *Record) { r.Rounds[0].Result = "PLAYER_ONE_WINS" }, "records PLAYER_ONE_WINS"},
		{"stranger wins", func(r *Record) { r.Winner = "Nobody" }, "is not a player"},
		{"winner short of threshold", func(r *Record) { r.ScoreToWin = 3 }, "did not reach 3"},
		{"missing choice", func(r *Record) {
			r.Rounds[1].PlayerOne = 0
		}, "invalid choice"},
		{"round after the winning round", func(r *Record) {
			r.Rounds = append(r.Rounds, RoundRecord{Index: 4, PlayerOne: game.Paper, PlayerTwo: game.Rock, Result: "PLAYER_ONE_WINS"})
		}, "match already concluded"},
		{"decided match without winner", func(r *Record) { r.Winner = "" }, "no winner is recorded"},
		{"decided match marked abandoned", func(r *Record) { r.Abandoned = true }, "cannot be abandoned"},
		{"undecided match not abandoned", func(r *Record) {
			r.Winner = ""
			r.Rounds = r.Rounds[:2]
		}, "must be marked abandoned"},
		{"wrong player named winner", func(r *Record) { r.Winner = "Human" }, "did not reach 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := sampleRecord()
			tt.mutate(&rec)
			err := rec.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	rec := sampleRecord()
	assert.NoError(t, rec.Validate())
}

func TestDecode_RejectsMissingChoice(t *testing.T) {
	data := `
match = "m1"
score_to_win = 1
players = ["A", "B"]
winner = "B"

[[rounds]]
index = 1
player_two = "r"
result = "PLAYER_TWO_WINS"
`
	_, err := Decode([]byte(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrInvalidChoice)
}

func TestDecode_RejectsRoundAfterWinner(t *testing.T) {
	data := `
match = "m1"
score_to_win = 1
players = ["A", "B"]
winner = "A"

[[rounds]]
index = 1
player_one = "p"
player_two = "r"
result = "PLAYER_ONE_WINS"

[[rounds]]
index = 2
player_one = "r"
player_two = "p"
result = "PLAYER_TWO_WINS"
`
	_, err := Decode([]byte(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrMatchConcluded)
}

func TestDecode_RejectsUnknownChoice(t *testing.T) {
	data := `
match = "m1"
score_to_win = 1
players = ["A", "B"]

[[rounds]]
index = 1
player_one = "lizard"
player_two = "x"
result = "PLAYER_TWO_WINS"
`
	_, err := Decode([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lizard")
}

func TestWriteReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "match.toml")

	rec := sampleRecord()
	require.NoError(t, WriteFile(path, rec))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be renamed away")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteFile_MissingDir(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "nope", "match.toml"), sampleRecord())
	assert.Error(t, err)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestRecorder_FromRunner(t *testing.T) {
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC))

	runner, err := match.NewRunner(match.Config{
		ScoreToWin: 2,
		Players: [2]match.Player{
			{Name: "Alice", Strategy: strategy.NewFixed(game.Paper), Kind: "fixed:paper"},
			{Name: "Bob", Strategy: strategy.NewFixed(game.Rock), Kind: "fixed:rock"},
		},
		Logger: log.New(io.Discard),
		Clock:  clock,
		NewID:  func() string { return "m-42" },
	})
	require.NoError(t, err)

	rec := NewRecorder()
	runner.Subscribe(rec)

	_, err = runner.Run(context.Background())
	require.NoError(t, err)
	require.True(t, rec.Done())

	got := rec.Record()
	require.NoError(t, got.Validate())
	assert.Equal(t, "m-42", got.Match)
	assert.Equal(t, "Alice", got.Winner)
	assert.Equal(t, []string{"fixed:paper", "fixed:rock"}, got.Strategies)
	require.Len(t, got.Rounds, 2)
	assert.Equal(t, "PLAYER_ONE_WINS", got.Rounds[1].Result)
	assert.False(t, got.Abandoned)

	data, err := Encode(got)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `winner = "Alice"`))
}

func TestRecorder_Abandoned(t *testing.T) {
	runner, err := match.NewRunner(match.Config{
		ScoreToWin: 3,
		Players: [2]match.Player{
			{Name: "A", Strategy: strategy.NewFixed(game.Rock)},
			{Name: "B", Strategy: strategy.NewFixed(game.Rock)},
		},
		Continue: func(context.Context) (bool, error) { return false, nil },
	})
	require.NoError(t, err)

	rec := NewRecorder()
	runner.Subscribe(rec)
	_, err = runner.Run(context.Background())
	require.NoError(t, err)

	got := rec.Record()
	assert.True(t, got.Abandoned)
	assert.Empty(t, got.Winner)
	assert.Nil(t, got.Strategies)
	assert.Len(t, got.Rounds, 1)
	assert.NoError(t, got.Validate())
}
