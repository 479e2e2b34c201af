package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func typeLine(m *Model, text string) {
	if text != "" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel_Output(t *testing.T) {
	m := NewModel(quietLogger())

	m.Update(outputMsg("Round 1\n"))
	m.Update(outputMsg("Alice chose: "))
	m.Update(outputMsg("ROCK\n"))
	m.Update(outputMsg("It's a draw!"))

	assert.Equal(t, []string{"Round 1", "Alice chose: ROCK"}, m.lines)
	assert.Equal(t, "It's a draw!", m.partial)
	assert.Equal(t, "Round 1\nAlice chose: ROCK\nIt's a draw!", m.content())
	assert.Contains(t, m.View(), "Alice chose: ROCK")
}

func TestModel_AnswersPrompt(t *testing.T) {
	m := NewModel(quietLogger())
	reply := make(chan string, 1)

	m.Update(promptMsg{prompt: "Invalid player choice: lizard\nAlice make your choice: ", reply: reply})
	assert.Equal(t, "Alice make your choice: ", m.input.Prompt)
	assert.Equal(t, []string{"Invalid player choice: lizard"}, m.lines)

	typeLine(m, " paper ")
	require.Len(t, reply, 1)
	assert.Equal(t, "paper", <-reply)

	assert.Equal(t, "Alice make your choice: paper", m.lines[len(m.lines)-1])
	assert.Equal(t, idlePrompt, m.input.Prompt)
	assert.Empty(t, m.input.Value())
	assert.Nil(t, m.reply)
}

func TestModel_TypeAhead(t *testing.T) {
	m := NewModel(quietLogger())

	typeLine(m, "r")
	typeLine(m, "")
	assert.Equal(t, []string{"r", ""}, m.typed)

	first := make(chan string, 1)
	m.Update(promptMsg{prompt: "choice: ", reply: first})
	assert.Equal(t, "r", <-first)

	second := make(chan string, 1)
	m.Update(promptMsg{prompt: "continue: ", reply: second})
	assert.Equal(t, "", <-second)
	assert.Empty(t, m.typed)
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := NewModel(quietLogger())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel(quietLogger())
	for i := 0; i < 20; i++ {
		m.Update(outputMsg("line\n"))
	}
	m.Update(outputMsg("last\n"))

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 6})
	assert.Equal(t, 4, m.logViewport.Height)
	assert.True(t, m.logViewport.AtBottom())
	assert.Contains(t, m.View(), "last")
}
