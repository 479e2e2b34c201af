// Package tui is a bubbletea front end for interactive matches. The match log
// scrolls in a viewport above a single input line, and prompts from the
// match are answered in that line.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const idlePrompt = "> "

// outputMsg carries text written by the match renderer
type outputMsg string

// promptMsg asks for one line of input. The answer is sent on reply, which
// must have room for one value.
type promptMsg struct {
	prompt string
	reply  chan string
}

var (
	inputPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// Model is the bubbletea model for an interactive match
type Model struct {
	logger *log.Logger

	logViewport viewport.Model
	input       textinput.Model

	lines   []string
	partial string // output not yet ended by a newline

	reply  chan string
	prompt string
	// Lines entered while nothing was asking, handed to the next prompt
	typed []string

	width, height int
	quitting      bool
}

// NewModel creates an idle model with an empty log
func NewModel(logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "rock, paper, scissors (r, p, x)"
	ti.Prompt = idlePrompt
	ti.PromptStyle = inputPromptStyle
	ti.CharLimit = 64
	ti.Focus()

	return &Model{
		logger:      logger.WithPrefix("tui"),
		logViewport: viewport.New(10, 5),
		input:       ti,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outputMsg:
		m.appendOutput(string(msg))
		m.refresh()
		return m, nil

	case promptMsg:
		m.ask(msg)
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = max(msg.Width, 1)
		m.logViewport.Height = max(msg.Height-2, 1)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.logger.Debug("Quit requested")
			m.quitting = true
			return m, tea.Quit
		case "enter", "ctrl+j":
			m.submit(strings.TrimSpace(m.input.Value()))
			m.input.Reset()
			m.refresh()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ask shows a prompt. Everything before its last newline goes to the log and
// the last line labels the input.
func (m *Model) ask(msg promptMsg) {
	text := msg.prompt
	if i := strings.LastIndex(text, "\n"); i >= 0 {
		m.appendOutput(text[:i+1])
		text = text[i+1:]
	}
	m.prompt = text
	m.reply = msg.reply
	if text != "" {
		m.input.Prompt = text
	}

	if len(m.typed) > 0 {
		line := m.typed[0]
		m.typed = m.typed[1:]
		m.answer(line)
	}
}

func (m *Model) submit(line string) {
	if m.reply == nil {
		m.typed = append(m.typed, line)
		return
	}
	m.answer(line)
}

// answer echoes the prompt and line into the log and releases the waiting
// reader.
func (m *Model) answer(line string) {
	m.appendOutput(m.prompt + line + "\n")
	m.logger.Debug("Answered prompt", "prompt", m.prompt, "input", line)

	m.reply <- line
	m.reply = nil
	m.prompt = ""
	m.input.Prompt = idlePrompt
}

func (m *Model) appendOutput(text string) {
	parts := strings.Split(m.partial+text, "\n")
	m.lines = append(m.lines, parts[:len(parts)-1]...)
	m.partial = parts[len(parts)-1]
}

func (m *Model) content() string {
	all := m.lines
	if m.partial != "" {
		all = append(all[:len(all):len(all)], m.partial)
	}
	return strings.Join(all, "\n")
}

func (m *Model) refresh() {
	m.logViewport.SetContent(m.content())
	m.logViewport.GotoBottom()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("Enter to submit • PgUp/PgDn scroll • Ctrl+C to quit")

	// Without a terminal size there is nothing to scroll, so show everything
	if m.height == 0 {
		return m.content() + "\n" + m.input.View() + "\n" + help
	}
	return m.logViewport.View() + "\n" + m.input.View() + "\n" + help
}
