package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles used when rendering a match
type Styles struct {
	Banner  lipgloss.Style
	Header  lipgloss.Style
	Score   lipgloss.Style
	Player  lipgloss.Style
	Choice  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Border  lipgloss.Style
}

// NewStyles builds the style set for a renderer bound to one output.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Banner: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Score: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Player: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Choice: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Border: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// newLipglossRenderer binds lipgloss to out. With color disabled the ASCII
// profile strips every escape sequence.
func newLipglossRenderer(out io.Writer, opts Options) *lipgloss.Renderer {
	switch {
	case !opts.Color:
		return lipgloss.NewRenderer(out, termenv.WithProfile(termenv.Ascii))
	case opts.ForceColor:
		return lipgloss.NewRenderer(out, termenv.WithProfile(termenv.ANSI256))
	default:
		return lipgloss.NewRenderer(out)
	}
}
