package strategy

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/roshambo/internal/game"
)

// LineReader prompts for and returns one trimmed line of input.
// *console.Console implements it.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Interactive asks a person for a choice and keeps asking until the answer
// parses. Invalid input is reported and retried, never returned.
type Interactive struct {
	name   string
	input  LineReader
	logger *log.Logger
	prompt string
}

// NewInteractive creates a strategy reading from input on behalf of name
func NewInteractive(name string, input LineReader, logger *log.Logger) *Interactive {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Interactive{
		name:   name,
		input:  input,
		logger: logger.WithPrefix("input").With("player", name),
		prompt: fmt.Sprintf("%s make your choice [%s]: ", name, formatChoices()),
	}
}

// MakeChoice blocks until a valid choice is entered. It only fails when the
// input itself fails (for example EOF) or ctx is cancelled.
func (i *Interactive) MakeChoice(ctx context.Context) (game.Choice, error) {
	prompt := i.prompt
	for {
		text, err := i.input.ReadLine(ctx, prompt)
		if err != nil {
			return 0, fmt.Errorf("failed to read choice for %s: %w", i.name, err)
		}

		if text == "" {
			prompt = "No input entered, please type a choice.\n" + i.prompt
			continue
		}

		choice, ok := game.ParseChoice(text)
		if !ok {
			i.logger.Debug("Rejected input", "input", text)
			prompt = fmt.Sprintf("Invalid player choice: %s\n%s", text, i.prompt)
			continue
		}
		return choice, nil
	}
}

func formatChoices() string {
	parts := make([]string, 0, 3)
	for _, c := range game.Choices() {
		parts = append(parts, fmt.Sprintf("%s (%s)", c, c.Alias()))
	}
	return strings.Join(parts, ", ")
}

var _ Strategy = (*Interactive)(nil)
