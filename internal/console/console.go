// Package console owns the process's line-oriented terminal input and output.
// A single Console is created by the command and handed to whatever needs to
// prompt, so input is never read from two places at once.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Console reads trimmed lines from an input stream and writes prompts to an
// output stream.
type Console struct {
	in    io.Reader
	out   io.Writer
	lines chan string
	start sync.Once

	// err is set before lines is closed
	err error
}

// New creates a console over the given streams
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    in,
		out:   out,
		lines: make(chan string),
	}
}

// scan feeds lines to ReadLine until the input is exhausted, then closes
// the channel. A cancelled ReadLine leaves the pending line for the next
// caller.
func (c *Console) scan() {
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		c.lines <- scanner.Text()
	}
	c.err = scanner.Err()
	if c.err == nil {
		c.err = io.EOF
	}
	close(c.lines)
}

// ReadLine writes prompt and waits for one line of input. It returns io.EOF
// once input is exhausted and ctx.Err() if ctx is cancelled first.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	c.start.Do(func() { go c.scan() })

	if prompt != "" {
		if _, err := io.WriteString(c.out, prompt); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case text, ok := <-c.lines:
		if !ok {
			return "", c.err
		}
		return strings.TrimSpace(text), nil
	}
}

// Writer exposes the output stream for renderers
func (c *Console) Writer() io.Writer {
	return c.out
}
