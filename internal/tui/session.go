package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Session runs a Model as a bubbletea program and adapts it to what the match
// code expects: a line reader for prompts and a writer for rendered output.
type Session struct {
	program *tea.Program
	logger  *log.Logger

	done chan struct{}
	err  error
}

// NewSession creates a session reading keys from in and drawing to out.
// Extra options are passed to the program, e.g. tea.WithAltScreen().
func NewSession(in io.Reader, out io.Writer, logger *log.Logger, opts ...tea.ProgramOption) *Session {
	options := append([]tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out)}, opts...)
	return &Session{
		program: tea.NewProgram(NewModel(logger), options...),
		logger:  logger.WithPrefix("tui"),
		done:    make(chan struct{}),
	}
}

// Start runs the program in the background
func (s *Session) Start() {
	go func() {
		defer close(s.done)
		if _, err := s.program.Run(); err != nil {
			s.logger.Error("TUI program failed", "error", err)
			s.err = err
		}
	}()
}

// ReadLine shows prompt and waits for the next submitted line. Start must
// have been called. Once the program has exited, for example because the
// player pressed Ctrl+C, it returns io.EOF.
func (s *Session) ReadLine(ctx context.Context, prompt string) (string, error) {
	reply := make(chan string, 1)
	s.program.Send(promptMsg{prompt: prompt, reply: reply})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-s.done:
		return "", io.EOF
	case line := <-reply:
		return line, nil
	}
}

// Writer returns a writer that appends to the match log
func (s *Session) Writer() io.Writer {
	return sessionWriter{s}
}

// Close stops the program and waits for it to restore the terminal
func (s *Session) Close() error {
	s.program.Quit()
	<-s.done
	return s.err
}

type sessionWriter struct {
	s *Session
}

func (w sessionWriter) Write(p []byte) (int, error) {
	w.s.program.Send(outputMsg(string(p)))
	return len(p), nil
}
