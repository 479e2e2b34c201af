package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// LogFlags are shared by every command that logs
type LogFlags struct {
	Debug   bool   `help:"Enable debug logging"`
	LogFile string `help:"Write logs to this file instead of stderr" type:"path"`
}

// setupLogger configures charmbracelet/log. The returned close func is always
// safe to call.
func (f LogFlags) setupLogger() (*log.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closer := func() {}

	if f.LogFile != "" {
		file, err := os.OpenFile(f.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("failed to open log file: %w", err)
		}
		out = file
		closer = func() {
			if err := file.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
			}
		}
	}

	return newLogger(out, f.Debug), closer, nil
}

func newLogger(out io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}
