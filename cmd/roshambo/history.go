package main

import (
	"os"

	"github.com/lox/roshambo/internal/display"
	"github.com/lox/roshambo/internal/history"
)

// HistoryCmd is the root command for match transcripts.
type HistoryCmd struct {
	Show HistoryShowCmd `cmd:"show" help:"Print a saved match transcript"`
}

// HistoryShowCmd renders a TOML transcript written by play --history.
type HistoryShowCmd struct {
	File    string `arg:"" name:"file" help:"Path to a transcript file" type:"existingfile"`
	NoColor bool   `help:"Disable colored output"`
}

func (cmd HistoryShowCmd) Run() error {
	rec, err := history.ReadFile(cmd.File)
	if err != nil {
		return err
	}
	display.NewRenderer(os.Stdout, display.Options{Color: !cmd.NoColor}).RenderRecord(rec)
	return nil
}
