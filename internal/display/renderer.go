// Package display renders match events and stored match records for a
// terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/history"
	"github.com/lox/roshambo/internal/match"
)

const banner = `█▀█ █▀█ █▀▀ █▄▀
█▀▄ █▄█ █▄▄ █░█
█▀█ ▄▀█ █▀█ █▀▀ █▀█
█▀▀ █▀█ █▀▀ ██▄ █▀▄
█▀ █▀▀ █ █▀ █▀ █▀█ █▀█ █▀
▄█ █▄▄ █ ▄█ ▄█ █▄█ █▀▄ ▄█`

var borderLine = strings.Repeat("-", 20)

// Options controls rendering
type Options struct {
	Color      bool
	ShowBanner bool

	// ForceColor renders colors even when out is not a terminal, for writers
	// that feed one indirectly such as the TUI log.
	ForceColor bool
}

// Renderer writes a human-readable account of a match. It subscribes to a
// match runner and prints as events arrive.
type Renderer struct {
	out    io.Writer
	styles Styles
	opts   Options

	players [2]string
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, opts Options) *Renderer {
	return &Renderer{
		out:    out,
		styles: NewStyles(newLipglossRenderer(out, opts)),
		opts:   opts,
	}
}

func (r *Renderer) OnEvent(event match.Event) {
	switch e := event.(type) {
	case match.MatchStartEvent:
		r.players = e.Players
		r.renderStart(e.ScoreToWin)
	case match.RoundStartEvent:
		r.renderRoundStart(e.Index, e.Scores)
	case match.RoundPlayedEvent:
		r.renderRound(e.Round)
	case match.MatchEndEvent:
		r.renderWinner(e.WinnerName, e.FinalRound.Index())
	case match.MatchAbandonedEvent:
		r.println(r.styles.Warning.Render("Quitting game..."))
	}
}

func (r *Renderer) renderStart(scoreToWin int) {
	if r.opts.ShowBanner {
		r.println(r.styles.Banner.Render(banner))
		r.println()
	}
	r.println(r.styles.Info.Render(fmt.Sprintf("First to %d wins", scoreToWin)))
	r.println(r.styles.Border.Render(borderLine))
}

func (r *Renderer) renderRoundStart(index int, scores [2]int) {
	r.println(r.styles.Header.Render(fmt.Sprintf("Round %d", index)))
	r.println()
	r.println(r.Scoreboard(scores))
	r.println()
}

// Scoreboard formats the two scores on one line
func (r *Renderer) Scoreboard(scores [2]int) string {
	return fmt.Sprintf("Scoreboard:\n%s: %s | %s: %s",
		r.styles.Player.Render(r.players[game.PlayerOne]),
		r.styles.Score.Render(fmt.Sprint(scores[game.PlayerOne])),
		r.styles.Player.Render(r.players[game.PlayerTwo]),
		r.styles.Score.Render(fmt.Sprint(scores[game.PlayerTwo])),
	)
}

func (r *Renderer) renderRound(round game.Round) {
	r.println("Round Details:")
	for _, p := range game.PlayerIndexes() {
		r.println(fmt.Sprintf("%s chose: %s",
			r.styles.Player.Render(r.players[p]),
			r.styles.Choice.Render(round.Choice(p).String())))
	}
	r.println(r.styles.Success.Render(r.FormatResult(round.Result())))
	r.println()
}

// FormatResult describes a round outcome using player names
func (r *Renderer) FormatResult(result game.RoundResult) string {
	if winner, ok := result.Winner(); ok {
		return fmt.Sprintf("%s wins this round!", r.players[winner])
	}
	return "It's a draw!"
}

func (r *Renderer) renderWinner(name string, round int) {
	r.println(r.styles.Border.Render(borderLine))
	r.println(r.styles.Success.Render(fmt.Sprintf("The winner is %s on round %d", name, round)))
}

// Separator prints the line drawn between rounds
func (r *Renderer) Separator() {
	r.println(r.styles.Border.Render(borderLine))
}

// RenderRecord prints a stored match record in the same format as a live
// match, followed by a summary line.
func (r *Renderer) RenderRecord(rec history.Record) {
	r.players = [2]string{rec.Players[game.PlayerOne], rec.Players[game.PlayerTwo]}

	r.println(r.styles.Header.Render(fmt.Sprintf("Match %s", rec.Match)))
	if len(rec.Strategies) == 2 {
		r.println(r.styles.Info.Render(fmt.Sprintf("%s (%s) vs %s (%s)",
			rec.Players[0], rec.Strategies[0], rec.Players[1], rec.Strategies[1])))
	}
	r.println(r.styles.Info.Render(fmt.Sprintf("Played %s, first to %d",
		rec.StartedAt.Format("2006-01-02 15:04:05"), rec.ScoreToWin)))
	r.println(r.styles.Border.Render(borderLine))

	var sb game.Scoreboard
	for _, rr := range rec.Rounds {
		round := game.NewRound(rr.Index, rr.PlayerOne, rr.PlayerTwo)
		r.println(r.styles.Header.Render(fmt.Sprintf("Round %d", round.Index())))
		r.renderRound(round)
		sb.Apply(round.Result())
	}

	final := [2]int{sb.ScoreOf(game.PlayerOne), sb.ScoreOf(game.PlayerTwo)}
	r.println(r.Scoreboard(final))
	switch {
	case rec.Winner != "":
		r.renderWinner(rec.Winner, len(rec.Rounds))
	case rec.Abandoned:
		r.println(r.styles.Warning.Render(fmt.Sprintf("Abandoned after %d rounds", len(rec.Rounds))))
	}
}

func (r *Renderer) println(args ...any) {
	fmt.Fprintln(r.out, args...)
}
