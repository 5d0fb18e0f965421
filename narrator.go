package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"holdem/engine"
	"holdem/experiments"
	"holdem/game"
	"holdem/searcher"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	stayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	foldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// consoleNarrator prints a hand as it is played
type consoleNarrator struct {
	out io.Writer
}

func newConsoleNarrator(out io.Writer) *consoleNarrator {
	return &consoleNarrator{out: out}
}

func (n *consoleNarrator) HoleDealt(hole []game.Card) {
	fmt.Fprintf(n.out, "%s %s\n\n", headerStyle.Render("Bot hole cards:"), handStyle.Render(game.FormatCards(hole)))
}

func (n *consoleNarrator) PhaseDecided(phase game.Phase, board []game.Card, result searcher.Result) {
	style := stayStyle
	if result.Decision == searcher.Fold {
		style = foldStyle
	}
	fmt.Fprintf(n.out, "%s Decision: %s | Win%%: %.2f%% over %d sims | Board: [%s]\n",
		headerStyle.Render(phase.String()),
		style.Render(result.Decision.String()),
		result.WinProbability*100,
		result.Simulations,
		game.FormatCards(board))
	if result.Decision == searcher.Fold {
		fmt.Fprintf(n.out, "Bot folded at %s\n", phase)
	}
}

func (n *consoleNarrator) BoardRevealed(cards []game.Card) {
	fmt.Fprintf(n.out, "Community card(s) revealed: [%s]\n\n", game.FormatCards(cards))
}

func (n *consoleNarrator) Showdown(result engine.HandResult) {
	fmt.Fprintf(n.out, "\n%s %s\n", headerStyle.Render("Opponent hole cards:"), handStyle.Render(game.FormatCards(result.OppHole)))
	fmt.Fprintf(n.out, "%s [%s]\n", headerStyle.Render("Final Board:"), game.FormatCards(result.Board))

	winner := "BOT"
	winBest, loseBest := result.BotBest, result.OppBest
	winRank, loseRank := result.BotRank, result.OppRank
	if result.Outcome == engine.OpponentWins {
		winner = "OPPONENT"
		winBest, loseBest = loseBest, winBest
		winRank, loseRank = loseRank, winRank
	}

	fmt.Fprintf(n.out, "\n%s\n\n", headerStyle.Render(fmt.Sprintf("** %s WINS **", winner)))
	fmt.Fprintf(n.out, "Winning hand: [%s] --> %s\n", game.FormatCards(winBest[:]), categoryStyle.Render(winRank.Category.String()))
	fmt.Fprintf(n.out, "Losing hand: [%s] --> %s\n", game.FormatCards(loseBest[:]), categoryStyle.Render(loseRank.Category.String()))
}

func printSummary(out io.Writer, report experiments.Report) {
	s := report.Summary
	fmt.Fprintf(out, "%s\n", headerStyle.Render(fmt.Sprintf("Simulation summary (seed %d)", report.Seed)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Hands\t%d\n", s.Hands)
	fmt.Fprintf(w, "Folds\t%s\n", foldStyle.Render(fmt.Sprint(s.Folds)))
	fmt.Fprintf(w, "Bot wins\t%s\n", stayStyle.Render(fmt.Sprint(s.BotWins)))
	fmt.Fprintf(w, "Opponent wins\t%d\n", s.OpponentWins)
	fmt.Fprintf(w, "Showdown win rate\t%.2f%%\n", s.ShowdownWinRate()*100)
	fmt.Fprintf(w, "Simulations\t%d\n", s.Simulations)

	phases := make([]string, 0, len(s.FoldsByPhase))
	for phase := range s.FoldsByPhase {
		phases = append(phases, phase)
	}
	sort.Strings(phases)
	for _, phase := range phases {
		fmt.Fprintf(w, "Folds at %s\t%d\n", phase, s.FoldsByPhase[phase])
	}
	w.Flush()

	if report.Dir != "" {
		fmt.Fprintf(out, "Records written to %s\n", report.Dir)
	}
}
