// Package cli implements a command-line UI for the PNT solver: it prints positions and search results.
package cli

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/pntGo/internal/searchers"
	"github.com/janpfeifer/pntGo/internal/state"
	"golang.org/x/term"
	"io"
	"os"
	"regexp"
	"strings"
)

// TokensPerRow when printing the tokens of a state.
const TokensPerRow = 10

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len(ansiFilter.ReplaceAllString(s, ""))
}

// UI prints to its writer, with or without colors.
type UI struct {
	w     io.Writer
	color bool
}

var (
	takenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	lastMoveStyle = lipgloss.NewStyle().Background(lipgloss.Color("13")).Foreground(lipgloss.Color("0")).Bold(true)
	freeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	moveStyle     = lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0")).Bold(true)
	resultStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(0, 2)
)

// New returns a UI that prints to stdout.
func New(color bool) *UI {
	return NewWithWriter(os.Stdout, color)
}

// NewWithWriter returns a UI that prints to w.
func NewWithWriter(w io.Writer, color bool) *UI {
	return &UI{w: w, color: color}
}

// FormatResult returns the result in the plain format, one field per line, with the value and the
// average branching factor rounded to one decimal place.
func FormatResult(r searchers.Result) string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "Move: %s\n", r.Move)
	_, _ = fmt.Fprintf(&sb, "Value: %.1f\n", r.RoundedValue())
	_, _ = fmt.Fprintf(&sb, "Number of Nodes Visited: %d\n", r.Stats.NodesVisited)
	_, _ = fmt.Fprintf(&sb, "Number of Nodes Evaluated: %d\n", r.Stats.NodesEvaluated)
	_, _ = fmt.Fprintf(&sb, "Max Depth Reached: %d\n", r.Stats.MaxDepthReached)
	_, _ = fmt.Fprintf(&sb, "Avg Effective Branching Factor: %.1f\n", r.Stats.RoundedAverageBranchingFactor())
	return sb.String()
}

// PrintResult prints the result of a search. With colors, the result is printed in a box, centered on
// the terminal.
func (ui *UI) PrintResult(r searchers.Result) {
	text := FormatResult(r)
	if !ui.color {
		_, _ = fmt.Fprint(ui.w, text)
		return
	}
	text = strings.TrimRight(text, "\n")
	if r.HasMove() {
		text = strings.Replace(text, "Move: "+r.Move.String(), "Move: "+moveStyle.Render(" "+r.Move.String()+" "), 1)
	}
	ui.printCentered(resultStyle.Render(text))
}

// PrintState prints the tokens of the state: taken ones crossed, the last move highlighted.
func (ui *UI) PrintState(s *state.State) {
	var sb strings.Builder
	width := len(fmt.Sprintf("%d", s.NumTokens))
	for t := state.Token(1); int(t) <= s.NumTokens; t++ {
		cell := fmt.Sprintf("%*d", width, int(t))
		switch {
		case !ui.color && t == s.LastMove:
			cell = fmt.Sprintf("[%s]", cell)
		case !ui.color && s.Taken.Has(t):
			cell = fmt.Sprintf("(%s)", cell)
		case !ui.color:
			cell = fmt.Sprintf(" %s ", cell)
		case t == s.LastMove:
			cell = lastMoveStyle.Render(" " + cell + " ")
		case s.Taken.Has(t):
			cell = " " + takenStyle.Render(cell) + " "
		default:
			cell = " " + freeStyle.Render(cell) + " "
		}
		sb.WriteString(cell)
		if int(t)%TokensPerRow == 0 || int(t) == s.NumTokens {
			sb.WriteString("\n")
		}
	}
	player := "maximizing"
	if !s.IsMaximizing() {
		player = "minimizing"
	}
	_, _ = fmt.Fprintf(&sb, "%d of %d tokens taken, last move %s, %s player to move\n",
		s.NumTaken, s.NumTokens, s.LastMove, player)
	if ui.color {
		ui.printCentered(strings.TrimRight(sb.String(), "\n"))
		return
	}
	_, _ = fmt.Fprint(ui.w, sb.String())
}

// printCentered prints the block centered in the terminal width, if stdout is a terminal.
func (ui *UI) printCentered(block string) {
	lines := strings.Split(block, "\n")
	terminalWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		terminalWidth = 0
	}
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((terminalWidth-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(ui.w)
			continue
		}
		_, _ = fmt.Fprintf(ui.w, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}
