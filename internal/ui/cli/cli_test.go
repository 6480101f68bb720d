package cli

import (
	"bytes"
	"github.com/janpfeifer/pntGo/internal/searchers"
	"github.com/janpfeifer/pntGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestFormatResult(t *testing.T) {
	r := searchers.Result{
		Move:  3,
		Value: 0.69999,
		Stats: searchers.Stats{
			NodesVisited:     12,
			NodesEvaluated:   7,
			MaxDepthReached:  4,
			BranchingFactors: []int{1, 2, 2},
		},
	}
	want := "Move: 3\n" +
		"Value: 0.7\n" +
		"Number of Nodes Visited: 12\n" +
		"Number of Nodes Evaluated: 7\n" +
		"Max Depth Reached: 4\n" +
		"Avg Effective Branching Factor: 1.7\n"
	assert.Equal(t, want, FormatResult(r))

	var buf bytes.Buffer
	NewWithWriter(&buf, false).PrintResult(r)
	assert.Equal(t, want, buf.String())

	// No move, negative zero is displayed as 0.0.
	text := FormatResult(searchers.Result{Value: -0.01})
	assert.True(t, strings.HasPrefix(text, "Move: NONE\nValue: 0.0\n"), text)
	assert.Contains(t, text, "Avg Effective Branching Factor: 0.0\n")
}

func TestPrintResultColor(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, true).PrintResult(searchers.Result{Move: 1, Value: -0.5})
	plain := ansiFilter.ReplaceAllString(buf.String(), "")
	assert.Contains(t, plain, "Value: -0.5")
	assert.Contains(t, plain, "Number of Nodes Visited: 0")
}

func TestPrintState(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, false).PrintState(statetest.New(12, 3, 6))
	want := "  1   2 ( 3)  4   5 [ 6]  7   8   9  10 \n" +
		" 11  12 \n" +
		"2 of 12 tokens taken, last move 6, maximizing player to move\n"
	assert.Equal(t, want, buf.String())
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 3, displayWidth("\x1b[1;31mabc\x1b[0m"))
}
