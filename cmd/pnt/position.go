package main

import (
	"github.com/janpfeifer/pntGo/internal/state"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// Position to solve, as given in the command line: the game state and the max depth of search.
type Position struct {
	State    *state.State
	MaxDepth int
}

// ParsePosition parses the positional arguments:
//
//	<n_tokens> <n_taken_tokens> <taken_1> ... <taken_k> <depth>
//
// where k == n_taken_tokens, taken tokens are listed in the order they were taken (so taken_k is the
// last move), and depth is the max depth of search, with 0 meaning unbounded.
func ParsePosition(args []string) (*Position, error) {
	if len(args) < 3 {
		return nil, errors.Errorf("expected at least 3 arguments (<n_tokens> <n_taken_tokens> ... <depth>), got %d", len(args))
	}
	values := make([]int, len(args))
	for ii, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument #%d %q is not an integer", ii+1, arg)
		}
		values[ii] = v
	}
	numTokens, numTaken := values[0], values[1]
	if numTaken < 0 {
		return nil, errors.Errorf("invalid number of taken tokens %d", numTaken)
	}
	if len(values) != numTaken+3 {
		return nil, errors.Errorf("%d taken tokens announced, but %d listed", numTaken, len(values)-3)
	}
	maxDepth := values[len(values)-1]
	if maxDepth < 0 {
		return nil, errors.Errorf("invalid depth %d, it must be >= 0 (0 for unbounded)", maxDepth)
	}
	taken := make([]state.Token, numTaken)
	for ii := range taken {
		taken[ii] = state.Token(values[2+ii])
	}
	s, err := state.New(numTokens, taken)
	if err != nil {
		return nil, errors.WithMessagef(err, "invalid position %q", strings.Join(args, " "))
	}
	return &Position{State: s, MaxDepth: maxDepth}, nil
}
