// Package statetest provides helper functions to create tests using PNT states.
package statetest

import (
	"github.com/janpfeifer/must"
	"github.com/janpfeifer/pntGo/internal/state"
)

// New creates a State with numTokens tokens and the given tokens taken, in order. The last one is the
// last move.
//
// It panics if the state is not valid.
func New(numTokens int, taken ...int) *state.State {
	return must.M1(state.New(numTokens, Tokens(taken...)))
}

// Tokens converts a list of ints to a list of Tokens.
func Tokens(values ...int) []state.Token {
	tokens := make([]state.Token, len(values))
	for ii, v := range values {
		tokens[ii] = state.Token(v)
	}
	return tokens
}
