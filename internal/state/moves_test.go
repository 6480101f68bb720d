package state_test

import (
	. "github.com/janpfeifer/pntGo/internal/state"
	"github.com/janpfeifer/pntGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"slices"
	"testing"
)

func TestOpeningMoves(t *testing.T) {
	assert.Equal(t, statetest.Tokens(1, 3), statetest.New(10).LegalMoves())
	assert.Equal(t, statetest.Tokens(1), statetest.New(7).LegalMoves())
	assert.Empty(t, statetest.New(1).LegalMoves())
	assert.Empty(t, statetest.New(2).LegalMoves())

	for numTokens := 1; numTokens <= 50; numTokens++ {
		var want []Token
		for tok := 1; tok < numTokens/2; tok++ {
			if tok%2 == 1 {
				want = append(want, Token(tok))
			}
		}
		got := LegalMoves(numTokens, 0, NewTakenSet(numTokens), NoToken)
		if len(want) == 0 {
			assert.Emptyf(t, got, "numTokens=%d", numTokens)
			continue
		}
		assert.Equalf(t, want, got, "numTokens=%d", numTokens)
	}
}

func TestLegalMoves(t *testing.T) {
	// Divisors of 6, no multiples of 6 within 10.
	assert.Equal(t, statetest.Tokens(1, 2, 3), statetest.New(10, 6).LegalMoves())

	// Square: the pair (2, 2) is emitted once.
	assert.Equal(t, statetest.Tokens(1, 2, 8, 12, 16, 20), statetest.New(20, 4).LegalMoves())

	// Divisor pairs come smaller-then-larger, taken tokens are skipped, then multiples.
	assert.Equal(t, statetest.Tokens(1, 2, 6, 3, 24), statetest.New(30, 4, 12).LegalMoves())

	// Last move 1: every untaken token is a multiple.
	assert.Equal(t, statetest.Tokens(2, 4, 5), statetest.New(5, 3, 1).LegalMoves())

	// No moves left.
	s := statetest.New(6, 1, 5)
	assert.Empty(t, s.LegalMoves())
	assert.True(t, s.IsFinished())
	assert.False(t, statetest.New(10, 6).IsFinished())
}

// TestLegalMovesDivisorsAndMultiples checks against a brute-force enumeration that every divisor or multiple
// of the last move shows up exactly once, and nothing else does.
func TestLegalMovesDivisorsAndMultiples(t *testing.T) {
	const numTokens = 40
	for lastMove := 1; lastMove <= numTokens; lastMove++ {
		for _, extra := range [][]int{nil, {1}, {2, 3}, {1, 5, 7, 11}} {
			var taken []int
			for _, e := range extra {
				if e != lastMove {
					taken = append(taken, e)
				}
			}
			taken = append(taken, lastMove)
			s := statetest.New(numTokens, taken...)

			var want []Token
			for tok := 1; tok <= numTokens; tok++ {
				if tok == lastMove || s.Taken.Has(Token(tok)) {
					continue
				}
				if tok%lastMove == 0 || lastMove%tok == 0 {
					want = append(want, Token(tok))
				}
			}

			got := s.LegalMoves()
			sorted := slices.Clone(got)
			slices.Sort(sorted)
			assert.Equalf(t, len(slices.Compact(slices.Clone(sorted))), len(got), "duplicates in moves for %s: %v", s, got)
			if len(want) == 0 {
				assert.Emptyf(t, got, "state %s", s)
			} else {
				assert.Equalf(t, want, sorted, "state %s", s)
			}
		}
	}
}
