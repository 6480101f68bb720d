package state_test

import (
	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/pntGo/internal/state"
	"github.com/janpfeifer/pntGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestIsPrime(t *testing.T) {
	primes := map[int]bool{2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true,
		23: true, 29: true, 31: true, 37: true, 41: true, 43: true, 47: true}
	for n := -3; n < 50; n++ {
		assert.Equalf(t, primes[n], IsPrime(n), "IsPrime(%d)", n)
	}
	assert.True(t, IsPrime(7919))
	assert.False(t, IsPrime(7917))
}

func TestLargestPrimeFactor(t *testing.T) {
	for n, want := range map[Token]Token{4: 2, 6: 3, 8: 2, 9: 3, 10: 5, 12: 3, 30: 5, 49: 7, 98: 7, 100: 5} {
		assert.Equalf(t, want, LargestPrimeFactor(n), "LargestPrimeFactor(%d)", n)
	}

	for _, n := range []Token{1, 2, 7, 13} {
		err := exceptions.TryCatch[error](func() { LargestPrimeFactor(n) })
		assert.Errorf(t, err, "LargestPrimeFactor(%d) should have panicked", n)
	}
}

func TestHeuristic(t *testing.T) {
	// No moves: the player to move lost.
	s := statetest.New(6, 1, 5)
	assert.Equal(t, float32(-1), Heuristic(s.LastMove, s.Taken, s.LegalMoves(), true))
	assert.Equal(t, float32(1), Heuristic(s.LastMove, s.Taken, s.LegalMoves(), false))

	// Token 1 still available: undetermined, even with an odd number of moves.
	s = statetest.New(10, 6)
	moves := s.LegalMoves()
	require.Equal(t, statetest.Tokens(1, 2, 3), moves)
	assert.Equal(t, float32(0), Heuristic(s.LastMove, s.Taken, moves, true))
	assert.Equal(t, float32(0), Heuristic(s.LastMove, s.Taken, moves, false))

	// Last move is 1: parity of the number of moves (8 moves: 2, 4, 5, 6, 7, 8, 9, 10).
	s = statetest.New(10, 3, 1)
	require.Len(t, s.LegalMoves(), 8)
	assert.Equal(t, float32(-0.5), Heuristic(s.LastMove, s.Taken, s.LegalMoves(), true))
	assert.Equal(t, float32(0.5), Heuristic(s.LastMove, s.Taken, s.LegalMoves(), false))
	s = statetest.New(9, 3, 1)
	require.Len(t, s.LegalMoves(), 7)
	assert.Equal(t, float32(0.5), Heuristic(s.LastMove, s.Taken, s.LegalMoves(), true))

	// Last move prime: parity of the number of moves (only 10).
	s = statetest.New(10, 3, 1, 5)
	require.Equal(t, statetest.Tokens(10), s.LegalMoves())
	assert.Equal(t, float32(0.7), Heuristic(s.LastMove, s.Taken, s.LegalMoves(), true))
	assert.Equal(t, float32(-0.7), Heuristic(s.LastMove, s.Taken, s.LegalMoves(), false))

	// Last move composite: parity of the moves that are multiples of its largest prime factor.
	// Moves from 6 are 2, 12 and 18; 3 is the largest prime factor, and 12 and 18 its multiples.
	s = statetest.New(20, 3, 1, 6)
	require.Equal(t, statetest.Tokens(2, 12, 18), s.LegalMoves())
	assert.Equal(t, float32(-0.6), Heuristic(s.LastMove, s.Taken, s.LegalMoves(), true))
	assert.Equal(t, float32(0.6), Heuristic(s.LastMove, s.Taken, s.LegalMoves(), false))
	s = statetest.New(20, 3, 1, 12, 6)
	require.Equal(t, statetest.Tokens(2, 18), s.LegalMoves())
	assert.Equal(t, float32(0.6), Heuristic(s.LastMove, s.Taken, s.LegalMoves(), true))
}

// TestHeuristicBounded walks every position reachable in small games and checks the heuristic only takes
// one of the enumerated values.
func TestHeuristicBounded(t *testing.T) {
	allowed := map[float32]bool{}
	for _, score := range []float32{LossScore, UndeterminedScore, OneScore, PrimeScore, CompositeScore} {
		allowed[score] = true
		allowed[-score] = true
	}
	var walk func(s *State, depth int) int
	walk = func(s *State, depth int) (count int) {
		moves := s.LegalMoves()
		for _, maximizing := range []bool{true, false} {
			score := Heuristic(s.LastMove, s.Taken, moves, maximizing)
			assert.Truef(t, allowed[score], "Heuristic(%s)=%g is not one of the allowed values", s, score)
		}
		count++
		if depth == 0 {
			return
		}
		for _, move := range moves {
			undo := s.Play(move)
			count += walk(s, depth-1)
			undo()
		}
		return
	}
	for _, numTokens := range []int{7, 10, 14} {
		s := statetest.New(numTokens)
		count := walk(s, 5)
		assert.Greater(t, count, 1)
		assert.Equal(t, statetest.New(numTokens), s)
	}
}
