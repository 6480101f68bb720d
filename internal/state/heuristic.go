package state

import (
	"github.com/gomlx/exceptions"
)

// Scores returned by Heuristic, from the point of view of the maximizing player.
const (
	// LossScore for the player to move when it has no legal moves.
	LossScore float32 = -1

	// UndeterminedScore while token 1 is still available.
	UndeterminedScore float32 = 0

	// OneScore when the last move was token 1.
	OneScore float32 = 0.5

	// PrimeScore when the last move was a prime token.
	PrimeScore float32 = 0.7

	// CompositeScore when the last move was a composite token.
	CompositeScore float32 = 0.6
)

// IsPrime returns whether n is a prime number.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// LargestPrimeFactor returns the largest prime i <= n/2 that divides n.
//
// It is only defined for composite numbers, and it panics (with an exceptions.Panicf) otherwise.
func LargestPrimeFactor(n Token) Token {
	for i := n / 2; i >= 2; i-- {
		if n%i == 0 && IsPrime(int(i)) {
			return i
		}
	}
	exceptions.Panicf("LargestPrimeFactor(%d): no prime factor found, %d is not a composite number", n, n)
	return NoToken
}

// Heuristic scores a position where the search stops: either because there are no next moves, or
// because the search reached its maximum depth.
//
// Args:
//
//   - lastMove: last token taken, that led to the position.
//   - taken: tokens taken so far, including lastMove.
//   - nextMoves: legal moves for the player to move, as returned by LegalMoves.
//   - maximizing: whether the player to move is the maximizing player.
//
// The score is calculated for the maximizing player, and negated if maximizing is false.
func Heuristic(lastMove Token, taken TakenSet, nextMoves []Token, maximizing bool) float32 {
	score := maximizingHeuristic(lastMove, taken, nextMoves)
	if !maximizing && score != 0 {
		score = -score
	}
	return score
}

func maximizingHeuristic(lastMove Token, taken TakenSet, nextMoves []Token) float32 {
	if len(nextMoves) == 0 {
		return LossScore
	}
	if !taken.Has(1) {
		return UndeterminedScore
	}
	if lastMove == 1 {
		return byParity(len(nextMoves), OneScore)
	}
	if IsPrime(int(lastMove)) {
		return byParity(len(nextMoves), PrimeScore)
	}
	factor := LargestPrimeFactor(lastMove)
	var count int
	for _, move := range nextMoves {
		if move%factor == 0 {
			count++
		}
	}
	return byParity(count, CompositeScore)
}

// byParity returns score if count is odd, -score otherwise.
func byParity(count int, score float32) float32 {
	if count%2 == 1 {
		return score
	}
	return -score
}
