package state

// LegalMoves returns the tokens the player to move can take.
//
// At the opening (numTaken == 0) these are the odd tokens smaller than numTokens/2 (integer division), in
// ascending order, regardless of lastMove.
//
// Otherwise these are the tokens not yet taken that divide lastMove or are multiples of it. Divisors come
// first, in pairs (d, lastMove/d) for d from 1 to floor(sqrt(lastMove)), and then the multiples in ascending
// order. lastMove itself is never returned.
func LegalMoves(numTokens, numTaken int, taken TakenSet, lastMove Token) []Token {
	if numTaken == 0 {
		moves := make([]Token, 0, numTokens/4+1)
		for t := Token(1); int(t) < numTokens/2; t += 2 {
			moves = append(moves, t)
		}
		return moves
	}

	var moves []Token
	isCandidate := func(t Token) bool {
		return t != lastMove && !taken.Has(t)
	}

	// Divisors: for each d <= sqrt(lastMove) that divides it, both d and lastMove/d.
	for d := Token(1); d*d <= lastMove; d++ {
		if lastMove%d != 0 {
			continue
		}
		pair := lastMove / d
		if isCandidate(d) {
			moves = append(moves, d)
		}
		if pair != d && isCandidate(pair) {
			moves = append(moves, pair)
		}
	}

	// Multiples.
	for m := 2 * lastMove; int(m) <= numTokens; m += lastMove {
		if !taken.Has(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// LegalMoves returns the moves available to the player to move. See LegalMoves.
func (s *State) LegalMoves() []Token {
	return LegalMoves(s.NumTokens, s.NumTaken, s.Taken, s.LastMove)
}

// IsFinished returns whether the player to move has no legal moves, and so lost the game.
func (s *State) IsFinished() bool {
	return len(s.LegalMoves()) == 0
}
