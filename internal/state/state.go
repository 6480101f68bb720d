// Package state holds the rules of the "Pick Numbered Tokens" game (PNT): tokens, the set of taken tokens,
// the legal moves and the heuristic used to score positions where the search is cut off.
//
// Players alternately take a token from 1 to N. The first move must be an odd number smaller than N/2,
// and after that each move must be a divisor or a multiple of the last token taken. The player
// without a legal move loses.
package state

import (
	"fmt"
	"github.com/janpfeifer/pntGo/internal/generics"
	"github.com/pkg/errors"
	"strings"
)

// Token is one of the numbered tokens of the game, from 1 to NumTokens.
type Token int

// NoToken is used where a move is absent: the last move before the opening, or the best move when there
// is no legal move.
const NoToken Token = 0

// String returns the token number, or "NONE" for NoToken.
func (t Token) String() string {
	if t == NoToken {
		return "NONE"
	}
	return fmt.Sprintf("%d", int(t))
}

// TakenSet marks which tokens have been taken, indexed by the token value.
// It has NumTokens+1 entries, and entry 0 is never set.
type TakenSet []bool

// NewTakenSet returns an empty TakenSet for tokens 1 to numTokens.
func NewTakenSet(numTokens int) TakenSet {
	return make(TakenSet, numTokens+1)
}

// Has returns whether token t was taken. Tokens out of range are never taken.
func (ts TakenSet) Has(t Token) bool {
	if t <= NoToken || int(t) >= len(ts) {
		return false
	}
	return ts[t]
}

// Count returns the number of taken tokens.
func (ts TakenSet) Count() (count int) {
	for _, taken := range ts {
		if taken {
			count++
		}
	}
	return
}

// Clone returns a copy of the TakenSet.
func (ts TakenSet) Clone() TakenSet {
	ts2 := make(TakenSet, len(ts))
	copy(ts2, ts)
	return ts2
}

// Equal returns whether both sets have the same size and the same tokens taken.
func (ts TakenSet) Equal(ts2 TakenSet) bool {
	if len(ts) != len(ts2) {
		return false
	}
	for ii := range ts {
		if ts[ii] != ts2[ii] {
			return false
		}
	}
	return true
}

// Tokens returns the taken tokens in ascending order.
func (ts TakenSet) Tokens() (tokens []Token) {
	for ii, taken := range ts {
		if taken {
			tokens = append(tokens, Token(ii))
		}
	}
	return
}

// State of a game: it is mutated during search by State.Play, and restored by the returned undo function.
type State struct {
	// NumTokens is the total number of tokens, numbered from 1 to NumTokens.
	NumTokens int

	// NumTaken is the number of tokens already taken. Player to move is the maximizing one if NumTaken is even.
	NumTaken int

	// Taken tokens.
	Taken TakenSet

	// LastMove is the last token taken, or NoToken at the opening.
	LastMove Token
}

// New creates a State with numTokens tokens, where the given tokens were taken in the given order.
// The last token in taken is the last move.
func New(numTokens int, taken []Token) (*State, error) {
	if numTokens < 1 {
		return nil, errors.Errorf("number of tokens must be positive, got %d", numTokens)
	}
	s := &State{
		NumTokens: numTokens,
		Taken:     NewTakenSet(numTokens),
		LastMove:  NoToken,
	}
	seen := generics.MakeSet[Token](len(taken))
	for _, t := range taken {
		if t < 1 || int(t) > numTokens {
			return nil, errors.Errorf("taken token %d out of range [1, %d]", t, numTokens)
		}
		if seen.Has(t) {
			return nil, errors.Errorf("token %d taken more than once", t)
		}
		seen.Insert(t)
		s.Taken[t] = true
		s.LastMove = t
	}
	s.NumTaken = len(taken)
	return s, nil
}

// Validate checks that the State is consistent. It returns a descriptive error otherwise.
func (s *State) Validate() error {
	if s == nil {
		return errors.New("nil state")
	}
	if s.NumTokens < 1 {
		return errors.Errorf("number of tokens must be positive, got %d", s.NumTokens)
	}
	if len(s.Taken) != s.NumTokens+1 {
		return errors.Errorf("taken set has %d entries, expected %d for %d tokens",
			len(s.Taken), s.NumTokens+1, s.NumTokens)
	}
	if s.Taken[0] {
		return errors.New("token 0 marked as taken")
	}
	if count := s.Taken.Count(); count != s.NumTaken {
		return errors.Errorf("taken set has %d tokens taken, but state says %d", count, s.NumTaken)
	}
	if s.NumTaken == 0 {
		if s.LastMove != NoToken {
			return errors.Errorf("last move %d set with no tokens taken", s.LastMove)
		}
		return nil
	}
	if s.LastMove < 1 || int(s.LastMove) > s.NumTokens {
		return errors.Errorf("last move %d out of range [1, %d]", s.LastMove, s.NumTokens)
	}
	if !s.Taken[s.LastMove] {
		return errors.Errorf("last move %d is not marked as taken", s.LastMove)
	}
	return nil
}

// IsMaximizing returns whether the player to move is the maximizing one: the one who made the opening
// move, which is the case when an even number of tokens was taken.
func (s *State) IsMaximizing() bool {
	return s.NumTaken%2 == 0
}

// Play takes move and returns the function that undoes it.
//
// The search calls undo on every path out of the subtree of move, including panics, so the State is
// restored for the siblings of move.
func (s *State) Play(move Token) (undo func()) {
	previousLastMove := s.LastMove
	s.Taken[move] = true
	s.NumTaken++
	s.LastMove = move
	return func() {
		s.Taken[move] = false
		s.NumTaken--
		s.LastMove = previousLastMove
	}
}

// Clone returns a deep copy of the State.
func (s *State) Clone() *State {
	s2 := *s
	s2.Taken = s.Taken.Clone()
	return &s2
}

// String implements fmt.Stringer.
func (s *State) String() string {
	parts := generics.SliceMap(s.Taken.Tokens(), func(t Token) string { return t.String() })
	return fmt.Sprintf("PNT(tokens=%d, taken=[%s], last=%s)", s.NumTokens, strings.Join(parts, " "), s.LastMove)
}
