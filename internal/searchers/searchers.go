package searchers

import (
	"fmt"
	"github.com/chewxy/math32"
	"github.com/janpfeifer/pntGo/internal/generics"
	"github.com/janpfeifer/pntGo/internal/state"
	"math"
)

// Searcher is the interface that any of the search algorithms
// must adhere to be valid.
type Searcher interface {
	// Search returns the best move for the player to move in the given state, its value and
	// the statistics of the search.
	//
	// The state may be used during the search, but it is restored to its original value on return.
	// It returns an error if the state is not valid.
	Search(s *state.State) (Result, error)
}

// Result of a search.
type Result struct {
	// Move is the best move found, or state.NoToken if there are no legal moves.
	Move state.Token

	// Value of the position for the player to move, in [-1, 1].
	Value float32

	// Stats collected during the search.
	Stats Stats
}

// HasMove returns whether a best move was found.
func (r Result) HasMove() bool {
	return r.Move != state.NoToken
}

// RoundedValue returns the Value rounded to one decimal place, as displayed.
func (r Result) RoundedValue() float32 {
	return RoundToDecimal(r.Value)
}

// String implements fmt.Stringer.
func (r Result) String() string {
	return fmt.Sprintf("move=%s, value=%.1f, %s", r.Move, r.RoundedValue(), r.Stats)
}

// RoundToDecimal rounds v to one decimal place.
func RoundToDecimal(v float32) float32 {
	rounded := math32.Round(v*10) / 10
	if rounded == 0 {
		// Avoid displaying "-0.0".
		return 0
	}
	return rounded
}

// Stats accumulates statistics during one search. It's owned by the search call and passed by reference
// along the recursion.
type Stats struct {
	// NodesVisited counts every node entered, including internal ones.
	NodesVisited int

	// NodesEvaluated counts the nodes where the search stopped and the heuristic was used: end-game nodes
	// and nodes at the maximum depth.
	NodesEvaluated int

	// MaxDepthReached is the deepest ply visited, where the root is 0.
	MaxDepthReached int

	// BranchingFactors holds, for each internal node, the number of children explored before
	// pruning or exhaustion.
	BranchingFactors []int
}

// Visit records that a node at depth was entered.
func (st *Stats) Visit(depth int) {
	st.NodesVisited++
	st.MaxDepthReached = max(st.MaxDepthReached, depth)
}

// Evaluate records that a node was scored with the heuristic.
func (st *Stats) Evaluate() {
	st.NodesEvaluated++
}

// RecordBranching records the number of children explored by an internal node.
func (st *Stats) RecordBranching(numExplored int) {
	st.BranchingFactors = append(st.BranchingFactors, numExplored)
}

// AverageBranchingFactor returns the mean of the effective branching factors recorded, or 0 if no internal
// node was searched.
func (st *Stats) AverageBranchingFactor() float64 {
	return generics.Mean(st.BranchingFactors)
}

// RoundedAverageBranchingFactor returns AverageBranchingFactor rounded to one decimal place, as displayed.
func (st *Stats) RoundedAverageBranchingFactor() float64 {
	return math.Round(st.AverageBranchingFactor()*10) / 10
}

// String implements fmt.Stringer.
func (st Stats) String() string {
	return fmt.Sprintf("visited=%d, evaluated=%d, maxDepth=%d, avgBranching=%.1f",
		st.NodesVisited, st.NodesEvaluated, st.MaxDepthReached, st.RoundedAverageBranchingFactor())
}
