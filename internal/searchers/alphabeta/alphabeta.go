// Package alphabeta implements a depth-bounded minimax search with alpha-beta pruning for PNT.
//
// See: wikipedia.org/wiki/Alpha-beta_pruning
package alphabeta

import (
	"fmt"
	"github.com/chewxy/math32"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/pntGo/internal/searchers"
	"github.com/janpfeifer/pntGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"time"
)

// Searcher implements the searchers.Searcher interface.
type Searcher struct {
	maxDepth int
	pruning  bool
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// DefaultMaxDepth for search: 0 means unbounded, the search only stops at the end of the game.
const DefaultMaxDepth = 0

// New returns an Alpha-Beta Pruning based searchers.Searcher implementation.
// See methods Searcher.With... for optional configurations.
func New() *Searcher {
	return &Searcher{
		maxDepth: DefaultMaxDepth,
		pruning:  true,
	}
}

// WithMaxDepth sets the max depth of search: the unit here are plies (ply singular). Each player
// playing counts as one ply. See https://en.wikipedia.org/wiki/Ply_(game_theory).
//
// A maxDepth of 0 means unbounded: search until the end of the game. Negative values are rejected
// by Search.
func (ab *Searcher) WithMaxDepth(maxDepth int) *Searcher {
	ab.maxDepth = maxDepth
	return ab
}

// WithPruning enables or disables the alpha-beta pruning. Without it this is a plain minimax search,
// which returns the same move and value, but visits more nodes.
//
// The default is true.
func (ab *Searcher) WithPruning(pruning bool) *Searcher {
	ab.pruning = pruning
	return ab
}

// MaxDepth configured, 0 for unbounded.
func (ab *Searcher) MaxDepth() int { return ab.maxDepth }

// Pruning returns whether alpha-beta pruning is enabled.
func (ab *Searcher) Pruning() bool { return ab.pruning }

// String implements fmt.Stringer.
func (ab *Searcher) String() string {
	name := "AlphaBeta"
	if !ab.pruning {
		name = "Minimax"
	}
	if ab.maxDepth == 0 {
		return fmt.Sprintf("%s(max_depth=unbounded)", name)
	}
	return fmt.Sprintf("%s(max_depth=%d)", name, ab.maxDepth)
}

// Search implements the searchers.Searcher interface.
//
// The player to move is the maximizing one if an even number of tokens was taken, and the minimizing
// one otherwise. The returned value is always from the maximizing player's point of view.
func (ab *Searcher) Search(s *state.State) (result searchers.Result, err error) {
	if err = s.Validate(); err != nil {
		return result, errors.WithMessagef(err, "invalid state for %s", ab)
	}
	if ab.maxDepth < 0 {
		return result, errors.Errorf("invalid max depth %d for search, it must be >= 0 (0 for unbounded)", ab.maxDepth)
	}

	start := time.Now()
	stats := &searchers.Stats{}
	maximizing := s.IsMaximizing()
	err = exceptions.TryCatch[error](func() {
		result.Value, result.Move = ab.recursion(s, 0, math32.Inf(-1), math32.Inf(1), maximizing, stats)
	})
	if err != nil {
		return searchers.Result{}, errors.WithMessagef(err, "%s failed searching %s", ab, s)
	}
	result.Stats = *stats

	if klog.V(1).Enabled() {
		elapsed := time.Since(start)
		klog.Infof("%s: %s -> %s", ab, s, result)
		klog.Infof("  elapsed=%s, nodes/s=%.1f", elapsed, float64(stats.NodesVisited)/elapsed.Seconds())
	}
	return
}

// recursion of the alpha-beta pruning algorithm at the given depth (plies from the root).
//
// The maximizing and minimizing plies are the same procedure, with the comparisons mirrored by maximizing.
// It returns the value of s and the best move, or state.NoToken if the search stopped at s.
func (ab *Searcher) recursion(s *state.State, depth int, alpha, beta float32, maximizing bool,
	stats *searchers.Stats) (bestScore float32, bestMove state.Token) {
	stats.Visit(depth)
	moves := s.LegalMoves()

	// Leaf: end of game, or max depth reached.
	if len(moves) == 0 || (ab.maxDepth != 0 && depth == ab.maxDepth) {
		stats.Evaluate()
		return state.Heuristic(s.LastMove, s.Taken, moves, maximizing), state.NoToken
	}

	bestScore = math32.Inf(1)
	if maximizing {
		bestScore = math32.Inf(-1)
	}
	bestMove = state.NoToken
	var explored int
	for _, move := range moves {
		score := ab.explore(s, move, depth, alpha, beta, maximizing, stats)
		explored++
		if depth == 0 && klog.V(2).Enabled() {
			klog.Infof("  move %s: score=%.2f", move, score)
		}

		// Save bestScore for this state: ties go to the smaller token.
		if improves(score, bestScore, maximizing) || (score == bestScore && (bestMove == state.NoToken || move < bestMove)) {
			bestScore = score
			bestMove = move
		}

		if !ab.pruning {
			continue
		}
		if maximizing {
			alpha = max(alpha, bestScore)
			if bestScore > beta {
				// The minimizing player will never take this path, so we can prune the search and stop here.
				break
			}
		} else {
			beta = min(beta, bestScore)
			if bestScore < alpha {
				break
			}
		}
	}
	stats.RecordBranching(explored)
	return
}

// explore plays move on s, searches the resulting state for the opponent and undoes the move, also if the
// search panics.
func (ab *Searcher) explore(s *state.State, move state.Token, depth int, alpha, beta float32, maximizing bool,
	stats *searchers.Stats) float32 {
	undo := s.Play(move)
	defer undo()
	score, _ := ab.recursion(s, depth+1, alpha, beta, !maximizing, stats)
	return score
}

// improves returns whether score is strictly better than best for the player.
func improves(score, best float32, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}
