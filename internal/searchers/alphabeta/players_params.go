package alphabeta

import (
	"github.com/janpfeifer/pntGo/internal/parameters"
	"github.com/janpfeifer/pntGo/internal/searchers"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// NewFromParams creates an alpha-beta searcher if "ab" or "minimax" is set in params, otherwise it returns nil.
// Used parameters are removed from params.
//
// Parameters:
//
//   - ab (bool): selects alpha-beta pruning search.
//   - minimax (bool): selects plain minimax search, same as "ab,prune=false".
//   - max_depth (int): max depth of search in plies, 0 for unbounded. Default is DefaultMaxDepth.
//   - prune (bool): whether to use alpha-beta pruning. Default is true, except for "minimax".
func NewFromParams(params parameters.Params) (searchers.Searcher, error) {
	isAB, err := parameters.PopParamOr(params, "ab", false)
	if err != nil {
		return nil, err
	}
	isMinimax, err := parameters.PopParamOr(params, "minimax", false)
	if err != nil {
		return nil, err
	}
	if !isAB && !isMinimax {
		return nil, nil
	}
	if isAB && isMinimax {
		return nil, errors.New("only one of \"ab\" or \"minimax\" can be selected")
	}

	ab := New()
	maxDepth, err := parameters.PopParamOr(params, "max_depth", ab.maxDepth)
	if err != nil {
		return nil, err
	}
	if maxDepth < 0 {
		return nil, errors.Errorf("negative max_depth=%d not possible, use 0 for unbounded", maxDepth)
	}
	pruning, err := parameters.PopParamOr(params, "prune", !isMinimax)
	if err != nil {
		return nil, err
	}
	ab.WithMaxDepth(maxDepth).WithPruning(pruning)
	klog.V(1).Infof("Created searcher %s", ab)
	return ab, nil
}
