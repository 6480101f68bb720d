// Package _default registers the default searchers that can be included in any
// front-end for pntGo.
//
// Currently, it includes alpha-beta pruning (and its minimax variation).
package _default

import (
	"github.com/janpfeifer/pntGo/internal/players"
	"github.com/janpfeifer/pntGo/internal/searchers/alphabeta"
)

func init() {
	players.RegisterSearcher(alphabeta.NewFromParams)
}
