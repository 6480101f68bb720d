// Package players provides a factory of AI players from configuration strings.
// It also allows searcher providers to register themselves.
package players

import (
	"github.com/janpfeifer/pntGo/internal/parameters"
	"github.com/janpfeifer/pntGo/internal/searchers"
	"github.com/janpfeifer/pntGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"strings"
	"sync"
)

// SearcherBuilder creates a searcher from the parameters, removing from params the ones it used.
// It returns nil (and no error) if the parameters don't select this searcher.
type SearcherBuilder func(params parameters.Params) (searchers.Searcher, error)

var (
	muRegistry sync.Mutex

	// RegisteredSearchers are tried in order of registration.
	RegisteredSearchers []SearcherBuilder

	// DefaultPlayerConfig is used if no configuration was given to the AI. The value may be changed by the
	// program.
	DefaultPlayerConfig = "ab"
)

// RegisterSearcher so it can be selected by configuration.
func RegisterSearcher(builder SearcherBuilder) {
	muRegistry.Lock()
	defer muRegistry.Unlock()
	RegisteredSearchers = append(RegisteredSearchers, builder)
}

// Player is an AI player: it chooses moves for PNT positions using a Searcher.
type Player struct {
	Searcher searchers.Searcher
	Config   string
}

// New creates a new AI player given the configuration string.
//
// Args:
//
//   - config: a comma-separated list of parameters with optional values associated. Exactly one searcher
//     (e.g. "ab" or "minimax") must be selected. If empty, the default is given by DefaultPlayerConfig.
//     E.g.: "ab,max_depth=4"
//
// Typical parameters:
//
//   - ab (bool): alpha-beta pruning search.
//   - minimax (bool): minimax search, without pruning.
//   - max_depth (int): max depth of search, 0 (the default) means search until the end of the game.
//   - prune (bool): enable or disable pruning of the alpha-beta search.
//
// More details on the config are dependent on the searcher used.
func New(config string) (*Player, error) {
	if strings.TrimSpace(config) == "" {
		config = DefaultPlayerConfig
	}
	params := parameters.NewFromConfigString(config)

	muRegistry.Lock()
	builders := RegisteredSearchers
	muRegistry.Unlock()
	if len(builders) == 0 {
		return nil, errors.New("no registered searchers. Perhaps you need to import _ \"github.com/janpfeifer/pntGo/internal/players/default\" to your binary ?")
	}

	player := &Player{Config: config}
	for _, builder := range builders {
		s, err := builder(params)
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to create searcher from %q", config)
		}
		if s == nil {
			// Not this type of searcher.
			continue
		}
		if player.Searcher != nil {
			return nil, errors.Errorf("multiple searchers defined in parameters %q", config)
		}
		player.Searcher = s
	}
	if player.Searcher == nil {
		return nil, errors.Errorf("no searchers defined in parameters %q", config)
	}

	// Check that all parameters were processed.
	if len(params) > 0 {
		return nil, errors.Errorf("unknown AI parameters \"%s\" passed", strings.Join(params.Keys(), "\", \""))
	}
	return player, nil
}

// Play returns the best move for the given state, with its value and search statistics.
func (p *Player) Play(s *state.State) (searchers.Result, error) {
	result, err := p.Searcher.Search(s)
	if err != nil {
		return result, err
	}
	if klog.V(2).Enabled() {
		klog.Infof("AI (%s) playing %s on %s, value=%.1f", p.Searcher, result.Move, s, result.RoundedValue())
	}
	return result, nil
}

// String implements fmt.Stringer.
func (p *Player) String() string {
	return p.Config
}
