package searchers

import (
	"github.com/janpfeifer/pntGo/internal/state"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestStats(t *testing.T) {
	var st Stats
	assert.Equal(t, 0.0, st.AverageBranchingFactor())

	st.Visit(0)
	st.Visit(2)
	st.Visit(1)
	st.Evaluate()
	st.RecordBranching(2)
	st.RecordBranching(1)
	st.RecordBranching(1)
	assert.Equal(t, 3, st.NodesVisited)
	assert.Equal(t, 1, st.NodesEvaluated)
	assert.Equal(t, 2, st.MaxDepthReached)
	assert.InDelta(t, 4.0/3.0, st.AverageBranchingFactor(), 1e-9)
	assert.Equal(t, 1.3, st.RoundedAverageBranchingFactor())
	assert.Equal(t, "visited=3, evaluated=1, maxDepth=2, avgBranching=1.3", st.String())
}

func TestResult(t *testing.T) {
	r := Result{Move: 3, Value: 0.69999}
	assert.True(t, r.HasMove())
	assert.Equal(t, float32(0.7), r.RoundedValue())
	assert.Equal(t, "move=3, value=0.7, visited=0, evaluated=0, maxDepth=0, avgBranching=0.0", r.String())

	r = Result{Move: state.NoToken, Value: -0.01}
	assert.False(t, r.HasMove())
	assert.Equal(t, float32(0), r.RoundedValue())
	assert.Equal(t, float32(-0.6), RoundToDecimal(-0.6))
}
