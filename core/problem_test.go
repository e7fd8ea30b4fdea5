package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/internal/testproblem"
)

func TestNewHeuristicProblem(t *testing.T) {
	g := testproblem.Chain(4)
	h := core.HeuristicFunc[string](func(s string) float64 { return float64(len(s)) })
	hp := core.NewHeuristicProblem[string](g, h)

	assert.Equal(t, "n0", hp.StartState())
	assert.True(t, hp.IsGoal("n3"))
	assert.Equal(t, []string{"n0", "n2"}, hp.Successors("n1"))
	assert.Equal(t, 2.0, hp.Heuristic("n1"))
}

func TestNewHeuristicProblem_NilHeuristic(t *testing.T) {
	hp := core.NewHeuristicProblem[string](testproblem.Chain(2), nil)
	assert.Zero(t, hp.Heuristic("n0"))
	assert.Zero(t, hp.Heuristic("anything"))
}
