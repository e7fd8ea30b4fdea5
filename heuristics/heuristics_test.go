package heuristics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statesearch/heuristics"
	"github.com/katalvlaran/statesearch/tilegame"
)

func state(t *testing.T, text string) tilegame.State {
	t.Helper()
	s, err := tilegame.ParseState(text)
	require.NoError(t, err)

	return s
}

func TestEstimates(t *testing.T) {
	cases := []struct {
		board                 string
		manhattan, euclidean float64
	}{
		{"1,2;3,4", 0, 0},
		{"3,2;1,4", 2, 2},
		{"4,2;3,1", 4, 2 * math.Sqrt2},
		{"4,3;2,1", 8, 4 * math.Sqrt2},
		{"4,1,3;7,2,6;9,5,8", 8, 8},
	}
	for _, tc := range cases {
		s := state(t, tc.board)
		assert.Equal(t, tc.manhattan, heuristics.Manhattan(s), tc.board)
		assert.Equal(t, tc.manhattan/2, heuristics.Admissible(s), tc.board)
		assert.InDelta(t, tc.euclidean, heuristics.Euclidean(s), 1e-9, tc.board)
		assert.Zero(t, heuristics.Zero(s))
	}
}

// Every estimate is zero on the goal.
func TestEstimates_ZeroAtGoal(t *testing.T) {
	for dim := 1; dim <= 5; dim++ {
		goal, err := tilegame.GoalState(dim)
		require.NoError(t, err)
		for _, name := range heuristics.Names() {
			h, err := heuristics.ByName(name)
			require.NoError(t, err)
			assert.Zero(t, h.Estimate(goal), "%s on %d×%d", name, dim, dim)
		}
	}
}

// Admissible never exceeds the true distance: one swap moves two tiles by
// one cell each, so it lowers the Manhattan sum by at most 2.
func TestAdmissible_OneSwapBound(t *testing.T) {
	g, err := tilegame.NewGame(3)
	require.NoError(t, err)
	goal := g.Goal()
	for _, s := range g.Successors(goal) {
		assert.Equal(t, 1.0, heuristics.Admissible(s), s.String())
		assert.Equal(t, 2.0, heuristics.Manhattan(s), s.String())
	}
}

func TestScaled(t *testing.T) {
	s := state(t, "4,2;3,1") // Admissible = 2
	for lambda, want := range map[float64]float64{1: 2, 1.5: 3, 2.5: 5, 3.7: 7} {
		assert.Equal(t, want, heuristics.Scaled(heuristics.Admissible, lambda)(s), "lambda %v", lambda)
	}
	// truncation toward zero, not rounding
	assert.Equal(t, 1.0, heuristics.Scaled(heuristics.Admissible, 0.99)(s))
}

func TestByName(t *testing.T) {
	h, err := heuristics.ByName("manhattan")
	require.NoError(t, err)
	s := state(t, "4,3;2,1")
	assert.Equal(t, 8.0, h(s))

	inad, err := heuristics.ByName("inadmissible")
	require.NoError(t, err)
	assert.Equal(t, 8.0, inad(s))

	_, err = heuristics.ByName("nope")
	assert.ErrorIs(t, err, heuristics.ErrUnknownHeuristic)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"admissible", "euclidean", "inadmissible", "manhattan", "zero"}, heuristics.Names())
}

func TestGeomspace(t *testing.T) {
	got := heuristics.Geomspace(1, 5, 8)
	require.Len(t, got, 8)
	assert.Equal(t, 1.0, got[0])
	assert.Equal(t, 5.0, got[7])
	assert.InDelta(t, 1.2585, got[1], 1e-4)
	assert.InDelta(t, 2.5085, got[4], 1e-4)
	for i := 1; i < len(got); i++ {
		assert.InDelta(t, got[1]/got[0], got[i]/got[i-1], 1e-9, "constant ratio")
	}

	assert.Equal(t, []float64{3}, heuristics.Geomspace(3, 9, 1))
}
