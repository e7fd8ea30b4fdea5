package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statesearch/astar"
	"github.com/katalvlaran/statesearch/bfs"
	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/heuristics"
	"github.com/katalvlaran/statesearch/internal/testproblem"
	"github.com/katalvlaran/statesearch/tilegame"
)

func game(t *testing.T, board string) *tilegame.Game {
	t.Helper()
	s, err := tilegame.ParseState(board)
	require.NoError(t, err)
	g, err := tilegame.NewGame(s.Dim(), tilegame.WithStart(s))
	require.NoError(t, err)

	return g
}

func TestSearch_Errors(t *testing.T) {
	_, err := astar.Search[string](nil)
	assert.ErrorIs(t, err, core.ErrProblemNil)

	_, err = astar.Search[string](testproblem.Chain(2), core.WithProgressInterval(-3))
	assert.ErrorIs(t, err, core.ErrOptionViolation)
}

func TestSearch_StartIsGoal(t *testing.T) {
	g := testproblem.NewGraph("A", "A").Edge("A", "B")
	res, err := astar.Search[string](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Equal(t, core.Stats{PathLength: 1, MaxFrontierSize: 1}, res.Stats)
	assert.Zero(t, g.Calls)
}

func TestSearch_Unreachable(t *testing.T) {
	g := testproblem.Diamond()
	g.Goals = map[string]bool{"Z": true}
	res, err := astar.Search[string](g)
	require.NoError(t, err)
	assert.Nil(t, res.Path)
	assert.Equal(t, 11, res.Stats.StatesExpanded)
	assert.Equal(t, 3, res.Stats.MaxFrontierSize)
}

// TestSearch_GuidedByHeuristic: a heuristic that points along the long
// route makes A* expand fewer states than it would with zero.
func TestSearch_GuidedByHeuristic(t *testing.T) {
	g := testproblem.Diamond()
	for s, h := range map[string]float64{"A": 3, "B": 4, "C": 4, "D": 4, "E": 2, "F": 1, "G": 9, "H": 9, "I": 9, "J": 9} {
		g.H[s] = h
	}
	res, err := astar.Search[string](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "E", "F", "K"}, res.Path)
	assert.Equal(t, 3, res.Stats.StatesExpanded)
	testproblem.RequireValidPath[string](t, g, res.Path)
}

// TestSearch_ZeroHeuristicIsBFS: with h ≡ 0 and FIFO tie-breaking, A*
// expands in breadth-first order and reports the same statistics.
func TestSearch_ZeroHeuristicIsBFS(t *testing.T) {
	graphs := map[string]*testproblem.Graph{
		"diamond": testproblem.Diamond(),
		"grid":    testproblem.Grid(4),
		"chain":   testproblem.Chain(6),
	}
	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			want, err := bfs.Search[string](g)
			require.NoError(t, err)
			got, err := astar.Search(core.NewHeuristicProblem[string](g, nil))
			require.NoError(t, err)
			assert.Equal(t, want.Path, got.Path)
			assert.Equal(t, want.Stats, got.Stats)
		})
	}

	for _, board := range []string{"3,2;1,4", "4,2;3,1", "4,3;2,1", "5,1,3;4,2,6;7,8,9"} {
		t.Run(board, func(t *testing.T) {
			g := game(t, board)
			want, err := bfs.Search[tilegame.State](g)
			require.NoError(t, err)
			got, err := astar.Search[tilegame.State](g.WithHeuristic(heuristics.Zero))
			require.NoError(t, err)
			assert.Equal(t, want.Stats, got.Stats)
		})
	}
}

// TestSearch_SingleInsertKeepsFirstRoute: X is added through L1–L2 before M
// is popped. The shorter route through M is ignored, so the returned path
// has five states although four would do.
func TestSearch_SingleInsertKeepsFirstRoute(t *testing.T) {
	g := testproblem.NewGraph("S", "G")
	g.Arc("S", "L1").Arc("S", "M").Arc("L1", "L2").Arc("L2", "X").Arc("M", "X").Arc("X", "G")
	g.H["M"] = 1.5

	res, err := astar.Search[string](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "L1", "L2", "X", "G"}, res.Path)
	assert.Equal(t, core.Stats{PathLength: 5, StatesExpanded: 5, TotalCost: 4, MaxFrontierSize: 2}, res.Stats)
	testproblem.RequireValidPath[string](t, g, res.Path)
}

func TestSearch_TileGame(t *testing.T) {
	cases := []struct {
		board string
		h     string
		want  core.Stats
	}{
		{"1", "admissible", core.Stats{PathLength: 1, MaxFrontierSize: 1}},
		{"1,2;3,4", "manhattan", core.Stats{PathLength: 1, MaxFrontierSize: 1}},
		{"3,2;1,4", "admissible", core.Stats{PathLength: 2, StatesExpanded: 1, TotalCost: 1, MaxFrontierSize: 4}},
		{"3,2;1,4", "euclidean", core.Stats{PathLength: 2, StatesExpanded: 1, TotalCost: 1, MaxFrontierSize: 4}},
		{"4,2;3,1", "admissible", core.Stats{PathLength: 4, StatesExpanded: 9, TotalCost: 3, MaxFrontierSize: 13}},
		{"4,2;3,1", "manhattan", core.Stats{PathLength: 4, StatesExpanded: 3, TotalCost: 3, MaxFrontierSize: 8}},
		{"4,2;3,1", "euclidean", core.Stats{PathLength: 4, StatesExpanded: 3, TotalCost: 3, MaxFrontierSize: 8}},
		{"4,3;2,1", "admissible", core.Stats{PathLength: 5, StatesExpanded: 19, TotalCost: 4, MaxFrontierSize: 14}},
		{"4,3;2,1", "manhattan", core.Stats{PathLength: 5, StatesExpanded: 4, TotalCost: 4, MaxFrontierSize: 9}},
		{"5,1,3;4,2,6;7,8,9", "admissible", core.Stats{PathLength: 3, StatesExpanded: 2, TotalCost: 2, MaxFrontierSize: 22}},
		{"4,1,3;7,2,6;9,5,8", "admissible", core.Stats{PathLength: 7, StatesExpanded: 80, TotalCost: 6, MaxFrontierSize: 572}},
		{"4,1,3;7,2,6;9,5,8", "manhattan", core.Stats{PathLength: 7, StatesExpanded: 9, TotalCost: 6, MaxFrontierSize: 87}},
		{"4,1,3;7,2,6;9,5,8", "euclidean", core.Stats{PathLength: 7, StatesExpanded: 7, TotalCost: 6, MaxFrontierSize: 70}},
	}
	for _, tc := range cases {
		t.Run(tc.board+"/"+tc.h, func(t *testing.T) {
			h, err := heuristics.ByName(tc.h)
			require.NoError(t, err)
			g := game(t, tc.board).WithHeuristic(h)

			res, err := astar.Search[tilegame.State](g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Stats)
			testproblem.RequireValidPath[tilegame.State](t, g, res.Path)
		})
	}
}

// TestSearch_AdmissibleIsOptimal compares path lengths with BFS.
func TestSearch_AdmissibleIsOptimal(t *testing.T) {
	for _, board := range []string{"4,2;3,1", "4,3;2,1", "2,4;1,3", "4,1,3;7,2,6;9,5,8"} {
		g := game(t, board)
		want, err := bfs.Search[tilegame.State](g)
		require.NoError(t, err)
		got, err := astar.Search[tilegame.State](g.WithHeuristic(heuristics.Admissible))
		require.NoError(t, err)
		assert.Equal(t, want.Stats.PathLength, got.Stats.PathLength, board)
		assert.LessOrEqual(t, got.Stats.StatesExpanded, want.Stats.StatesExpanded, board)
	}
}

func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := core.NewHeuristicProblem[int](testproblem.Line{}, nil)
	res, err := astar.Search(p,
		core.WithContext(ctx),
		core.WithOnExpand(func(expanded, _ int) {
			if expanded == 250 {
				cancel()
			}
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res.Path)
	assert.Equal(t, 250, res.Stats.StatesExpanded)
	assert.Equal(t, 1, res.Stats.MaxFrontierSize)
}

// TestSearch_Concurrent runs independent searches on one shared game.
func TestSearch_Concurrent(t *testing.T) {
	g := game(t, "4,1,3;7,2,6;9,5,8").WithHeuristic(heuristics.Manhattan)
	done := make(chan core.Stats, 8)
	for i := 0; i < cap(done); i++ {
		go func() {
			res, err := astar.Search[tilegame.State](g)
			if err != nil {
				done <- core.Stats{}
				return
			}
			done <- res.Stats
		}()
	}
	for i := 0; i < cap(done); i++ {
		assert.Equal(t, 9, (<-done).StatesExpanded)
	}
}
