package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statesearch/bfs"
	"github.com/katalvlaran/statesearch/core"
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

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	if _, err := bfs.Search[string](nil); !errors.Is(err, core.ErrProblemNil) {
		t.Errorf("nil problem: want ErrProblemNil, got %v", err)
	}
	_, err := bfs.Search[string](testproblem.Chain(2), core.WithProgressInterval(-1))
	if !errors.Is(err, core.ErrOptionViolation) {
		t.Errorf("negative interval: want ErrOptionViolation, got %v", err)
	}
}

// TestSearch_StartIsGoal covers the trivial problem: no expansion at all.
func TestSearch_StartIsGoal(t *testing.T) {
	g := testproblem.NewGraph("A", "A").Edge("A", "B")
	res, err := bfs.Search[string](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Equal(t, core.Stats{PathLength: 1, StatesExpanded: 0, TotalCost: 0, MaxFrontierSize: 1}, res.Stats)
	assert.Zero(t, g.Calls)
}

// TestSearch_ShortestRoute picks the 3-move route over the 4-move one.
func TestSearch_ShortestRoute(t *testing.T) {
	g := testproblem.Diamond()
	res, err := bfs.Search[string](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "E", "F", "K"}, res.Path)
	assert.Equal(t, core.Stats{PathLength: 4, StatesExpanded: 7, TotalCost: 3, MaxFrontierSize: 3}, res.Stats)
	assert.Equal(t, res.Stats.StatesExpanded, g.Calls)
	testproblem.RequireValidPath[string](t, g, res.Path)
}

// TestSearch_Unreachable exhausts the component without error.
func TestSearch_Unreachable(t *testing.T) {
	g := testproblem.Diamond()
	g.Goals = map[string]bool{"Z": true}
	res, err := bfs.Search[string](g)
	require.NoError(t, err)
	assert.Nil(t, res.Path)
	assert.False(t, res.Found())
	assert.Equal(t, 11, res.Stats.StatesExpanded)
	assert.Zero(t, res.Stats.PathLength)
	assert.Zero(t, res.Stats.TotalCost)
}

// TestSearch_Cycle prefers the direct arc on a 4-cycle.
func TestSearch_Cycle(t *testing.T) {
	g := testproblem.NewGraph("A", "D")
	g.Edge("A", "D").Edge("A", "B").Edge("B", "C").Edge("C", "D")
	res, err := bfs.Search[string](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D"}, res.Path)
	assert.Equal(t, 1, res.Stats.StatesExpanded)
	assert.Equal(t, 2, res.Stats.MaxFrontierSize)
}

func TestSearch_Grid(t *testing.T) {
	g := testproblem.Grid(3)
	res, err := bfs.Search[string](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"0_0", "0_1", "0_2", "1_2", "2_2"}, res.Path)
	assert.Equal(t, 8, res.Stats.StatesExpanded)
	assert.Equal(t, 3, res.Stats.MaxFrontierSize)
}

// TestSearch_TileGame checks shortest lengths and exact counters on small boards.
func TestSearch_TileGame(t *testing.T) {
	cases := []struct {
		board string
		want  core.Stats
	}{
		{"1", core.Stats{PathLength: 1, MaxFrontierSize: 1}},
		{"1,2;3,4", core.Stats{PathLength: 1, MaxFrontierSize: 1}},
		{"3,2;1,4", core.Stats{PathLength: 2, StatesExpanded: 1, TotalCost: 1, MaxFrontierSize: 4}},
		{"4,2;3,1", core.Stats{PathLength: 4, StatesExpanded: 15, TotalCost: 3, MaxFrontierSize: 14}},
		{"4,3;2,1", core.Stats{PathLength: 5, StatesExpanded: 23, TotalCost: 4, MaxFrontierSize: 14}},
		{"5,1,3;4,2,6;7,8,9", core.Stats{PathLength: 3, StatesExpanded: 13, TotalCost: 2, MaxFrontierSize: 88}},
	}
	for _, tc := range cases {
		t.Run(tc.board, func(t *testing.T) {
			g := game(t, tc.board)
			res, err := bfs.Search[tilegame.State](g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Stats)
			testproblem.RequireValidPath[tilegame.State](t, g, res.Path)
		})
	}
}

func TestSearch_TileGamePath(t *testing.T) {
	g := game(t, "4,2;3,1")
	res, err := bfs.Search[tilegame.State](g)
	require.NoError(t, err)
	want := []string{"4,2;3,1", "2,4;3,1", "2,1;3,4", "1,2;3,4"}
	got := make([]string, len(res.Path))
	for i, s := range res.Path {
		got[i] = s.String()
	}
	assert.Equal(t, want, got)
}

// TestSearch_Deterministic repeats a search and expects identical results.
func TestSearch_Deterministic(t *testing.T) {
	g := game(t, "4,3;2,1")
	first, err := bfs.Search[tilegame.State](g)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := bfs.Search[tilegame.State](g)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestSearch_Cancellation stops an unbounded search through the context.
func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stopAt := 1000
	res, err := bfs.Search[int](testproblem.Line{},
		core.WithContext(ctx),
		core.WithOnExpand(func(expanded, _ int) {
			if expanded == stopAt {
				cancel()
			}
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Nil(t, res.Path)
	assert.Equal(t, stopAt, res.Stats.StatesExpanded)
	assert.Equal(t, 1, res.Stats.MaxFrontierSize)
}

// TestSearch_CancelledBeforeStart returns before the first pop.
func TestSearch_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.Search[string](testproblem.Diamond(), core.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Stats.StatesExpanded)
}
