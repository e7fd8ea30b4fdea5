// Package testproblem provides small, deterministic search problems and
// path assertions shared by the algorithm test suites.
package testproblem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statesearch/core"
)

// Graph is an explicit-edge search problem over string states.
// Successors are returned in the order the edges were added.
type Graph struct {
	Start string
	Goals map[string]bool
	adj   map[string][]string
	// H is the heuristic table used by Heuristic; missing states estimate 0.
	H map[string]float64
	// Calls counts Successors invocations.
	Calls int
}

// NewGraph returns an empty Graph searching from start to any of goals.
func NewGraph(start string, goals ...string) *Graph {
	g := &Graph{
		Start: start,
		Goals: make(map[string]bool, len(goals)),
		adj:   make(map[string][]string),
		H:     make(map[string]float64),
	}
	for _, s := range goals {
		g.Goals[s] = true
	}

	return g
}

// Arc adds the directed move u→v once.
func (g *Graph) Arc(u, v string) *Graph {
	for _, w := range g.adj[u] {
		if w == v {
			return g
		}
	}
	g.adj[u] = append(g.adj[u], v)

	return g
}

// Edge adds the moves u→v and v→u.
func (g *Graph) Edge(u, v string) *Graph {
	return g.Arc(u, v).Arc(v, u)
}

// StartState implements core.Problem.
func (g *Graph) StartState() string { return g.Start }

// IsGoal implements core.Problem.
func (g *Graph) IsGoal(s string) bool { return g.Goals[s] }

// Successors implements core.Problem.
func (g *Graph) Successors(s string) []string {
	g.Calls++
	out := make([]string, len(g.adj[s]))
	copy(out, g.adj[s])

	return out
}

// Heuristic implements core.HeuristicProblem from the H table.
func (g *Graph) Heuristic(s string) float64 { return g.H[s] }

// Chain builds the undirected chain n0–n1–…–n(k-1) searching n0 → n(k-1).
func Chain(k int) *Graph {
	g := NewGraph("n0", fmt.Sprintf("n%d", k-1))
	for i := 0; i+1 < k; i++ {
		g.Edge(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1))
	}

	return g
}

// Grid builds an undirected m×m 4-connected grid searching "0_0" → "(m-1)_(m-1)".
func Grid(m int) *Graph {
	g := NewGraph("0_0", fmt.Sprintf("%d_%d", m-1, m-1))
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			id := fmt.Sprintf("%d_%d", i, j)
			if j+1 < m {
				g.Edge(id, fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < m {
				g.Edge(id, fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	return g
}

// Diamond builds a graph with a 4-move route A–B–C–D–K and a 3-move route
// A–E–F–K, plus dead-end branches off the long route.
func Diamond() *Graph {
	g := NewGraph("A", "K")
	g.Edge("A", "B").Edge("B", "C").Edge("C", "D").Edge("D", "K")
	g.Edge("A", "E").Edge("E", "F").Edge("F", "K")
	g.Edge("C", "G").Edge("G", "H")
	g.Edge("D", "I").Edge("I", "J")

	return g
}

// Line is an unbounded problem over the integers: every n has the single
// successor n+1 and no state is a goal. Searches on it only end through
// cancellation or a depth cap.
type Line struct{}

// StartState implements core.Problem.
func (Line) StartState() int { return 0 }

// IsGoal implements core.Problem.
func (Line) IsGoal(int) bool { return false }

// Successors implements core.Problem.
func (Line) Successors(n int) []int { return []int{n + 1} }

// RequireValidPath asserts the path invariants every algorithm must honour:
// it starts at the start state, ends at a goal, each step is a successor of
// the previous state, and no state repeats.
func RequireValidPath[S comparable](t testing.TB, p core.Problem[S], path []S) {
	t.Helper()
	require.NotEmpty(t, path, "path must not be empty")
	require.Equal(t, p.StartState(), path[0], "path must start at the start state")
	require.True(t, p.IsGoal(path[len(path)-1]), "path must end at a goal state")

	seen := make(map[S]bool, len(path))
	for i, s := range path {
		require.False(t, seen[s], "state %v repeats at index %d", s, i)
		seen[s] = true
		if i == 0 {
			continue
		}
		require.Contains(t, p.Successors(path[i-1]), s,
			"step %d: %v is not a successor of %v", i, s, path[i-1])
	}
}
