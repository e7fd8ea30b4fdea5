// Package bfs provides breadth-first search over a core.Problem,
// returning a minimum-move path from the start state to a goal state.
//
// What
//
//   - Explore states in non-decreasing depth (move count) from the start.
//   - Returns a core.Result containing:
//   - Path:  start … goal inclusive, or nil when no goal is reachable
//   - Stats: states expanded, frontier high-water mark, path length, cost
//   - Goal test happens on dequeue; the start state is goal-tested first, so
//     a start that is already a goal yields a one-state path and zero
//     expansions.
//
// Why
//
//   - Optimal for unit-cost problems: the first goal dequeued is a shallowest one.
//   - Reference exploration order for comparing DFS, IDS and A*.
//
// Determinism
//
//	BFS enqueues successors in the order Problem.Successors returns them, so
//	for a deterministic problem the expansion sequence, the returned path and
//	the statistics are fully reproducible.
//
// Complexity (b = branching factor, d = depth of the shallowest goal)
//
//   - Time:   O(b^d)
//   - Memory: O(b^d)   (queue, visited set, predecessor map)
//
// Usage
//
//	res, err := bfs.Search[tilegame.State](game)
//	if err != nil {
//	    // ErrProblemNil, ErrOptionViolation, or ctx.Err()
//	}
//	if res.Found() {
//	    fmt.Println(res.Stats.TotalCost)
//	}
//
//	// With functional options:
//	res, err := bfs.Search[tilegame.State](game,
//	    core.WithContext(ctx),
//	    core.WithLogger(log),
//	    core.WithProgressInterval(500),
//	)
//
// Errors
//
//   - core.ErrProblemNil       if the problem is nil.
//   - core.ErrOptionViolation  if an invalid Option was supplied.
//   - ctx.Err()                if Options.Ctx is cancelled; the partial
//     Result is returned alongside.
package bfs
