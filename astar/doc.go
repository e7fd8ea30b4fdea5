// Package astar provides heuristic best-first search (A*) over a
// core.HeuristicProblem.
//
// Overview:
//
//   - Priority f = h(state) + g, with g the number of states on the path so
//     far; the start is seeded with f = h(start), g = 1.
//   - Ties are broken by insertion order, so results are reproducible and
//     A* with h ≡ 0 visits states in exactly the order bfs does.
//   - Single insert per state: the "added" set is never revisited, there is
//     no decrease-key and no re-opening.
//
// When to use:
//
//   - With an admissible and consistent heuristic on problems where the first
//     route to a state is also a cheapest one, A* returns shortest paths while
//     expanding far fewer states than bfs.
//   - With an inadmissible or scaled heuristic it trades path length for
//     fewer expansions.
//
// Heuristic injection:
//
//	Any core.Problem can be searched with any core.Heuristic through
//	core.NewHeuristicProblem(p, h); problem types may also implement
//	Heuristic(S) float64 themselves (see tilegame.HeuristicGame).
//
// Performance and complexity:
//
//   - Time:  O(N log N) for N states added; each is pushed and popped once.
//   - Space: O(N) for the heap, added set and predecessor map.
//
// Error handling:
//
//   - core.ErrProblemNil / core.ErrOptionViolation for invalid input.
//   - ctx.Err() on cancellation, alongside the partial Result.
package astar
