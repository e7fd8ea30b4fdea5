// Package ids provides iterative deepening search (IDS) and its inner
// primitive, depth-limited search (DLS), over a core.Problem.
//
// What
//
//   - DepthLimited(p, bound, opts...): one LIFO search that never pushes a
//     state deeper than bound. It tracks the minimum depth at which each
//     state was reached and re-opens a state when a strictly shallower route
//     to it appears.
//   - Search(p, opts...): DepthLimited with bound = 1, 2, 3, … until a goal
//     is found; statistics accumulate across rounds.
//
// Why
//
//   - DFS-like memory on the frontier with BFS-like optimality on unit-cost
//     problems: the first bound at which a goal is found equals the depth of
//     the shallowest goal, and the returned path has exactly that many moves.
//
// Options
//
//   - core.WithStartDepth(d)  first bound (default 1).
//   - core.WithMaxDepth(d)    last bound; 0 (default) means unbounded.
//   - core.WithContext(ctx)   the only way to stop an unbounded search on a
//     problem whose goal is unreachable.
//
// Errors
//
//   - core.ErrProblemNil, core.ErrOptionViolation for invalid input.
//   - ErrBadDepth for a negative DepthLimited bound.
//   - ctx.Err() on cancellation, with the partial Result.
package ids
