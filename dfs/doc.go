// Package dfs implements depth-first search on a core.Problem.
//
// Key features:
//   - Search(p, opts...): LIFO frontier, goal test on pop, mirroring bfs
//   - Revisit bound: a state is expanded at most once
//   - Cancellation via core.WithContext
//   - Statistics: states expanded, frontier high-water mark, path length, cost
//
// DFS is not optimal. Successors are pushed in the order the problem returns
// them, so the last successor is explored first and the first path found to
// a goal may be far longer than the shortest one. This is a property of the
// algorithm, kept as a baseline for bfs, ids and astar.
//
// Complexity:
//
//   - Time:   O(|reachable states| + |moves|)
//   - Memory: O(|reachable states|) for the expanded set and predecessor map;
//     the stack may hold a state more than once.
//
// Errors:
//
//   - core.ErrProblemNil       if p is nil.
//   - core.ErrOptionViolation  for invalid options.
//   - context.Canceled         if ctx is done.
package dfs
