// Package statesearch is a toolkit of classic state-space search algorithms
// over any problem you can describe with a start state, a goal test and a
// successor function.
//
// What is inside?
//
//	A small, generic library built around one contract:
//		• core.Problem[S]: StartState, IsGoal, Successors for any comparable S
//		• core.HeuristicProblem[S]: the same plus a cost-to-goal estimate
//		• Uninformed search: BFS, DFS, depth-limited and iterative deepening
//		• Informed search: A* with pluggable heuristics
//		• One Stats record for all of them: path length, expansions,
//		  total cost and frontier high-water mark
//
// Every search takes functional options (core.WithContext, core.WithLogger,
// core.WithTracer, core.WithMeter, core.WithOnExpand, ...) and reports to
// logrus and OpenTelemetry, so a long run can be cancelled, traced and
// measured without touching the algorithm.
//
// Layout:
//
//	core/        Problem contracts, options, Stats, Result and path reconstruction
//	bfs/         breadth-first search (FIFO frontier, shortest in moves)
//	dfs/         depth-first search (LIFO frontier, any path)
//	ids/         depth-limited search and iterative deepening
//	astar/       A* over f = g + h with FIFO tie-breaking
//	tilegame/    the n×n tile-swap puzzle as a search problem
//	heuristics/  admissible, manhattan, euclidean and zero estimates
//	bench/       seeded experiments comparing algorithms and heuristics
//	cmd/         the tilesearch command line
//
// Quick ASCII example (one swap from the goal):
//
//	+---+        +---+
//	|3 2|  swap  |1 2|
//	|1 4|  ───►  |3 4|
//	+---+        +---+
//
//	go get github.com/katalvlaran/statesearch
package statesearch
