// Package bench runs the tile-game experiments used to compare the search
// algorithms and heuristics against each other.
//
// Experiments:
//
//   - CompareBlind:   BFS, DFS and IDS (or IDS alone) on random boards of one
//     size; mean expansions, frontier high-water mark and path length.
//   - CompareLambdas: A* with the admissible heuristic scaled by each λ (by
//     default eight values spaced geometrically from 1 to 5) plus the
//     euclidean heuristic, on shared random boards.
//   - CompareSizes:   A* with a set of named heuristics across board sizes.
//   - CompletionRate: for growing board sizes, the fraction of A* runs that
//     finish within a per-search timeout; stops at the first size where none
//     does.
//
// Determinism:
//
//	Every trial board is drawn from its own RNG stream derived from
//	Config.Seed before any search starts, and results are stored by trial
//	index. The same Config therefore yields the same report regardless of
//	Config.Workers.
//
// Concurrency:
//
//	Trials run on an errgroup limited to Config.Workers goroutines. The first
//	failing trial cancels the others; cancelling the caller's context stops
//	the experiment with ctx.Err().
//
// Reports carry a random run id, render as text or YAML and can be kept in
// an Archive.
package bench
