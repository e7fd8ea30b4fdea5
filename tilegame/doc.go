// Package tilegame provides the tile-swap puzzle domain used to exercise
// the search algorithms.
//
//   - Board:         immutable n×n geometry (row-major indexing, adjacent pairs)
//   - State:         comparable board value; NewState, ParseState, GoalState, RandomState
//   - Game:          core.Problem[State]; NewGame with WithStart/WithGoal/WithRandom
//   - HeuristicGame: core.HeuristicProblem[State] with an injected core.Heuristic
//
// Successors are all states one adjacent swap away, sorted by State.Less, so
// every search over a Game is reproducible. The reachable space is all n²!
// arrangements: adjacent swaps on a connected board generate every permutation.
package tilegame
