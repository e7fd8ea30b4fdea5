// Package core defines the contracts and shared machinery used by every
// search algorithm in statesearch.
//
// What
//
//   - Problem[S]: the abstract search problem (start state, goal test,
//     successor function). S is any comparable state type.
//   - HeuristicProblem[S]: a Problem that can also estimate the remaining
//     cost from a state; consumed only by A*.
//   - Heuristic[S]: the single-method estimate capability that is injected
//     into a Problem with NewHeuristicProblem.
//   - Stats / Result[S]: the fixed-shape outcome of a search call.
//   - Recorder: per-call bookkeeping of expansions and frontier high-water
//     mark, plus logging (logrus), tracing and metrics (OpenTelemetry) of
//     the call. The metric names are the Metric* constants.
//   - ReconstructPath: iterative predecessor-chase path rebuilding.
//   - Option / Options: functional options shared by all algorithms.
//
// Outcome convention
//
//	No solution is not an error: Result.Path is nil and Result.Stats reports
//	the real work done before the frontier emptied. An error is only
//	returned for invalid input (ErrProblemNil, ErrOptionViolation) or when
//	Options.Ctx is cancelled; in the latter case the partial Result is
//	returned alongside ctx.Err().
//
// Concurrency
//
//	Each search call owns its frontier, visited/predecessor maps and
//	Recorder. Nothing is shared between calls, so concurrent searches over
//	separate problem instances are safe.
package core
