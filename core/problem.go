package core

// Problem is the contract every search algorithm consumes.
//
// Successors returns the states reachable from state in one move. The slice
// has set semantics: it must not contain duplicates and its order carries no
// meaning, but it must be deterministic for a given state so that searches
// are reproducible. Neither IsGoal nor Successors may mutate shared state.
type Problem[S comparable] interface {
	// StartState returns the state the search begins from.
	StartState() S

	// IsGoal reports whether state satisfies the goal test.
	IsGoal(state S) bool

	// Successors returns the states one move away from state.
	Successors(state S) []S
}

// HeuristicProblem extends Problem with a cost-to-goal estimate.
//
// The estimate is expected to be non-negative. Admissibility is a property of
// the supplied function and is never checked: an inadmissible heuristic only
// weakens the optimality guarantee of A*, not the mechanics of the search.
type HeuristicProblem[S comparable] interface {
	Problem[S]

	// Heuristic estimates the remaining cost from state to a goal.
	Heuristic(state S) float64
}

// Heuristic is the single-operation estimate capability injected into a
// problem, so that one problem type can be searched with many heuristics.
type Heuristic[S comparable] interface {
	Estimate(state S) float64
}

// HeuristicFunc adapts a plain function to the Heuristic interface.
type HeuristicFunc[S comparable] func(state S) float64

// Estimate calls f(state).
func (f HeuristicFunc[S]) Estimate(state S) float64 { return f(state) }

// heuristicProblem pairs a Problem with an injected Heuristic.
type heuristicProblem[S comparable] struct {
	Problem[S]
	h Heuristic[S]
}

// Heuristic delegates to the injected estimate.
func (p *heuristicProblem[S]) Heuristic(state S) float64 {
	return p.h.Estimate(state)
}

// NewHeuristicProblem returns a HeuristicProblem that answers the Problem
// methods from p and the heuristic from h. A nil h estimates zero everywhere,
// which makes A* explore in breadth-first order.
func NewHeuristicProblem[S comparable](p Problem[S], h Heuristic[S]) HeuristicProblem[S] {
	if h == nil {
		h = HeuristicFunc[S](func(S) float64 { return 0 })
	}

	return &heuristicProblem[S]{Problem: p, h: h}
}
