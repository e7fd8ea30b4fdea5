// Package dfs implements depth-first search over a core.Problem.
// It is a baseline: the path it returns is valid but carries no
// optimality guarantee.
package dfs

import (
	"github.com/katalvlaran/statesearch/core"
)

// Algorithm is the name used for logging and the search span.
const Algorithm = "dfs"

// dfsWalker encapsulates state during DFS.
type dfsWalker[S comparable] struct {
	problem  core.Problem[S] // problem being searched
	rec      *core.Recorder  // stats collector
	stack    []S             // LIFO frontier
	expanded map[S]bool      // states whose successors were generated
	pred     map[S]S         // predecessor of every discovered state
}

// Search performs depth-first search on p. The frontier is a LIFO stack
// seeded with the start state. A popped state is goal-tested first; if it
// was already expanded it is skipped, otherwise it is expanded and every
// successor that has not been expanded yet is linked to it and pushed.
//
// A state pushed by several parents before being expanded keeps the link to
// the most recent one, which is exactly the entry popped first, so the
// predecessor chain always follows the order of expansion and never repeats
// a state.
//
// Returns ErrProblemNil or ErrOptionViolation for invalid input and
// ctx.Err() on cancellation; no solution yields a nil Path and no error.
func Search[S comparable](p core.Problem[S], opts ...core.Option) (*core.Result[S], error) {
	// 1. Validate input problem
	if p == nil {
		return nil, core.ErrProblemNil
	}

	// 2. Apply options
	o, err := core.NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	// 3. Seed the frontier
	start := p.StartState()
	w := &dfsWalker[S]{
		problem:  p,
		rec:      core.NewRecorder(Algorithm, o),
		stack:    []S{start},
		expanded: make(map[S]bool),
		pred:     make(map[S]S),
	}

	// 4. Search
	path, err := w.traverse(start)

	return core.Conclude(w.rec, path, err)
}

// traverse pops states until a goal is found or the stack empties.
func (w *dfsWalker[S]) traverse(start S) ([]S, error) {
	for len(w.stack) > 0 {
		// 1. Cancellation check
		if err := w.rec.Cancelled(); err != nil {
			return nil, err
		}

		// 2. Pop
		w.rec.Observe(len(w.stack))
		n := len(w.stack) - 1
		state := w.stack[n]
		w.stack = w.stack[:n]

		// 3. Goal test on pop
		if w.problem.IsGoal(state) {
			return core.ReconstructPath(w.pred, start, state)
		}

		// 4. Stale entry of an already expanded state
		if w.expanded[state] {
			continue
		}

		// 5. Expand
		w.expanded[state] = true
		for _, next := range w.problem.Successors(state) {
			if w.expanded[next] {
				continue
			}
			w.pred[next] = state
			w.stack = append(w.stack, next)
		}
		w.rec.Expand(len(w.stack))
	}

	return nil, nil
}
