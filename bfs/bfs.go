// Package bfs provides breadth-first search over any core.Problem,
// returning a shortest path (in moves) from the start state to a goal.
package bfs

import (
	"github.com/katalvlaran/statesearch/core"
)

// Algorithm is the name used for logging and the search span.
const Algorithm = "bfs"

// walker encapsulates mutable BFS state for a single call.
type walker[S comparable] struct {
	problem core.Problem[S]
	rec     *core.Recorder
	queue   []S
	visited map[S]bool
	pred    map[S]S
}

// Search runs breadth-first search on p, applying any number of core.Options.
//
// The frontier is a FIFO queue seeded with the start state, and the visited
// set is seeded with it too. Each dequeued state is goal-tested first; a
// non-goal state is expanded and every successor not yet visited is marked,
// linked to its predecessor and enqueued. Because every move has unit cost,
// the first goal dequeued lies at minimum depth.
//
// Returns ErrProblemNil or ErrOptionViolation for invalid input and
// ctx.Err() on cancellation. Exhausting the frontier is not an error: the
// Result has a nil Path and the statistics of the work done.
func Search[S comparable](p core.Problem[S], opts ...core.Option) (*core.Result[S], error) {
	if p == nil {
		return nil, core.ErrProblemNil
	}
	o, err := core.NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	start := p.StartState()
	w := &walker[S]{
		problem: p,
		rec:     core.NewRecorder(Algorithm, o),
		queue:   make([]S, 0, 64),
		visited: map[S]bool{start: true},
		pred:    make(map[S]S),
	}
	w.queue = append(w.queue, start)

	path, err := w.loop(start)

	return core.Conclude(w.rec, path, err)
}

// loop processes the queue until a goal is dequeued, the queue empties,
// or the context is cancelled.
func (w *walker[S]) loop(start S) ([]S, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		if err := w.rec.Cancelled(); err != nil {
			return nil, err
		}

		w.rec.Observe(len(w.queue))
		state := w.dequeue()
		if w.problem.IsGoal(state) {
			return core.ReconstructPath(w.pred, start, state)
		}
		w.expand(state)
	}

	return nil, nil
}

// dequeue pops the oldest state.
func (w *walker[S]) dequeue() S {
	state := w.queue[0]
	var zero S
	w.queue[0] = zero
	w.queue = w.queue[1:]

	return state
}

// expand generates the successors of state and enqueues each unseen one.
func (w *walker[S]) expand(state S) {
	for _, next := range w.problem.Successors(state) {
		if w.visited[next] {
			continue
		}
		w.visited[next] = true
		w.pred[next] = state
		w.queue = append(w.queue, next)
	}
	w.rec.Expand(len(w.queue))
}
