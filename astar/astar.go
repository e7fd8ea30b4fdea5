// Package astar implements best-first A* search over a core.HeuristicProblem.
//
// The frontier is a min-heap ordered by f = heuristic(state) + g(state),
// where g counts the states on the path by which the state was first added
// (the start has g = 1). Every state enters the frontier at most once: a
// cheaper route found after a state was added is ignored, so the returned
// path is optimal only when no such cheaper route exists.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/statesearch/core"
)

// Algorithm is the name used for logging and the search span.
const Algorithm = "astar"

// Search runs A* on p with any number of core.Options.
//
// Seeding: the start state is pushed with priority heuristic(start) and
// g = 1, and marked added. Loop: pop the lowest-priority entry (FIFO among
// ties); a goal ends the search and its path is rebuilt from the
// predecessor map. Otherwise the state is expanded: each successor not yet
// added gets its predecessor recorded and is pushed with priority
// heuristic(successor) + g + 1 and g + 1. MaxFrontierSize is sampled after
// seeding and after every expansion.
//
// Returns ErrProblemNil or ErrOptionViolation for invalid input and
// ctx.Err() on cancellation; an exhausted frontier yields a nil Path.
func Search[S comparable](p core.HeuristicProblem[S], opts ...core.Option) (*core.Result[S], error) {
	// 1) Validate problem is non-nil
	if p == nil {
		return nil, core.ErrProblemNil
	}

	// 2) Build and validate Options
	o, err := core.NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	// 3) Initialize runner and seed the frontier
	r := &runner[S]{
		p:     p,
		rec:   core.NewRecorder(Algorithm, o),
		pq:    make(nodePQ[S], 0, 64),
		added: make(map[S]bool),
		prev:  make(map[S]S),
	}
	r.init()

	// 4) Run main loop
	path, err := r.process()

	return core.Conclude(r.rec, path, err)
}

// runner holds the mutable state for a single A* execution.
type runner[S comparable] struct {
	p     core.HeuristicProblem[S] // The problem; read-only within Search.
	rec   *core.Recorder           // Expansion and frontier bookkeeping.
	pq    nodePQ[S]                // Min-heap ordered by (f, seq).
	added map[S]bool               // States that have ever entered the heap.
	prev  map[S]S                  // Maps state → predecessor on its path.
	seq   uint64                   // Next insertion sequence number.
	start S
}

// init pushes the start state with f = heuristic(start) and g = 1.
func (r *runner[S]) init() {
	r.start = r.p.StartState()
	heap.Init(&r.pq)
	r.push(r.start, 1, r.p.Heuristic(r.start))
	r.rec.Observe(r.pq.Len())
}

// push inserts state into the heap and marks it added.
func (r *runner[S]) push(state S, g int, f float64) {
	heap.Push(&r.pq, &nodeItem[S]{state: state, g: g, f: f, seq: r.seq})
	r.seq++
	r.added[state] = true
}

// process pops entries until a goal is reached, the heap empties, or the
// context is cancelled.
func (r *runner[S]) process() ([]S, error) {
	for r.pq.Len() > 0 {
		if err := r.rec.Cancelled(); err != nil {
			return nil, err
		}

		// 1) Pop the lowest-priority item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem[S])

		// 2) Goal test on pop.
		if r.p.IsGoal(item.state) {
			return core.ReconstructPath(r.prev, r.start, item.state)
		}

		// 3) Expand.
		r.expand(item)
	}

	return nil, nil
}

// expand pushes every successor of item that has never been added.
// A successor already added keeps its first predecessor and priority even if
// this route is cheaper.
func (r *runner[S]) expand(item *nodeItem[S]) {
	g := item.g + 1
	for _, next := range r.p.Successors(item.state) {
		if r.added[next] {
			continue
		}
		r.prev[next] = item.state
		r.push(next, g, r.p.Heuristic(next)+float64(g))
	}
	r.rec.Expand(r.pq.Len())
	r.rec.Observe(r.pq.Len())
}
