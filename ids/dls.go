package ids

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/statesearch/core"
)

// DLSAlgorithm is the name used for logging and the span of a standalone
// depth-limited search.
const DLSAlgorithm = "dls"

// ErrBadDepth is returned when a negative depth bound is passed to DepthLimited.
var ErrBadDepth = errors.New("ids: depth bound must be non-negative")

// DepthLimited runs a single depth-limited search with the given bound.
// The returned statistics cover this attempt only.
//
// The frontier is a LIFO stack. For every discovered state the search keeps
// the smallest depth at which it has been reached so far; rediscovering a
// state at a strictly smaller depth overwrites its depth and predecessor and
// pushes it again, even if it was already expanded, because the shorter
// route may bring more of the space within the bound. A state is pushed only
// if its depth does not exceed bound.
func DepthLimited[S comparable](p core.Problem[S], bound int, opts ...core.Option) (*core.Result[S], error) {
	if p == nil {
		return nil, core.ErrProblemNil
	}
	if bound < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDepth, bound)
	}
	o, err := core.NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	rec := core.NewRecorder(DLSAlgorithm, o)
	path, err := limited(p, bound, rec)

	return core.Conclude(rec, path, err)
}

// limited is the depth-limited search shared by DepthLimited and Search.
// Expansions and frontier sizes are recorded into rec, so a Recorder reused
// across rounds accumulates totals and maxima.
func limited[S comparable](p core.Problem[S], bound int, rec *core.Recorder) ([]S, error) {
	start := p.StartState()
	stack := []S{start}
	depth := map[S]int{start: 0}
	pred := make(map[S]S)

	for len(stack) > 0 {
		if err := rec.Cancelled(); err != nil {
			return nil, err
		}

		rec.Observe(len(stack))
		n := len(stack) - 1
		state := stack[n]
		stack = stack[:n]

		if p.IsGoal(state) {
			return core.ReconstructPath(pred, start, state)
		}

		d := depth[state] + 1
		for _, child := range p.Successors(state) {
			if known, seen := depth[child]; seen && d >= known {
				continue
			}
			depth[child] = d
			pred[child] = state
			if d <= bound {
				stack = append(stack, child)
			}
		}
		rec.Expand(len(stack))
	}

	return nil, nil
}
