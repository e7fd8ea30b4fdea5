package core

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all search algorithms.
var (
	// ErrProblemNil is returned when a nil Problem is passed to a search.
	ErrProblemNil = errors.New("core: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("core: invalid option supplied")

	// ErrBrokenPredecessorChain indicates that walking the predecessor map
	// from the goal never reached the start state.
	ErrBrokenPredecessorChain = errors.New("core: predecessor chain does not reach start")
)

// Stats is the fixed-shape record every search returns.
//
//   - StatesExpanded:  states whose successors were generated.
//   - MaxFrontierSize: high-water mark of the frontier container.
//   - PathLength:      states in the returned path, 0 when none was found.
//   - TotalCost:       moves along the path (PathLength-1), 0 when none was found.
type Stats struct {
	PathLength      int `json:"path_length" yaml:"path_length"`
	StatesExpanded  int `json:"states_expanded" yaml:"states_expanded"`
	TotalCost       int `json:"total_cost" yaml:"total_cost"`
	MaxFrontierSize int `json:"max_frontier_size" yaml:"max_frontier_size"`
}

// String renders the stats on one line.
func (s Stats) String() string {
	return fmt.Sprintf("path_length=%d states_expanded=%d total_cost=%d max_frontier_size=%d",
		s.PathLength, s.StatesExpanded, s.TotalCost, s.MaxFrontierSize)
}

// Result holds the outcome of a single search call.
// Path runs from the start state to a goal state inclusive; it is nil when
// the frontier was exhausted (or the search cancelled) before a goal was found.
type Result[S comparable] struct {
	Path  []S
	Stats Stats
}

// Found reports whether the search produced a path.
func (r *Result[S]) Found() bool {
	return r != nil && r.Path != nil
}

// Goal returns the last state of the path and true, or the zero state and
// false when no path was found.
func (r *Result[S]) Goal() (S, bool) {
	var zero S
	if !r.Found() {
		return zero, false
	}

	return r.Path[len(r.Path)-1], true
}
