// Package ids implements iterative deepening search: depth-limited search
// repeated with a growing bound until a goal is found.
package ids

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/statesearch/core"
)

// Algorithm is the name used for logging and the search span.
const Algorithm = "ids"

// Search runs iterative deepening on p. Starting from Options.StartDepth
// (1 by default) it runs a depth-limited search per bound and raises the
// bound by one after every round that found no goal.
//
// StatesExpanded is the total over all rounds and MaxFrontierSize the
// maximum over all rounds: work done at shallower bounds is counted.
//
// With the default MaxDepth of 0 the bound grows without limit, so a goal
// that cannot be reached keeps the search running until Options.Ctx is
// cancelled. With core.WithMaxDepth(n) the search gives up after bound n
// and returns a nil Path.
func Search[S comparable](p core.Problem[S], opts ...core.Option) (*core.Result[S], error) {
	if p == nil {
		return nil, core.ErrProblemNil
	}
	o, err := core.NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	rec := core.NewRecorder(Algorithm, o)
	path, err := deepen(p, o, rec)

	return core.Conclude(rec, path, err)
}

// deepen escalates the bound until a round returns a path or an error.
func deepen[S comparable](p core.Problem[S], o core.Options, rec *core.Recorder) ([]S, error) {
	for bound := o.StartDepth; o.MaxDepth == 0 || bound <= o.MaxDepth; bound++ {
		before := rec.Stats().StatesExpanded
		path, err := limited(p, bound, rec)
		round := rec.Stats().StatesExpanded - before

		rec.Event("round", map[string]int{"bound": bound, "states_expanded": round})
		rec.Logger().WithFields(logrus.Fields{
			"bound":           bound,
			"states_expanded": round,
			"found":           path != nil,
		}).Debug("depth-limited round finished")

		if err != nil || path != nil {
			return path, err
		}
	}

	return nil, nil
}
