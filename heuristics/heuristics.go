// Package heuristics provides cost-to-goal estimates for tilegame states.
//
// All estimates measure distance to the canonical goal (tiles 1..n² in
// row-major order). One move swaps two adjacent tiles and so changes the
// summed Manhattan distance by at most 2; that is why Manhattan/2 is
// admissible and plain Manhattan is not.
package heuristics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/tilegame"
)

// ErrUnknownHeuristic is returned by ByName for an unregistered name.
var ErrUnknownHeuristic = errors.New("heuristics: unknown heuristic")

// Heuristic is the estimate type every function in this package returns.
type Heuristic = core.HeuristicFunc[tilegame.State]

// Manhattan sums, over all tiles, the Manhattan distance from the tile's
// cell to its home cell. Inadmissible for swap moves.
var Manhattan Heuristic = func(s tilegame.State) float64 {
	return float64(manhattanSum(s))
}

// Admissible is Manhattan halved.
var Admissible Heuristic = func(s tilegame.State) float64 {
	return float64(manhattanSum(s)) / 2
}

// Euclidean sums the straight-line distance from each misplaced tile to its
// home cell. Inadmissible.
var Euclidean Heuristic = func(s tilegame.State) float64 {
	n := s.Dim()
	total := 0.0
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			hr, hc := home(s.Tile(r, c), n)
			if hr == r && hc == c {
				continue
			}
			dr, dc := float64(hr-r), float64(hc-c)
			total += math.Sqrt(dr*dr + dc*dc)
		}
	}

	return total
}

// Zero estimates 0 everywhere; A* with Zero explores in breadth-first order.
var Zero Heuristic = func(tilegame.State) float64 { return 0 }

// Scaled returns int(lambda·h(s)), truncated toward zero. With lambda > 1
// an admissible h becomes inadmissible: A* expands fewer states and may
// return longer paths.
func Scaled(h core.Heuristic[tilegame.State], lambda float64) Heuristic {
	return func(s tilegame.State) float64 {
		return math.Trunc(lambda * h.Estimate(s))
	}
}

// manhattanSum totals |row-homeRow| + |col-homeCol| over every tile.
func manhattanSum(s tilegame.State) int {
	n := s.Dim()
	total := 0
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			hr, hc := home(s.Tile(r, c), n)
			total += abs(hr-r) + abs(hc-c)
		}
	}

	return total
}

func home(tile, n int) (r, c int) { return (tile - 1) / n, (tile - 1) % n }

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

var registry = map[string]Heuristic{
	"admissible":   Admissible,
	"manhattan":    Manhattan,
	"inadmissible": Manhattan,
	"euclidean":    Euclidean,
	"zero":         Zero,
}

// ByName looks up a heuristic by its registered name.
func ByName(name string) (Heuristic, error) {
	h, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownHeuristic, name, Names())
	}

	return h, nil
}

// Names lists the registered heuristic names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Geomspace returns count values spaced evenly on a log scale from lo to hi
// inclusive; count < 2 yields just lo.
func Geomspace(lo, hi float64, count int) []float64 {
	if count < 2 {
		return []float64{lo}
	}
	out := make([]float64, count)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(count-1))
	}
	out[count-1] = hi

	return out
}
