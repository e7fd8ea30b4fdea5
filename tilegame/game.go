// Package tilegame implements the tile-swap puzzle as a core.Problem.
//
// A state is an n×n arrangement of the tiles 1..n². One move exchanges any
// two orthogonally adjacent tiles. The canonical goal is 1..n² in row-major
// order, so on a 2×2 board:
//
//	+---+      +---+
//	|3 2|  →   |1 2|
//	|1 4|      |3 4|
//	+---+      +---+
//
// is solved by a single vertical swap of the left column.
package tilegame

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/statesearch/core"
)

// defaultSeed seeds the random start when no start state and no RNG are given.
const defaultSeed int64 = 1

// Game is the tile-swap puzzle as a search problem.
// It is immutable after construction and safe for concurrent searches.
type Game struct {
	board *Board
	start State
	goal  State
}

var _ core.Problem[State] = (*Game)(nil)

// GameOption configures NewGame.
type GameOption func(*gameConfig)

type gameConfig struct {
	start *State
	goal  *State
	rng   *rand.Rand
}

// WithStart fixes the start state instead of drawing a random one.
func WithStart(s State) GameOption {
	return func(c *gameConfig) { c.start = &s }
}

// WithGoal replaces the canonical goal state.
func WithGoal(s State) GameOption {
	return func(c *gameConfig) { c.goal = &s }
}

// WithRandom draws the random start state from rng.
func WithRandom(rng *rand.Rand) GameOption {
	return func(c *gameConfig) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// NewGame builds a dim×dim game. Without WithStart the start state is a
// random board drawn from the WithRandom source (seeded with defaultSeed
// when none is given); without WithGoal the goal is GoalState(dim).
func NewGame(dim int, opts ...GameOption) (*Game, error) {
	board, err := NewBoard(dim)
	if err != nil {
		return nil, err
	}
	cfg := gameConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Game{board: board}
	if cfg.goal != nil {
		if cfg.goal.Dim() != dim {
			return nil, fmt.Errorf("%w: goal is %d×%d, game is %d×%d", ErrDimensionMismatch, cfg.goal.Dim(), cfg.goal.Dim(), dim, dim)
		}
		g.goal = *cfg.goal
	} else if g.goal, err = GoalState(dim); err != nil {
		return nil, err
	}

	switch {
	case cfg.start != nil:
		if cfg.start.Dim() != dim {
			return nil, fmt.Errorf("%w: start is %d×%d, game is %d×%d", ErrDimensionMismatch, cfg.start.Dim(), cfg.start.Dim(), dim, dim)
		}
		g.start = *cfg.start
	default:
		rng := cfg.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(defaultSeed))
		}
		if g.start, err = RandomState(dim, rng); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Board returns the board geometry.
func (g *Game) Board() *Board { return g.board }

// Goal returns the goal state.
func (g *Game) Goal() State { return g.goal }

// StartState implements core.Problem.
func (g *Game) StartState() State { return g.start }

// IsGoal implements core.Problem.
func (g *Game) IsGoal(s State) bool { return s == g.goal }

// Successors implements core.Problem: every state one adjacent swap away,
// deduplicated and sorted by State.Less.
func (g *Game) Successors(s State) []State {
	seen := make(map[State]struct{}, 2*g.board.Cells())
	out := make([]State, 0, 2*g.board.Cells())
	g.board.SwapPairs(func(i, j int) {
		next := s.Swap(i, j)
		if _, dup := seen[next]; dup {
			return
		}
		seen[next] = struct{}{}
		out = append(out, next)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// HeuristicGame is a Game that also answers core.HeuristicProblem with an
// injected heuristic.
type HeuristicGame struct {
	*Game
	h core.Heuristic[State]
}

var _ core.HeuristicProblem[State] = (*HeuristicGame)(nil)

// NewHeuristicGame builds a Game with NewGame and attaches h.
// A nil h estimates zero everywhere.
func NewHeuristicGame(dim int, h core.Heuristic[State], opts ...GameOption) (*HeuristicGame, error) {
	g, err := NewGame(dim, opts...)
	if err != nil {
		return nil, err
	}

	return g.WithHeuristic(h), nil
}

// WithHeuristic returns a HeuristicGame over the same start and goal.
func (g *Game) WithHeuristic(h core.Heuristic[State]) *HeuristicGame {
	if h == nil {
		h = core.HeuristicFunc[State](func(State) float64 { return 0 })
	}

	return &HeuristicGame{Game: g, h: h}
}

// Heuristic implements core.HeuristicProblem.
func (g *HeuristicGame) Heuristic(s State) float64 { return g.h.Estimate(s) }
