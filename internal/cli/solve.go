package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statesearch/astar"
	"github.com/katalvlaran/statesearch/bench"
	"github.com/katalvlaran/statesearch/bfs"
	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/dfs"
	"github.com/katalvlaran/statesearch/heuristics"
	"github.com/katalvlaran/statesearch/ids"
	"github.com/katalvlaran/statesearch/tilegame"
)

// ErrUnknownAlgorithm is returned for an --algorithm outside bfs, dfs, ids and astar.
var ErrUnknownAlgorithm = errors.New("cli: unknown algorithm")

type solveInput struct {
	algorithm string
	heuristic string
	lambda    float64
	size      int
	maxDepth  int
	timeout   time.Duration
}

// solution is the YAML form of a solve run.
type solution struct {
	Algorithm string           `yaml:"algorithm"`
	Heuristic string           `yaml:"heuristic,omitempty"`
	Lambda    float64          `yaml:"lambda,omitempty"`
	Start     tilegame.State   `yaml:"start"`
	Found     bool             `yaml:"found"`
	Path      []tilegame.State `yaml:"path,omitempty"`
	Stats     core.Stats       `yaml:"stats"`
}

func (a *App) newSolveCmd() *cobra.Command {
	in := &solveInput{}
	cmd := &cobra.Command{
		Use:   "solve [board]",
		Short: "Solve one board and print the path",
		Long: `Solve one board and print every state on the path from the start to
the goal. The board is written row by row, e.g. "3,2;1,4" or
"4,1,3; 7,2,6; 9,5,8". Without a board a random one of --size is drawn
from --seed.`,
		Example: `  tilesearch solve "3,2;1,4" --algorithm bfs
  tilesearch solve --size 3 --heuristic manhattan --lambda 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, in, args)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&in.algorithm, "algorithm", "a", astar.Algorithm, "search algorithm: bfs, dfs, ids or astar")
	f.StringVar(&in.heuristic, "heuristic", bench.DefaultHeuristic, fmt.Sprintf("A* heuristic: one of %v", heuristics.Names()))
	f.Float64Var(&in.lambda, "lambda", 1, "scale factor applied to the A* heuristic")
	f.IntVar(&in.size, "size", 3, "dimension of the random board when none is given")
	f.IntVar(&in.maxDepth, "max-depth", 0, "last depth bound of iterative deepening (0: unbounded)")
	f.DurationVar(&in.timeout, "timeout", 0, "abort the search after this long (0: no limit)")

	return cmd
}

func (a *App) solve(cmd *cobra.Command, in *solveInput, args []string) error {
	game, err := a.newGame(cmd, in, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if in.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, in.timeout)
		defer cancel()
	}

	res, err := a.runSearch(ctx, game, in)
	if err != nil {
		return errors.Wrapf(err, "%s search", in.algorithm)
	}

	sol := solution{
		Algorithm: in.algorithm,
		Start:     game.StartState(),
		Found:     res.Found(),
		Path:      res.Path,
		Stats:     res.Stats,
	}
	if in.algorithm == astar.Algorithm {
		sol.Heuristic, sol.Lambda = in.heuristic, in.lambda
	}

	return a.writeSolution(sol)
}

// newGame builds the game from the board argument or a seeded random board.
func (a *App) newGame(cmd *cobra.Command, in *solveInput, args []string) (*tilegame.Game, error) {
	if len(args) == 1 {
		start, err := tilegame.ParseState(args[0])
		if err != nil {
			return nil, errors.Wrapf(err, "board %q", args[0])
		}
		if cmd.Flags().Changed("size") && in.size != start.Dim() {
			return nil, errors.Errorf("--size %d does not match the %d×%d board", in.size, start.Dim(), start.Dim())
		}

		return tilegame.NewGame(start.Dim(), tilegame.WithStart(start))
	}

	var opts []tilegame.GameOption
	if a.cfg.Seed != 0 {
		opts = append(opts, tilegame.WithRandom(rand.New(rand.NewSource(a.cfg.Seed))))
	}
	game, err := tilegame.NewGame(in.size, opts...)

	return game, errors.Wrap(err, "random board")
}

func (a *App) runSearch(ctx context.Context, game *tilegame.Game, in *solveInput) (*core.Result[tilegame.State], error) {
	opts := a.searchOptions(ctx)
	switch in.algorithm {
	case bfs.Algorithm:
		return bfs.Search[tilegame.State](game, opts...)
	case dfs.Algorithm:
		return dfs.Search[tilegame.State](game, opts...)
	case ids.Algorithm:
		return ids.Search[tilegame.State](game, append(opts, core.WithMaxDepth(in.maxDepth))...)
	case astar.Algorithm:
		h, err := heuristics.ByName(in.heuristic)
		if err != nil {
			return nil, err
		}
		if in.lambda < 0 {
			return nil, errors.Errorf("--lambda cannot be negative (%v)", in.lambda)
		}
		if in.lambda != 1 {
			h = heuristics.Scaled(h, in.lambda)
		}

		return astar.Search[tilegame.State](game.WithHeuristic(h), opts...)
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", in.algorithm)
	}
}

func (a *App) writeSolution(sol solution) error {
	if a.in.output == OutputYAML {
		return writeYAML(a.stdout, sol)
	}

	w := a.stdout
	if !sol.Found {
		fmt.Fprintf(w, "no solution for %v\n", sol.Start)
		fmt.Fprintln(w, sol.Stats)
		return nil
	}
	for i, s := range sol.Path {
		if i == 0 {
			fmt.Fprintln(w, "start:")
		} else {
			fmt.Fprintf(w, "move %d:\n", i)
		}
		fmt.Fprintln(w, s.Pretty())
	}
	fmt.Fprintf(w, "solved in %d moves\n", sol.Stats.TotalCost)
	fmt.Fprintln(w, sol.Stats)

	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode yaml")
	}

	return enc.Close()
}
