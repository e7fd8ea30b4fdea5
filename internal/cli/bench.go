package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/statesearch/bench"
	"github.com/katalvlaran/statesearch/heuristics"
)

// experimentFunc is the signature shared by the bench experiments.
type experimentFunc func(context.Context, bench.Config) (*bench.Report, error)

// benchInput holds the experiment flags. A flag overrides the config file
// only when it was set on the command line.
type benchInput struct {
	trials         int
	workers        int
	size           int
	idsOnly        bool
	heuristic      string
	lambda         float64
	lambdas        []float64
	sizes          []int
	heuristicNames []string
	timeout        time.Duration
	maxSize        int
	save           bool
}

func (in *benchInput) common(f *pflag.FlagSet) {
	f.IntVarP(&in.trials, "trials", "n", bench.DefaultTrials, "random boards per size")
	f.IntVarP(&in.workers, "workers", "w", 0, "concurrent trials (default GOMAXPROCS)")
	f.BoolVar(&in.save, "save", false, "store the report in the archive")
}

// apply copies the changed flags of f over cfg.
func (in *benchInput) apply(f *pflag.FlagSet, cfg bench.Config) bench.Config {
	set := func(name string, fn func()) {
		if fl := f.Lookup(name); fl != nil && fl.Changed {
			fn()
		}
	}
	set("trials", func() { cfg.Trials = in.trials })
	set("workers", func() { cfg.Workers = in.workers })
	set("size", func() { cfg.Size = in.size })
	set("ids-only", func() { cfg.IDSOnly = in.idsOnly })
	set("heuristic", func() { cfg.Heuristic = in.heuristic })
	set("lambda", func() { cfg.Lambda = in.lambda })
	set("lambdas", func() { cfg.Lambdas = in.lambdas })
	set("sizes", func() { cfg.Sizes = in.sizes })
	set("heuristics", func() { cfg.Heuristics = in.heuristicNames })
	set("timeout", func() { cfg.Timeout = in.timeout })
	set("max-size", func() { cfg.MaxSize = in.maxSize })

	return cfg
}

func (a *App) newBlindCmd() *cobra.Command {
	in := &benchInput{}
	cmd := a.experimentCmd(in, bench.CompareBlind, &cobra.Command{
		Use:   "blind",
		Short: "Compare BFS, DFS and IDS on random boards",
		Long: `Run breadth-first, depth-first and iterative deepening search on the
same random boards and report mean expansions, frontier size and path
length per algorithm.`,
	})
	f := cmd.Flags()
	f.IntVar(&in.size, "size", bench.DefaultSize, "board dimension")
	f.BoolVar(&in.idsOnly, "ids-only", false, "run only iterative deepening")

	return cmd
}

func (a *App) newLambdasCmd() *cobra.Command {
	in := &benchInput{}
	cmd := a.experimentCmd(in, bench.CompareLambdas, &cobra.Command{
		Use:   "lambdas",
		Short: "Compare A* with a heuristic scaled by several factors",
		Long: `Run A* with the chosen heuristic multiplied by every λ of --lambdas,
plus the euclidean heuristic, on the same random boards.`,
	})
	f := cmd.Flags()
	f.IntVar(&in.size, "size", bench.DefaultSize, "board dimension")
	f.StringVar(&in.heuristic, "heuristic", bench.DefaultHeuristic, fmt.Sprintf("base heuristic: one of %v", heuristics.Names()))
	f.Float64SliceVar(&in.lambdas, "lambdas", heuristics.Geomspace(1, 5, 8), "scale factors")

	return cmd
}

func (a *App) newSizesCmd() *cobra.Command {
	in := &benchInput{}
	cmd := a.experimentCmd(in, bench.CompareSizes, &cobra.Command{
		Use:   "sizes",
		Short: "Compare A* heuristics across board sizes",
	})
	f := cmd.Flags()
	f.IntSliceVar(&in.sizes, "sizes", []int{2, 3}, "board dimensions")
	f.StringSliceVar(&in.heuristicNames, "heuristics", []string{"admissible", "manhattan", "euclidean"}, "heuristics to compare")

	return cmd
}

func (a *App) newCompletionCmd() *cobra.Command {
	in := &benchInput{}
	cmd := a.experimentCmd(in, bench.CompletionRate, &cobra.Command{
		Use:   "completion",
		Short: "Measure how many A* runs finish within a timeout per board size",
		Long: `Grow the board from 2×2 and report, for every size, the share of A* runs
that finish within --timeout. The curve ends at the first size where no
run finishes.`,
	})
	f := cmd.Flags()
	f.StringVar(&in.heuristic, "heuristic", bench.DefaultHeuristic, fmt.Sprintf("heuristic: one of %v", heuristics.Names()))
	f.Float64Var(&in.lambda, "lambda", 1, "scale factor applied to the heuristic")
	f.DurationVar(&in.timeout, "timeout", bench.DefaultTimeout, "time limit of a single search")
	f.IntVar(&in.maxSize, "max-size", 0, "largest board dimension to try (default: the largest supported)")

	return cmd
}

// experimentCmd wires run into cmd together with the common experiment flags.
func (a *App) experimentCmd(in *benchInput, run experimentFunc, cmd *cobra.Command) *cobra.Command {
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg := in.apply(cmd.Flags(), a.cfg)
		report, err := run(cmd.Context(), cfg)
		if err != nil {
			return errors.Wrapf(err, "%s experiment", cmd.Name())
		}
		if in.save {
			if err := a.saveReport(report); err != nil {
				return err
			}
		}

		return a.writeReport(report)
	}
	in.common(cmd.Flags())

	return cmd
}

func (a *App) saveReport(r *bench.Report) error {
	return a.withArchive(func(archive *bench.Archive) error {
		if err := archive.Save(r); err != nil {
			return err
		}
		a.logger.WithField("run_id", r.RunID).Info("report saved")

		return nil
	})
}

func (a *App) writeReport(r *bench.Report) error {
	if a.in.output != OutputYAML {
		return r.WriteText(a.stdout)
	}
	data, err := r.YAML()
	if err != nil {
		return errors.Wrap(err, "encode report")
	}
	_, err = a.stdout.Write(data)

	return err
}
