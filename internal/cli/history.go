package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statesearch/bench"
)

func (a *App) newHistoryCmd() *cobra.Command {
	var experiment string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List reports saved with --save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withArchive(func(archive *bench.Archive) error {
				reports, err := archive.List(experiment)
				if err != nil {
					return errors.Wrap(err, "list reports")
				}
				if a.in.output == OutputYAML {
					return writeYAML(a.stdout, reports)
				}
				tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "RUN ID\tEXPERIMENT\tCREATED\tSEED\tTRIALS")
				for _, r := range reports {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n",
						r.RunID, r.Experiment, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Seed, r.Trials)
				}

				return tw.Flush()
			})
		},
	}
	cmd.Flags().StringVarP(&experiment, "experiment", "e", "",
		fmt.Sprintf("only list one experiment: %s, %s, %s or %s",
			bench.ExperimentBlind, bench.ExperimentLambdas, bench.ExperimentSizes, bench.ExperimentCompletion))

	cmd.AddCommand(&cobra.Command{
		Use:   "show <run-id>",
		Short: "Print a saved report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withArchive(func(archive *bench.Archive) error {
				r, err := archive.Get(args[0])
				if err != nil {
					return err
				}

				return a.writeReport(r)
			})
		},
	}, &cobra.Command{
		Use:   "rm <run-id>...",
		Short: "Delete saved reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withArchive(func(archive *bench.Archive) error {
				for _, id := range args {
					if err := archive.Delete(id); err != nil {
						return err
					}
					a.logger.WithField("run_id", id).Info("report deleted")
				}

				return nil
			})
		},
	})

	return cmd
}

// withArchive opens the archive for the duration of fn.
func (a *App) withArchive(fn func(*bench.Archive) error) error {
	path, err := a.archivePath()
	if err != nil {
		return err
	}
	archive, err := bench.OpenArchive(path)
	if err != nil {
		return err
	}
	defer archive.Close()

	return fn(archive)
}
