package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statesearch/core"
)

// Experiment names as stored in Report.Experiment.
const (
	ExperimentBlind      = "blind"
	ExperimentLambdas    = "lambdas"
	ExperimentSizes      = "sizes"
	ExperimentCompletion = "completion"
)

// Summary aggregates the runs of one algorithm or heuristic.
// Means are taken over all runs, solved or not.
type Summary struct {
	Name                string  `yaml:"name"`
	Lambda              float64 `yaml:"lambda,omitempty"`
	Size                int     `yaml:"size,omitempty"`
	Runs                int     `yaml:"runs"`
	Solved              int     `yaml:"solved"`
	MeanStatesExpanded  float64 `yaml:"mean_states_expanded"`
	MeanMaxFrontierSize float64 `yaml:"mean_max_frontier_size"`
	MeanPathLength      float64 `yaml:"mean_path_length"`
}

// SizeRate is one point of a completion-rate curve.
type SizeRate struct {
	Size      int     `yaml:"size"`
	Trials    int     `yaml:"trials"`
	Completed int     `yaml:"completed"`
	Rate      float64 `yaml:"rate"`
}

// Report is the outcome of one experiment run.
type Report struct {
	RunID      string        `yaml:"run_id"`
	Experiment string        `yaml:"experiment"`
	CreatedAt  time.Time     `yaml:"created_at"`
	Seed       int64         `yaml:"seed"`
	Trials     int           `yaml:"trials"`
	Size       int           `yaml:"size,omitempty"`
	Heuristic  string        `yaml:"heuristic,omitempty"`
	Lambda     float64       `yaml:"lambda,omitempty"`
	Timeout    time.Duration `yaml:"timeout,omitempty"`
	Summaries  []Summary     `yaml:"summaries,omitempty"`
	Completion []SizeRate    `yaml:"completion,omitempty"`
}

func newReport(experiment string, cfg Config) *Report {
	return &Report{
		RunID:      uuid.NewString(),
		Experiment: experiment,
		CreatedAt:  time.Now().UTC(),
		Seed:       cfg.Seed,
		Trials:     cfg.Trials,
	}
}

// summarize averages stats under name.
func summarize(name string, stats []core.Stats) Summary {
	s := Summary{Name: name, Runs: len(stats)}
	if len(stats) == 0 {
		return s
	}
	var expanded, frontier, length int
	for _, st := range stats {
		expanded += st.StatesExpanded
		frontier += st.MaxFrontierSize
		length += st.PathLength
		if st.PathLength > 0 {
			s.Solved++
		}
	}
	n := float64(len(stats))
	s.MeanStatesExpanded = float64(expanded) / n
	s.MeanMaxFrontierSize = float64(frontier) / n
	s.MeanPathLength = float64(length) / n

	return s
}

// YAML encodes the report.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteText renders the report as an aligned table.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s run %s (seed %d, %d trials)\n", r.Experiment, r.RunID, r.Seed, r.Trials); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(r.Summaries) > 0 {
		fmt.Fprintln(tw, "NAME\tSIZE\tSOLVED\tMEAN EXPANDED\tMEAN MAX FRONTIER\tMEAN PATH LENGTH")
		for _, s := range r.Summaries {
			fmt.Fprintf(tw, "%s\t%d\t%d/%d\t%.2f\t%.2f\t%.2f\n",
				s.Name, s.Size, s.Solved, s.Runs, s.MeanStatesExpanded, s.MeanMaxFrontierSize, s.MeanPathLength)
		}
	}
	if len(r.Completion) > 0 {
		fmt.Fprintf(tw, "heuristic %s, lambda %.2f, timeout %v\n", r.Heuristic, r.Lambda, r.Timeout)
		fmt.Fprintln(tw, "SIZE\tCOMPLETED\tRATE")
		for _, c := range r.Completion {
			fmt.Fprintf(tw, "%d\t%d/%d\t%.2f\n", c.Size, c.Completed, c.Trials, c.Rate)
		}
	}

	return tw.Flush()
}
