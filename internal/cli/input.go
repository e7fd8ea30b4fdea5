package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Input holds the persistent flags of the root command.
type Input struct {
	verbose    bool
	configPath string
	archive    string
	output     string
	seed       int64
	progress   int
	trace      bool
	metrics    bool
}

func (i *Input) register(root *cobra.Command) {
	f := root.PersistentFlags()
	f.BoolVarP(&i.verbose, "verbose", "v", false, "log search progress and per-trial results")
	f.StringVarP(&i.configPath, "config", "c", "", "YAML file with benchmark defaults (default: tilesearch/config.yaml in the XDG config dirs)")
	f.StringVar(&i.archive, "archive", "", "report archive file (default: tilesearch/reports.db in the XDG data dir)")
	f.StringVarP(&i.output, "output", "o", OutputText, "output format: text or yaml")
	f.Int64Var(&i.seed, "seed", 0, "seed for random boards (0: config file or built-in default)")
	f.IntVar(&i.progress, "progress", 0, "log progress every N expansions (with --verbose)")
	f.BoolVar(&i.trace, "trace", false, "print OpenTelemetry spans to stderr")
	f.BoolVar(&i.metrics, "metrics", false, "print search metrics to stderr on exit")
}

func (i *Input) validate() error {
	switch i.output {
	case OutputText, OutputYAML:
	default:
		return errors.Errorf("unknown output format %q (want %s or %s)", i.output, OutputText, OutputYAML)
	}
	if i.progress < 0 {
		return errors.Errorf("--progress cannot be negative (%d)", i.progress)
	}

	return nil
}
