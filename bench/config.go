package bench

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/heuristics"
	"github.com/katalvlaran/statesearch/tilegame"
)

// ErrInvalidConfig is returned when a Config field is out of range.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Default experiment parameters.
const (
	DefaultTrials    = 10
	DefaultSize      = 2
	DefaultHeuristic = "admissible"
	DefaultTimeout   = 10 * time.Second
)

// Config parameterises every experiment. Each experiment reads only the
// fields it needs; zero values are replaced by defaults in WithDefaults.
type Config struct {
	// Seed of the board generator; 0 selects the default seed.
	Seed int64 `yaml:"seed"`
	// Trials is the number of boards per size.
	Trials int `yaml:"trials"`
	// Workers bounds the number of concurrent trials; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Size is the board dimension for CompareBlind and CompareLambdas.
	Size int `yaml:"size"`

	// IDSOnly restricts CompareBlind to iterative deepening.
	IDSOnly bool `yaml:"ids_only"`

	// Lambdas are the scale factors of CompareLambdas.
	Lambdas []float64 `yaml:"lambdas"`
	// Heuristic names the base heuristic scaled by CompareLambdas and used
	// by CompletionRate.
	Heuristic string `yaml:"heuristic"`
	// Lambda scales Heuristic in CompletionRate.
	Lambda float64 `yaml:"lambda"`

	// Sizes and Heuristics span the grid of CompareSizes.
	Sizes      []int    `yaml:"sizes"`
	Heuristics []string `yaml:"heuristics"`

	// Timeout bounds every single search of CompletionRate.
	Timeout time.Duration `yaml:"timeout"`
	// MaxSize is the largest board CompletionRate tries; 0 means up to
	// tilegame.MaxDim.
	MaxSize int `yaml:"max_size"`

	// ProgressInterval is passed to every search, see core.WithProgressInterval.
	ProgressInterval int `yaml:"progress_interval"`

	Logger logrus.FieldLogger `yaml:"-"`
	Tracer trace.Tracer       `yaml:"-"`
	Meter  metric.Meter       `yaml:"-"`
}

// LoadConfig reads a YAML config file. Unknown keys are rejected; an empty
// file yields the zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// WithDefaults returns a copy of c with every zero field set to its default.
func (c Config) WithDefaults() Config {
	if c.Seed == 0 {
		c.Seed = defaultSeed
	}
	if c.Trials == 0 {
		c.Trials = DefaultTrials
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if len(c.Lambdas) == 0 {
		c.Lambdas = heuristics.Geomspace(1, 5, 8)
	}
	if c.Heuristic == "" {
		c.Heuristic = DefaultHeuristic
	}
	if c.Lambda == 0 {
		c.Lambda = 1
	}
	if len(c.Sizes) == 0 {
		c.Sizes = []int{2, 3}
	}
	if len(c.Heuristics) == 0 {
		c.Heuristics = []string{"admissible", "manhattan", "euclidean"}
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxSize == 0 {
		c.MaxSize = tilegame.MaxDim
	}
	if c.Logger == nil {
		c.Logger = logrus.StandardLogger()
	}
	if c.Tracer == nil {
		c.Tracer = otel.Tracer(core.TracerName)
	}
	if c.Meter == nil {
		c.Meter = otel.Meter(core.TracerName)
	}

	return c
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Trials < 1:
		return fmt.Errorf("%w: trials must be positive (%d)", ErrInvalidConfig, c.Trials)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be positive (%d)", ErrInvalidConfig, c.Workers)
	case c.Size < 1 || c.Size > tilegame.MaxDim:
		return fmt.Errorf("%w: size %d (want 1..%d)", ErrInvalidConfig, c.Size, tilegame.MaxDim)
	case c.Lambda < 0:
		return fmt.Errorf("%w: lambda cannot be negative (%v)", ErrInvalidConfig, c.Lambda)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout cannot be negative (%v)", ErrInvalidConfig, c.Timeout)
	case c.MaxSize < 2 || c.MaxSize > tilegame.MaxDim:
		return fmt.Errorf("%w: max size %d (want 2..%d)", ErrInvalidConfig, c.MaxSize, tilegame.MaxDim)
	case c.ProgressInterval < 0:
		return fmt.Errorf("%w: progress interval cannot be negative (%d)", ErrInvalidConfig, c.ProgressInterval)
	}
	for _, l := range c.Lambdas {
		if l <= 0 {
			return fmt.Errorf("%w: lambdas must be positive (%v)", ErrInvalidConfig, l)
		}
	}
	for _, s := range c.Sizes {
		if s < 1 || s > tilegame.MaxDim {
			return fmt.Errorf("%w: size %d (want 1..%d)", ErrInvalidConfig, s, tilegame.MaxDim)
		}
	}
	if _, err := heuristics.ByName(c.Heuristic); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, name := range c.Heuristics {
		if _, err := heuristics.ByName(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

// prepare applies defaults and validates.
func (c Config) prepare() (Config, error) {
	c = c.WithDefaults()

	return c, c.Validate()
}

// searchOptions are the core options every search of an experiment runs with.
func (c Config) searchOptions(ctx context.Context) []core.Option {
	return []core.Option{
		core.WithContext(ctx),
		core.WithLogger(c.Logger),
		core.WithTracer(c.Tracer),
		core.WithMeter(c.Meter),
		core.WithProgressInterval(c.ProgressInterval),
	}
}
