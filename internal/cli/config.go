package cli

import (
	"github.com/adrg/xdg"
	"github.com/pkg/errors"

	"github.com/katalvlaran/statesearch/bench"
)

const (
	configRelPath  = "tilesearch/config.yaml"
	archiveRelPath = "tilesearch/reports.db"
)

// loadConfig reads --config, or the config file found in the XDG config
// directories when the flag is unset. No file at all yields the zero Config.
func (a *App) loadConfig() (bench.Config, error) {
	path := a.in.configPath
	if path == "" {
		found, err := xdg.SearchConfigFile(configRelPath)
		if err != nil {
			return a.withRuntime(bench.Config{}), nil
		}
		path = found
	}
	cfg, err := bench.LoadConfig(path)
	if err != nil {
		return cfg, errors.Wrap(err, "load config")
	}
	a.logger.WithField("path", path).Debug("config loaded")

	return a.withRuntime(cfg), nil
}

// withRuntime injects the CLI's logger and telemetry plus the --seed and
// --progress overrides.
func (a *App) withRuntime(cfg bench.Config) bench.Config {
	if a.in.seed != 0 {
		cfg.Seed = a.in.seed
	}
	if a.in.progress != 0 {
		cfg.ProgressInterval = a.in.progress
	}
	cfg.Logger = a.logger
	cfg.Tracer = a.tracer
	cfg.Meter = a.meter

	return cfg
}

// archivePath resolves --archive, creating the XDG data directory for the
// default location.
func (a *App) archivePath() (string, error) {
	if a.in.archive != "" {
		return a.in.archive, nil
	}
	path, err := xdg.DataFile(archiveRelPath)

	return path, errors.Wrap(err, "locate archive")
}
