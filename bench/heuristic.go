package bench

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/statesearch/astar"
	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/heuristics"
	"github.com/katalvlaran/statesearch/tilegame"
)

// informed is one heuristic entry of an A* comparison.
type informed struct {
	name   string
	lambda float64
	h      core.Heuristic[tilegame.State]
}

// runInformed runs A* with every entry of hs on each board and returns the
// statistics indexed [entry][board].
func runInformed(e *experiment, size int, starts []tilegame.State, hs []informed) ([][]core.Stats, error) {
	cfg := e.cfg
	search := heuristicSearchFunc(astar.Search[tilegame.State])
	stats := make([][]core.Stats, len(hs))
	for k := range stats {
		stats[k] = make([]core.Stats, len(starts))
	}

	err := forEach(e.ctx, cfg.Workers, len(starts), func(ctx context.Context, i int) error {
		g, err := tilegame.NewGame(size, tilegame.WithStart(starts[i]))
		if err != nil {
			return err
		}
		for k, h := range hs {
			res, err := search(g.WithHeuristic(h.h), cfg.searchOptions(ctx)...)
			if err != nil {
				return trialError(h.name, size, i, err)
			}
			stats[k][i] = res.Stats
			e.log.WithFields(logrus.Fields{
				"heuristic":       h.name,
				"size":            size,
				"trial":           i,
				"states_expanded": res.Stats.StatesExpanded,
			}).Debug("trial finished")
		}

		return nil
	})

	return stats, err
}

// CompareLambdas runs A* on Config.Trials random boards of Config.Size with
// the heuristic Config.Heuristic scaled by every λ in Config.Lambdas, plus
// the unscaled euclidean heuristic. Larger λ trades longer paths for fewer
// expansions.
func CompareLambdas(ctx context.Context, cfg Config) (*Report, error) {
	cfg, err := cfg.prepare()
	if err != nil {
		return nil, err
	}
	e := startExperiment(ctx, ExperimentLambdas, cfg)

	base, err := heuristics.ByName(cfg.Heuristic)
	if err != nil {
		return e.end(nil, err)
	}
	hs := make([]informed, 0, len(cfg.Lambdas)+1)
	for _, l := range cfg.Lambdas {
		hs = append(hs, informed{
			name:   fmt.Sprintf("lambda=%.2f", l),
			lambda: l,
			h:      heuristics.Scaled(base, l),
		})
	}
	hs = append(hs, informed{name: "euclidean", h: heuristics.Euclidean})

	starts, err := drawBoards(cfg.Seed, cfg.Size, cfg.Trials)
	if err != nil {
		return e.end(nil, err)
	}
	stats, err := runInformed(e, cfg.Size, starts, hs)
	if err != nil {
		return e.end(nil, err)
	}

	r := newReport(ExperimentLambdas, cfg)
	r.Size = cfg.Size
	r.Heuristic = cfg.Heuristic
	for k, h := range hs {
		sum := summarize(h.name, stats[k])
		sum.Lambda = h.lambda
		sum.Size = cfg.Size
		r.Summaries = append(r.Summaries, sum)
	}

	return e.end(r, nil)
}

// CompareSizes runs A* with every heuristic named in Config.Heuristics on
// Config.Trials random boards for each size in Config.Sizes.
func CompareSizes(ctx context.Context, cfg Config) (*Report, error) {
	cfg, err := cfg.prepare()
	if err != nil {
		return nil, err
	}
	e := startExperiment(ctx, ExperimentSizes, cfg)

	hs := make([]informed, 0, len(cfg.Heuristics))
	for _, name := range cfg.Heuristics {
		h, err := heuristics.ByName(name)
		if err != nil {
			return e.end(nil, err)
		}
		hs = append(hs, informed{name: name, h: h})
	}

	r := newReport(ExperimentSizes, cfg)
	for _, size := range cfg.Sizes {
		e.log.WithField("size", size).Info("running size")
		starts, err := drawBoards(deriveSeed(cfg.Seed, uint64(size)), size, cfg.Trials)
		if err != nil {
			return e.end(nil, err)
		}
		stats, err := runInformed(e, size, starts, hs)
		if err != nil {
			return e.end(nil, err)
		}
		for k, h := range hs {
			sum := summarize(h.name, stats[k])
			sum.Size = size
			r.Summaries = append(r.Summaries, sum)
		}
	}

	return e.end(r, nil)
}
