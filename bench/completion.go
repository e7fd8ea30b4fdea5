package bench

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/statesearch/astar"
	"github.com/katalvlaran/statesearch/heuristics"
	"github.com/katalvlaran/statesearch/tilegame"
)

// CompletionRate measures, for board sizes 2, 3, ... up to Config.MaxSize,
// the fraction of Config.Trials A* runs that finish within Config.Timeout.
// The heuristic is Config.Heuristic scaled by Config.Lambda. The curve ends
// after the first size at which no run finishes.
func CompletionRate(ctx context.Context, cfg Config) (*Report, error) {
	cfg, err := cfg.prepare()
	if err != nil {
		return nil, err
	}
	e := startExperiment(ctx, ExperimentCompletion, cfg)

	base, err := heuristics.ByName(cfg.Heuristic)
	if err != nil {
		return e.end(nil, err)
	}
	h := heuristics.Scaled(base, cfg.Lambda)

	r := newReport(ExperimentCompletion, cfg)
	r.Heuristic = cfg.Heuristic
	r.Lambda = cfg.Lambda
	r.Timeout = cfg.Timeout
	for size := 2; size <= cfg.MaxSize; size++ {
		starts, err := drawBoards(deriveSeed(cfg.Seed, uint64(size)), size, cfg.Trials)
		if err != nil {
			return e.end(nil, err)
		}

		var completed atomic.Int64
		err = forEach(e.ctx, cfg.Workers, cfg.Trials, func(ctx context.Context, i int) error {
			g, err := tilegame.NewGame(size, tilegame.WithStart(starts[i]))
			if err != nil {
				return err
			}
			tctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()

			_, err = astar.Search[tilegame.State](g.WithHeuristic(h), cfg.searchOptions(tctx)...)
			switch {
			case err == nil:
				completed.Add(1)
			case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
				// timed out: counted as not completed
			default:
				return trialError(astar.Algorithm, size, i, err)
			}

			return nil
		})
		if err != nil {
			return e.end(nil, err)
		}

		point := SizeRate{
			Size:      size,
			Trials:    cfg.Trials,
			Completed: int(completed.Load()),
			Rate:      float64(completed.Load()) / float64(cfg.Trials),
		}
		r.Completion = append(r.Completion, point)
		e.log.WithFields(logrus.Fields{"size": size, "completed": point.Completed, "rate": point.Rate}).Info("size finished")
		if point.Completed == 0 {
			break
		}
	}

	return e.end(r, nil)
}
