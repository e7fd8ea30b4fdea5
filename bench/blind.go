package bench

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/statesearch/bfs"
	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/dfs"
	"github.com/katalvlaran/statesearch/ids"
	"github.com/katalvlaran/statesearch/tilegame"
)

type namedSearch struct {
	name   string
	search searchFunc
}

// blindSearches lists the uninformed algorithms in report order.
func blindSearches(idsOnly bool) []namedSearch {
	all := []namedSearch{
		{bfs.Algorithm, bfs.Search[tilegame.State]},
		{dfs.Algorithm, dfs.Search[tilegame.State]},
		{ids.Algorithm, ids.Search[tilegame.State]},
	}
	if idsOnly {
		return all[2:]
	}

	return all
}

// CompareBlind runs BFS, DFS and IDS (only IDS with Config.IDSOnly) on
// Config.Trials random boards of Config.Size and reports one Summary per
// algorithm. DFS on boards larger than 3×3 can exhaust memory.
func CompareBlind(ctx context.Context, cfg Config) (*Report, error) {
	cfg, err := cfg.prepare()
	if err != nil {
		return nil, err
	}
	e := startExperiment(ctx, ExperimentBlind, cfg)

	starts, err := drawBoards(cfg.Seed, cfg.Size, cfg.Trials)
	if err != nil {
		return e.end(nil, err)
	}
	searches := blindSearches(cfg.IDSOnly)
	stats := make([][]core.Stats, len(searches))
	for a := range stats {
		stats[a] = make([]core.Stats, cfg.Trials)
	}

	err = forEach(e.ctx, cfg.Workers, cfg.Trials, func(ctx context.Context, i int) error {
		g, err := tilegame.NewGame(cfg.Size, tilegame.WithStart(starts[i]))
		if err != nil {
			return err
		}
		for a, s := range searches {
			res, err := s.search(g, cfg.searchOptions(ctx)...)
			if err != nil {
				return trialError(s.name, cfg.Size, i, err)
			}
			stats[a][i] = res.Stats
			e.log.WithFields(logrus.Fields{
				"algorithm":       s.name,
				"trial":           i,
				"states_expanded": res.Stats.StatesExpanded,
			}).Debug("trial finished")
		}

		return nil
	})
	if err != nil {
		return e.end(nil, err)
	}

	r := newReport(ExperimentBlind, cfg)
	r.Size = cfg.Size
	for a, s := range searches {
		sum := summarize(s.name, stats[a])
		sum.Size = cfg.Size
		r.Summaries = append(r.Summaries, sum)
	}

	return e.end(r, nil)
}
