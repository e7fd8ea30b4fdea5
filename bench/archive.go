package bench

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
)

// ErrReportNotFound is returned by Archive.Get for an unknown run id.
var ErrReportNotFound = errors.New("bench: report not found")

// Archive keeps finished reports in a bolt database file, keyed by run id.
type Archive struct {
	store *bolthold.Store
}

// OpenArchive opens (creating if needed) the archive at path. Another
// process holding the file blocks the open for at most five seconds.
func OpenArchive(path string) (*Archive, error) {
	store, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      5 * time.Second,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("bench: open archive %s: %w", path, err)
	}

	return &Archive{store: store}, nil
}

// Close releases the database file.
func (a *Archive) Close() error {
	if a == nil || a.store == nil {
		return nil
	}

	return a.store.Close()
}

// Save stores r, replacing any report with the same run id.
func (a *Archive) Save(r *Report) error {
	if err := a.store.Upsert(r.RunID, r); err != nil {
		return fmt.Errorf("bench: save report %s: %w", r.RunID, err)
	}

	return nil
}

// Get loads the report with the given run id.
func (a *Archive) Get(runID string) (*Report, error) {
	r := &Report{}
	if err := a.store.Get(runID, r); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, runID)
		}

		return nil, err
	}

	return r, nil
}

// List returns the stored reports, oldest first. A non-empty experiment
// keeps only reports of that experiment.
func (a *Archive) List(experiment string) ([]Report, error) {
	var q *bolthold.Query
	if experiment != "" {
		q = bolthold.Where("Experiment").Eq(experiment)
	}
	var out []Report
	if err := a.store.Find(&out, q); err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out, nil
}

// Delete removes the report with the given run id.
func (a *Archive) Delete(runID string) error {
	if err := a.store.Delete(runID, &Report{}); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrReportNotFound, runID)
		}

		return err
	}

	return nil
}
