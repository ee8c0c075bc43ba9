package sim

import (
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ProgressEvery is how many completed runs pass between progress lines.
const ProgressEvery = 100

// BatchOptions tunes RunBatch. The zero value runs serially with a random
// seed and no logging.
type BatchOptions struct {
	Seed    *uint64     // nil => RandomSeed()
	Workers int         // <= 1 => serial
	Logger  *log.Logger // progress sink; nil => silent
}

// BatchResult holds the outcomes of one batch in run index order.
type BatchResult struct {
	ID       uuid.UUID
	Seed     uint64
	Config   Config
	Outcomes []Outcome
}

// Len returns the number of completed runs.
func (b BatchResult) Len() int { return len(b.Outcomes) }

// FromConfig asks RunBatch to take the run count from Config.Runs.
const FromConfig = -1

// RunBatch calls RunOnce count times; a negative count (FromConfig) means
// cfg.Runs and zero yields an empty batch. Run i draws from
// NewRunRNG(seed, i), so a fixed seed reproduces the batch exactly for any
// worker count.
func RunBatch(cfg Config, count int, opts BatchOptions) BatchResult {
	if count < 0 {
		count = max(cfg.Runs, 0)
	}
	seed := RandomSeed()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	res := BatchResult{
		ID:       uuid.New(),
		Seed:     seed,
		Config:   cfg.Clone(),
		Outcomes: make([]Outcome, count),
	}

	logger := opts.Logger
	if logger != nil {
		logger = logger.With("batch", res.ID.String()[:8], "seed", seed)
		logger.Debug("starting batch", "runs", humanize.Comma(int64(count)), "workers", max(opts.Workers, 1))
	}

	var done atomic.Int64
	finish := func() {
		n := done.Add(1)
		if logger != nil && n%ProgressEvery == 0 {
			logger.Infof("Completed %d/%d simulations", n, count)
		}
	}

	if opts.Workers <= 1 {
		for i := 0; i < count; i++ {
			res.Outcomes[i] = RunOnce(res.Config, NewRunRNG(seed, i))
			finish()
		}
		return res
	}

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			res.Outcomes[i] = RunOnce(res.Config, NewRunRNG(seed, i))
			finish()
			return nil
		})
	}
	_ = g.Wait() // workers never fail
	return res
}
