package prop

import (
	"context"
	"math/rand"
	"sync"

	"github.com/san-kum/uhecr/internal/nucleus"
)

// Ensemble propagates many statistically independent candidates of the
// same injection in parallel. Each run gets its own engine fork with a
// dedicated random source, so workers never share mutable state.
type Ensemble struct {
	base      *Propagator
	numRuns   int
	seedStart int64
}

func NewEnsemble(p *Propagator, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{base: p, numRuns: numRuns, seedStart: seedStart}
}

// Injection describes the candidates an ensemble propagates.
type Injection struct {
	Nuclide  nucleus.Nuclide
	Energy   float64
	Redshift float64
}

func (e *Ensemble) Run(ctx context.Context, inj Injection, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			src := rand.New(rand.NewSource(e.seedStart + int64(idx)))
			worker := New(e.base.engine.Fork(src))
			// Observers are shared across workers and must tolerate
			// concurrent events; per-run metrics are not carried over.
			for _, o := range e.base.observers {
				worker.AddObserver(o)
			}

			c := nucleus.NewCandidate(inj.Nuclide, inj.Energy, inj.Redshift)
			results[idx], errs[idx] = worker.Run(ctx, c, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
