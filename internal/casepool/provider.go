// Package casepool assembles the validated, randomized case queue a shift
// runs against. Invalid records never enter the queue; a missing or empty
// case source degrades to the built-in sample cases so the orchestrator
// can always obtain a non-empty queue.
package casepool

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/blackstar-game/blackstar/internal/caserecord"
)

// ErrInvalidCount is returned by LoadQueue for non-positive counts.
var ErrInvalidCount = errors.New("casepool: count must be positive")

// Provider builds case queues from one or more sources.
type Provider struct {
	sources []Source

	// shuffle permutes the valid pool. Replaceable in tests.
	shuffle func(n int, swap func(i, j int))
}

// New creates a Provider over the given sources. Sources are consulted in
// order; their valid records form a single pool.
func New(sources ...Source) *Provider {
	return &Provider{
		sources: sources,
		shuffle: rand.Shuffle,
	}
}

// LoadQueue returns exactly count validated records. When the valid pool
// is smaller than count, records repeat by cycling the shuffled pool; when
// the pool is empty, the deterministic built-in samples are used instead.
func (p *Provider) LoadQueue(count int) ([]caserecord.CaseRecord, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	pool := p.validPool()
	if len(pool) == 0 {
		fmt.Fprintln(os.Stderr, "warning: no valid cases available; using built-in sample cases")
		pool = SampleCases()
	} else {
		p.shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}

	queue := make([]caserecord.CaseRecord, count)
	for i := range queue {
		queue[i] = pool[i%len(pool)]
	}
	return queue, nil
}

// validPool gathers every record from every source and keeps only those
// that pass validation. Source failures and invalid records are logged
// and dropped, never propagated.
func (p *Provider) validPool() []caserecord.CaseRecord {
	var pool []caserecord.CaseRecord
	seen := make(map[string]bool)

	for _, src := range p.sources {
		records, err := src.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: case source %s unavailable: %v\n", src.Name(), err)
			continue
		}

		for _, rec := range records {
			res := caserecord.Validate(&rec)
			if !res.OK {
				fmt.Fprintf(os.Stderr, "warning: dropping case %q from %s: %s\n",
					rec.ID, src.Name(), strings.Join(res.Errors, "; "))
				continue
			}
			if rec.ID != "" && seen[rec.ID] {
				continue
			}
			seen[rec.ID] = true
			pool = append(pool, rec)
		}
	}
	return pool
}
