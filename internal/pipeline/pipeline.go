// Package pipeline orchestrates the classification stage: it fans merged
// rows out to a bounded pool of workers, restores the merger's row order
// in the output, and downgrades row-local failures to the Unclassified
// sentinel instead of aborting the run.
package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"sectorenricher/internal/aggregator"
	"sectorenricher/internal/cache"
	"sectorenricher/internal/classifier"
	"sectorenricher/internal/ratelimit"
	"sectorenricher/internal/records"
	"sectorenricher/internal/sector"
)

const defaultWorkers = 4

// Pipeline classifies merged rows into sectors.
type Pipeline struct {
	classifier classifier.Classifier
	limiter    *ratelimit.Limiter
	store      *cache.Store
	log        zerolog.Logger
	workers    int
}

// Result is the outcome of a classification run. Rows is always complete
// for the merged set and in merger order; rows that could not be
// classified carry the Unclassified sentinel and are counted in Warnings.
type Result struct {
	Rows     []records.EnrichedRecord
	Warnings int
}

// job pairs a merged row with its position so completion order cannot
// reorder the output.
type job struct {
	index int
	row   records.MergedRecord
}

type rowResult struct {
	index  int
	sector sector.Sector
	cached bool
	err    error
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCache enables the persistent sector cache.
func WithCache(store *cache.Store) Option {
	return func(p *Pipeline) { p.store = store }
}

// WithWorkers sets the number of concurrent classification workers.
// 1 gives strictly sequential classification.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// New creates a Pipeline. The limiter is shared by all workers so the
// run as a whole respects the completion service's request quota.
func New(cls classifier.Classifier, limiter *ratelimit.Limiter, log zerolog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		classifier: cls,
		limiter:    limiter,
		log:        log,
		workers:    defaultWorkers,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run classifies every merged row. Cancelling ctx stops new calls from
// being issued; rows already classified keep their sectors and rows never
// attempted are emitted as Unclassified, so the caller can still flush a
// complete output.
func (p *Pipeline) Run(ctx context.Context, merged []records.MergedRecord) Result {
	enriched := make([]records.EnrichedRecord, len(merged))
	for i, m := range merged {
		enriched[i] = records.EnrichedRecord{
			Ticker:    m.Ticker,
			Name:      m.Name,
			YTDChange: m.YTDChange,
			Sector:    sector.Unclassified,
		}
	}

	// The feeder goroutine reads cached while the results loop below
	// collects new assignments, so the loop writes into its own map and
	// the two are merged only after every worker has finished.
	cached := p.loadCache()
	learned := make(map[string]sector.Sector)

	jobs := make(chan job)
	results := make(chan rowResult, len(merged))

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- p.classifyRow(ctx, j)
			}
		}()
	}

	// Feed jobs, serving cache hits directly. Cancellation stops the
	// feed; the results channel is buffered so hits never block.
	go func() {
		defer close(jobs)
		for i, m := range merged {
			if s, ok := cached[cache.Key(m.Name, m.Ticker)]; ok {
				results <- rowResult{index: i, sector: s, cached: true}
				continue
			}

			select {
			case jobs <- job{index: i, row: m}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		row := merged[res.index]

		if res.err != nil {
			var unrecognized *classifier.UnrecognizedSectorError
			if errors.As(res.err, &unrecognized) {
				p.log.Warn().
					Str("ticker", row.Ticker).
					Str("label", unrecognized.Label).
					Msg("unknown sector label, marking row unclassified")
			} else {
				p.log.Warn().
					Str("ticker", row.Ticker).
					Err(res.err).
					Msg("classification failed, marking row unclassified")
			}
			continue
		}

		enriched[res.index].Sector = res.sector
		if !res.cached {
			learned[cache.Key(row.Name, row.Ticker)] = res.sector
		}

		p.log.Debug().
			Str("ticker", row.Ticker).
			Str("sector", res.sector.String()).
			Bool("cached", res.cached).
			Msg("classified")
	}

	// The feeder is done once the workers are, so cached is safe to
	// mutate again.
	for key, s := range learned {
		cached[key] = s
	}
	p.saveCache(cached)

	warnings := aggregator.CountUnclassified(enriched)

	p.log.Info().
		Int("companies", len(enriched)).
		Int("unclassified", warnings).
		Msg("classification complete")

	return Result{Rows: enriched, Warnings: warnings}
}

// classifyRow waits for the shared rate limiter, then classifies one row.
// Retry and backoff for transient service failures live inside the
// classifier; each row's retries are independent of every other row's.
func (p *Pipeline) classifyRow(ctx context.Context, j job) rowResult {
	if err := p.limiter.Wait(ctx, ratelimit.APIOpenAI); err != nil {
		return rowResult{index: j.index, err: err}
	}

	s, err := p.classifier.Classify(ctx, j.row)
	if err != nil {
		return rowResult{index: j.index, err: err}
	}
	return rowResult{index: j.index, sector: s}
}

func (p *Pipeline) loadCache() map[string]sector.Sector {
	if p.store == nil {
		return map[string]sector.Sector{}
	}

	entries, err := p.store.Load()
	if err != nil {
		p.log.Warn().Err(err).Msg("sector cache unreadable, starting fresh")
		return map[string]sector.Sector{}
	}
	return entries
}

func (p *Pipeline) saveCache(entries map[string]sector.Sector) {
	if p.store == nil {
		return
	}
	if err := p.store.Save(entries); err != nil {
		p.log.Warn().Err(err).Msg("failed to persist sector cache")
	}
}
