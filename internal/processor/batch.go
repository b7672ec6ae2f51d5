// Package processor runs batch classification over a bounded worker pool.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/classifier"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/logger"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/telemetry"
)

const defaultConcurrency = 8

// BatchProcessor classifies multiple queries in parallel using a worker
// pool. Classification calls are independent; no ordering is required
// between them, but results are returned in input order.
type BatchProcessor struct {
	classifier  *classifier.Classifier
	concurrency int
	log         logger.Logger
	telemetry   *telemetry.Provider
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(c *classifier.Classifier, concurrency int, log logger.Logger, tp *telemetry.Provider) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &BatchProcessor{
		classifier:  c,
		concurrency: concurrency,
		log:         log,
		telemetry:   tp,
	}
}

type job struct {
	index int
	query string
}

// Process classifies every query, preserving input order in the results.
func (b *BatchProcessor) Process(ctx context.Context, queries []string) []*domain.ClassificationResult {
	if len(queries) == 0 {
		return []*domain.ClassificationResult{}
	}

	start := time.Now()
	b.telemetry.RecordBatch(len(queries))

	jobs := make(chan job, len(queries))
	results := make([]*domain.ClassificationResult, len(queries))

	var wg sync.WaitGroup
	workers := b.concurrency
	if workers > len(queries) {
		workers = len(queries)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go b.worker(ctx, jobs, results, &wg)
	}

	for i, q := range queries {
		jobs <- job{index: i, query: q}
	}
	close(jobs)
	wg.Wait()

	b.log.Info("batch classification complete",
		logger.Int("batch_size", len(queries)),
		logger.Int("concurrency", workers),
		logger.Int64("duration_ms", time.Since(start).Milliseconds()))

	return results
}

func (b *BatchProcessor) worker(
	ctx context.Context,
	jobs <-chan job,
	results []*domain.ClassificationResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for j := range jobs {
		select {
		case <-ctx.Done():
			// Every slot must be filled even when the caller gives up:
			// drain the remaining jobs with the unknown fallback.
			results[j.index] = b.cancelledResult(j.query)
		default:
			results[j.index] = b.classifier.Classify(ctx, j.query)
		}
	}
}

// cancelledResult stands in for queries left unclassified when the batch
// context is cancelled mid-flight.
func (b *BatchProcessor) cancelledResult(query string) *domain.ClassificationResult {
	return &domain.ClassificationResult{
		Query:             query,
		Domain:            domain.DomainUnknown,
		Subdomain:         domain.SubdomainUnclassified,
		Alternatives:      []domain.DomainScore{},
		Method:            domain.MethodFallback,
		ClassifierVersion: b.classifier.Version(),
		ClassifiedAt:      time.Now(),
	}
}
