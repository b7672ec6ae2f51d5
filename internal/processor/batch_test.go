package processor_test

import (
	"context"
	"testing"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/classifier"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/data"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/logger"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/processor"
)

func newTestProcessor(t *testing.T, concurrency int) *processor.BatchProcessor {
	t.Helper()
	c := classifier.New(
		data.Exemplars(),
		data.KeywordRules(),
		data.SubdomainRules(),
		nil,
		classifier.Config{},
		logger.NewNop(),
		nil,
	)
	return processor.NewBatchProcessor(c, concurrency, logger.NewNop(), nil)
}

func TestBatchProcessor_PreservesInputOrder(t *testing.T) {
	p := newTestProcessor(t, 4)

	queries := []string{
		"my child was kidnapped for ransom",
		"I want a divorce from my wife",
		"",
		"my landlord kept the security deposit",
		"the shop sold me a defective product",
		"my child was kidnapped for ransom",
	}

	results := p.Process(context.Background(), queries)

	if len(results) != len(queries) {
		t.Fatalf("results = %d, want %d", len(results), len(queries))
	}
	for i, r := range results {
		if r == nil {
			t.Fatalf("result %d is nil", i)
		}
		if r.Query != queries[i] {
			t.Errorf("result %d: query %q, want %q", i, r.Query, queries[i])
		}
	}

	if results[0].Domain != domain.DomainCriminalLaw {
		t.Errorf("result 0 domain = %s, want criminal_law", results[0].Domain)
	}
	if !results[2].EnumerateAll {
		t.Error("empty query in a batch must still enumerate all")
	}
	// Duplicate queries classify identically.
	if results[5].Domain != results[0].Domain || results[5].Confidence != results[0].Confidence {
		t.Error("duplicate queries diverged")
	}
}

func TestBatchProcessor_CancelledContextFillsEveryResult(t *testing.T) {
	p := newTestProcessor(t, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	queries := []string{
		"my child was kidnapped for ransom",
		"I want a divorce from my wife",
		"my landlord kept the security deposit",
	}
	results := p.Process(ctx, queries)

	if len(results) != len(queries) {
		t.Fatalf("results = %d, want %d", len(results), len(queries))
	}
	for i, r := range results {
		if r == nil {
			t.Fatalf("result %d is nil after cancellation", i)
		}
		if r.Query != queries[i] {
			t.Errorf("result %d: query %q, want %q", i, r.Query, queries[i])
		}
		if r.Domain != domain.DomainUnknown {
			t.Errorf("result %d: domain = %s, want unknown", i, r.Domain)
		}
		if r.Method != domain.MethodFallback {
			t.Errorf("result %d: method = %s, want fallback", i, r.Method)
		}
	}
}

func TestBatchProcessor_EmptyBatch(t *testing.T) {
	p := newTestProcessor(t, 4)

	results := p.Process(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestBatchProcessor_MoreWorkersThanQueries(t *testing.T) {
	p := newTestProcessor(t, 64)

	results := p.Process(context.Background(), []string{"income tax demand notice"})
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Domain != domain.DomainTaxLaw {
		t.Errorf("domain = %s, want tax_law", results[0].Domain)
	}
}
