package classifier_test

import (
	"context"
	"testing"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/classifier"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/data"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/logger"
)

func newTestClassifier(t *testing.T, adjustments classifier.AdjustmentReader) *classifier.Classifier {
	t.Helper()
	return classifier.New(
		data.Exemplars(),
		data.KeywordRules(),
		data.SubdomainRules(),
		adjustments,
		classifier.Config{},
		logger.NewNop(),
		nil,
	)
}

func TestClassify_ForcedKeywordOverride(t *testing.T) {
	c := newTestClassifier(t, nil)

	result := c.Classify(context.Background(), "My child was kidnapped and the kidnapper is demanding ransom")

	if result.Domain != domain.DomainCriminalLaw {
		t.Errorf("domain = %s, want %s", result.Domain, domain.DomainCriminalLaw)
	}
	if result.Subdomain != "kidnapping" {
		t.Errorf("subdomain = %s, want kidnapping", result.Subdomain)
	}
	if result.Method != domain.MethodKeywordOverride {
		t.Errorf("method = %s, want %s", result.Method, domain.MethodKeywordOverride)
	}
	// Overrides must always clear the confidence threshold.
	if result.Confidence < c.MinConfidence() {
		t.Errorf("override confidence %f below threshold %f", result.Confidence, c.MinConfidence())
	}
	if len(result.MatchedKeywords) == 0 {
		t.Error("expected matched keywords on an override")
	}
}

func TestClassify_EmptyQueryEnumeratesAll(t *testing.T) {
	c := newTestClassifier(t, nil)

	for _, query := range []string{"", "   ", "\t\n"} {
		result := c.Classify(context.Background(), query)

		if !result.EnumerateAll {
			t.Errorf("query %q: expected enumerate_all", query)
		}
		if result.Domain != domain.DomainUnknown {
			t.Errorf("query %q: domain = %s, want unknown", query, result.Domain)
		}
		if result.Confidence != 0 {
			t.Errorf("query %q: confidence = %f, want 0", query, result.Confidence)
		}
		if len(result.Alternatives) != len(domain.Domains()) {
			t.Errorf("query %q: expected all %d domains as alternatives, got %d",
				query, len(domain.Domains()), len(result.Alternatives))
		}
	}
}

func TestClassify_BelowThresholdFallsBackToUnknown(t *testing.T) {
	c := newTestClassifier(t, nil)

	result := c.Classify(context.Background(), "zxqv flurble grommit wibble")

	if result.Domain != domain.DomainUnknown {
		t.Errorf("domain = %s, want unknown", result.Domain)
	}
	if result.Subdomain != domain.SubdomainUnclassified {
		t.Errorf("subdomain = %s, want unclassified", result.Subdomain)
	}
	if result.Method != domain.MethodFallback {
		t.Errorf("method = %s, want fallback", result.Method)
	}
	if result.EnumerateAll {
		t.Error("non-empty query must not enumerate all")
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := newTestClassifier(t, nil)
	query := "my landlord refuses to return my security deposit after I vacated"

	first := c.Classify(context.Background(), query)
	for i := 0; i < 5; i++ {
		again := c.Classify(context.Background(), query)
		if again.Domain != first.Domain || again.Subdomain != first.Subdomain ||
			again.Confidence != first.Confidence {
			t.Fatalf("run %d: got (%s, %s, %f), want (%s, %s, %f)",
				i, again.Domain, again.Subdomain, again.Confidence,
				first.Domain, first.Subdomain, first.Confidence)
		}
	}

	if first.Domain != domain.DomainTenantRights {
		t.Errorf("domain = %s, want %s", first.Domain, domain.DomainTenantRights)
	}
	if first.Subdomain != "deposit_dispute" {
		t.Errorf("subdomain = %s, want deposit_dispute", first.Subdomain)
	}
}

func TestClassify_WorkplaceHarassment(t *testing.T) {
	c := newTestClassifier(t, nil)

	result := c.Classify(context.Background(), "I was sexually harassed at my workplace by a senior colleague")

	if result.Domain != domain.DomainEmploymentLaw {
		t.Errorf("domain = %s, want %s", result.Domain, domain.DomainEmploymentLaw)
	}
	if result.Subdomain != "workplace_harassment" {
		t.Errorf("subdomain = %s, want workplace_harassment", result.Subdomain)
	}
}

func TestClassify_AlternativesCoverAllDomains(t *testing.T) {
	c := newTestClassifier(t, nil)

	result := c.Classify(context.Background(), "I want a divorce from my husband")

	if len(result.Alternatives) != len(domain.Domains()) {
		t.Fatalf("expected %d alternatives, got %d", len(domain.Domains()), len(result.Alternatives))
	}
	for i := 1; i < len(result.Alternatives); i++ {
		if result.Alternatives[i].Score > result.Alternatives[i-1].Score {
			t.Errorf("alternatives not sorted at %d: %f > %f",
				i, result.Alternatives[i].Score, result.Alternatives[i-1].Score)
		}
	}
	if result.Domain != domain.DomainFamilyLaw {
		t.Errorf("domain = %s, want %s", result.Domain, domain.DomainFamilyLaw)
	}
}

type fixedAdjustments struct {
	delta float64
}

func (f fixedAdjustments) Get(string, string) float64 { return f.delta }

func TestClassify_AdjustmentClampsConfidence(t *testing.T) {
	query := "I want a divorce from my husband"

	boosted := newTestClassifier(t, fixedAdjustments{delta: 5})
	result := boosted.Classify(context.Background(), query)
	if result.Confidence != 1 {
		t.Errorf("confidence = %f, want clamp to 1", result.Confidence)
	}

	buried := newTestClassifier(t, fixedAdjustments{delta: -5})
	result = buried.Classify(context.Background(), query)
	if result.Confidence != 0 {
		t.Errorf("confidence = %f, want clamp to 0", result.Confidence)
	}

	// The raw score must not move with the adjustment.
	if result.RawScore <= 0 {
		t.Errorf("raw score = %f, want positive", result.RawScore)
	}
}
