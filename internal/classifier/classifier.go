// Package classifier implements the legal query classification pipeline:
// TF-IDF feature extraction, cosine similarity against domain exemplars, a
// keyword/rule overlay and the confidence aggregator that produces the final
// (domain, subdomain, confidence) result.
package classifier

import (
	"context"
	"strings"
	"time"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/logger"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/telemetry"
)

// Default policy constants. All of them are config knobs, not contracts.
const (
	defaultMinConfidence = 0.2
	defaultForcedFloor   = 0.75
)

// AdjustmentReader exposes the feedback-learned confidence deltas.
// The classifier only ever reads; the feedback adjuster owns the writes.
type AdjustmentReader interface {
	Get(domainLabel, subdomain string) float64
}

// Config holds the classifier policy knobs.
type Config struct {
	// Version is reported on every result.
	Version string
	// MinConfidence is the threshold below which the result degrades to
	// the unknown domain.
	MinConfidence float64
	// ForcedFloor is the minimum raw score reported for a forced keyword
	// override, so overrides always clear the confidence threshold.
	ForcedFloor float64
}

// SetDefaults applies default policy values.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0.0"
	}
	if c.MinConfidence == 0 {
		c.MinConfidence = defaultMinConfidence
	}
	if c.ForcedFloor == 0 {
		c.ForcedFloor = defaultForcedFloor
	}
}

// Classifier aggregates the similarity, keyword and feedback signals into a
// ClassificationResult. Classify is pure given the current adjustment state
// and safe for concurrent use.
type Classifier struct {
	vectorizer  *Vectorizer
	scorer      *SimilarityScorer
	overlay     *KeywordOverlay
	subdomains  *SubdomainResolver
	adjustments AdjustmentReader
	cfg         Config
	log         logger.Logger
	telemetry   *telemetry.Provider
}

// New builds the full pipeline from the fixed reference tables.
func New(
	exemplars []domain.DomainExemplar,
	keywordRules []domain.KeywordRule,
	subdomainRules []domain.SubdomainRule,
	adjustments AdjustmentReader,
	cfg Config,
	log logger.Logger,
	tp *telemetry.Provider,
) *Classifier {
	cfg.SetDefaults()
	if adjustments == nil {
		adjustments = noAdjustments{}
	}
	vectorizer := NewVectorizer(exemplars)

	c := &Classifier{
		vectorizer:  vectorizer,
		scorer:      NewSimilarityScorer(vectorizer, exemplars),
		overlay:     NewKeywordOverlay(keywordRules),
		subdomains:  NewSubdomainResolver(subdomainRules),
		adjustments: adjustments,
		cfg:         cfg,
		log:         log,
		telemetry:   tp,
	}

	log.Info("classifier initialized",
		logger.String("version", cfg.Version),
		logger.Int("domains", len(exemplars)),
		logger.Int("vocabulary", vectorizer.VocabularySize()),
		logger.Float64("min_confidence", cfg.MinConfidence))

	return c
}

// Classify maps a free-text legal query to a (domain, subdomain, confidence)
// triple with ranked alternatives. It never fails: empty queries degrade to
// the enumerate-all fallback and low-confidence results degrade to the
// unknown sentinel.
func (c *Classifier) Classify(ctx context.Context, query string) *domain.ClassificationResult {
	start := time.Now()

	if strings.TrimSpace(query) == "" {
		result := c.emptyResult(query, start)
		c.telemetry.RecordEmptyQuery()
		c.telemetry.RecordClassification(ctx, time.Since(start), result.Domain, result.Method)
		return result
	}

	vector := c.vectorizer.Vectorize(query)
	candidates := c.scorer.Score(vector)
	overlaid := c.overlay.Apply(query, candidates)

	top := overlaid.Candidates[0]
	method := domain.MethodSimilarity
	rawScore := top.Score

	switch {
	case overlaid.Forced != "":
		method = domain.MethodKeywordOverride
		if rawScore < c.cfg.ForcedFloor {
			rawScore = c.cfg.ForcedFloor
		}
		c.telemetry.RecordOverride()
	case len(overlaid.Matched) > 0:
		method = domain.MethodKeywordBoost
	}

	resolvedDomain := top.Domain
	var subdomain string
	if rawScore < c.cfg.MinConfidence {
		resolvedDomain = domain.DomainUnknown
		subdomain = domain.SubdomainUnclassified
		method = domain.MethodFallback
		c.telemetry.RecordFallback()
	} else {
		subdomain = c.subdomains.Resolve(resolvedDomain, query)
	}

	adjustment := c.adjustments.Get(resolvedDomain, subdomain)
	confidence := clamp(rawScore + adjustment)

	result := &domain.ClassificationResult{
		Query:             query,
		Domain:            resolvedDomain,
		Subdomain:         subdomain,
		Confidence:        confidence,
		RawScore:          clamp(rawScore),
		Adjustment:        adjustment,
		Alternatives:      overlaid.Candidates,
		MatchedKeywords:   overlaid.Matched,
		Method:            method,
		ClassifierVersion: c.cfg.Version,
		ProcessingTimeMs:  time.Since(start).Milliseconds(),
		ClassifiedAt:      time.Now(),
	}

	c.log.Debug("query classified",
		logger.String("domain", result.Domain),
		logger.String("subdomain", result.Subdomain),
		logger.Float64("confidence", result.Confidence),
		logger.String("method", result.Method))

	c.telemetry.RecordClassification(ctx, time.Since(start), result.Domain, result.Method)
	return result
}

// emptyResult implements the documented empty-query fallback: the unknown
// domain, flagged so the lookup layer enumerates all known domains and
// sections without preferring any one.
func (c *Classifier) emptyResult(query string, start time.Time) *domain.ClassificationResult {
	domains := c.scorer.Domains()
	alternatives := make([]domain.DomainScore, len(domains))
	for i, d := range domains {
		alternatives[i] = domain.DomainScore{Domain: d, Score: 0}
	}

	return &domain.ClassificationResult{
		Query:             query,
		Domain:            domain.DomainUnknown,
		Subdomain:         domain.SubdomainUnclassified,
		Confidence:        0,
		RawScore:          0,
		Alternatives:      alternatives,
		EnumerateAll:      true,
		Method:            domain.MethodFallback,
		ClassifierVersion: c.cfg.Version,
		ProcessingTimeMs:  time.Since(start).Milliseconds(),
		ClassifiedAt:      time.Now(),
	}
}

// MinConfidence returns the active confidence threshold.
func (c *Classifier) MinConfidence() float64 {
	return c.cfg.MinConfidence
}

// Version returns the classifier version string.
func (c *Classifier) Version() string {
	return c.cfg.Version
}

// noAdjustments is the zero adjustment state used when no feedback loop is
// wired in, e.g. the one-shot CLI.
type noAdjustments struct{}

func (noAdjustments) Get(string, string) float64 { return 0 }

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
