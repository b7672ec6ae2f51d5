// Package feedback implements the feedback-driven confidence adjustment
// loop: feedback submissions are classified as positive or negative and
// accumulate per-(domain, subdomain) deltas that the classifier reads on
// every request.
package feedback

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/classifier"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/logger"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/telemetry"
)

// Default adjustment steps. Policy knobs, tunable via config.
const (
	defaultPositiveStep       = 0.1
	defaultStrongPositiveStep = 0.3
	defaultNegativeStep       = -0.1
	defaultStrongNegativeStep = -0.2
	defaultRatingPositiveMin  = 4
	defaultRatingNegativeMax  = 2
)

// Config holds the feedback adjustment policy.
type Config struct {
	PositiveStep       float64
	StrongPositiveStep float64
	NegativeStep       float64
	StrongNegativeStep float64
	// RatingPositiveMin and RatingNegativeMax bound the numeric rating
	// thresholds on a 1-5 scale. Ratings in between are neutral.
	RatingPositiveMin int
	RatingNegativeMax int
}

// SetDefaults applies default step sizes and rating thresholds.
func (c *Config) SetDefaults() {
	if c.PositiveStep == 0 {
		c.PositiveStep = defaultPositiveStep
	}
	if c.StrongPositiveStep == 0 {
		c.StrongPositiveStep = defaultStrongPositiveStep
	}
	if c.NegativeStep == 0 {
		c.NegativeStep = defaultNegativeStep
	}
	if c.StrongNegativeStep == 0 {
		c.StrongNegativeStep = defaultStrongNegativeStep
	}
	if c.RatingPositiveMin == 0 {
		c.RatingPositiveMin = defaultRatingPositiveMin
	}
	if c.RatingNegativeMax == 0 {
		c.RatingNegativeMax = defaultRatingNegativeMax
	}
}

// Store persists feedback records and adjustment deltas. UpsertAdjustment
// adds step to the stored cumulative delta for key; the addition must happen
// in the store so concurrent steps commute. Implementations must be safe for
// concurrent use.
type Store interface {
	InsertFeedback(ctx context.Context, record *domain.FeedbackRecord) error
	UpsertAdjustment(ctx context.Context, key string, step float64) error
}

// lexiconEntry classifies one feedback phrase. Entries are checked in order;
// the first word-boundary match wins, so strong phrases come before their
// plain forms. Negated positives are handled by a pre-pass in evaluate.
type lexiconEntry struct {
	phrase   string
	polarity string
	strong   bool
}

var lexicon = []lexiconEntry{
	{"completely wrong", domain.PolarityNegative, true},
	{"totally wrong", domain.PolarityNegative, true},
	{"useless", domain.PolarityNegative, true},
	{"terrible", domain.PolarityNegative, true},
	{"wrong", domain.PolarityNegative, false},
	{"incorrect", domain.PolarityNegative, false},
	{"irrelevant", domain.PolarityNegative, false},
	{"bad", domain.PolarityNegative, false},

	{"very helpful", domain.PolarityPositive, true},
	{"excellent", domain.PolarityPositive, true},
	{"perfect", domain.PolarityPositive, true},
	{"amazing", domain.PolarityPositive, true},
	{"spot on", domain.PolarityPositive, true},
	{"helpful", domain.PolarityPositive, false},
	{"useful", domain.PolarityPositive, false},
	{"good", domain.PolarityPositive, false},
	{"great", domain.PolarityPositive, false},
	{"correct", domain.PolarityPositive, false},
	{"accurate", domain.PolarityPositive, false},
	{"thank you", domain.PolarityPositive, false},
	{"thanks", domain.PolarityPositive, false},
}

// Adjuster records feedback and maintains the adjustment state. The only
// mutating operation in the core; safe to call concurrently with
// classification reads.
type Adjuster struct {
	state     *State
	store     Store
	cfg       Config
	log       logger.Logger
	telemetry *telemetry.Provider
}

// NewAdjuster creates a feedback adjuster. store may be nil for purely
// in-memory operation (tests, CLI).
func NewAdjuster(state *State, store Store, cfg Config, log logger.Logger, tp *telemetry.Provider) *Adjuster {
	cfg.SetDefaults()
	return &Adjuster{
		state:     state,
		store:     store,
		cfg:       cfg,
		log:       log,
		telemetry: tp,
	}
}

// State returns the adjustment state the adjuster writes to.
func (a *Adjuster) State() *State {
	return a.state
}

// Record classifies one feedback submission and, when its polarity is
// recognized, applies the step to the (domain, subdomain) delta. Feedback
// matching neither the lexicon nor a rating threshold is recorded as not
// applied: a logged no-op, never an error. The returned record carries the
// new cumulative delta in Step-applied form via State().Get.
func (a *Adjuster) Record(
	ctx context.Context,
	queryText, domainLabel, subdomain string,
	confidence float64,
	feedbackText string,
	rating *int,
) (*domain.FeedbackRecord, error) {
	polarity, step := a.evaluate(feedbackText, rating)

	record := &domain.FeedbackRecord{
		ID:             uuid.NewString(),
		QueryText:      queryText,
		QuerySignature: classifier.QuerySignature(queryText),
		Domain:         domainLabel,
		Subdomain:      subdomain,
		Confidence:     confidence,
		FeedbackText:   feedbackText,
		Rating:         rating,
		Polarity:       polarity,
		Applied:        polarity != domain.PolarityNeutral,
		Step:           step,
		CreatedAt:      time.Now(),
	}

	if record.Applied {
		newDelta := a.state.Add(domainLabel, subdomain, step)
		a.log.Info("feedback applied",
			logger.String("domain", domainLabel),
			logger.String("subdomain", subdomain),
			logger.String("polarity", polarity),
			logger.Float64("step", step),
			logger.Float64("new_adjustment", newDelta))

		// Persist the step, not the cumulative snapshot: additive writes
		// commute, so concurrent submissions cannot leave a stale total.
		if a.store != nil {
			if err := a.store.UpsertAdjustment(ctx, Key(domainLabel, subdomain), step); err != nil {
				a.log.Error("failed to persist adjustment", logger.Error(err))
			}
		}
	} else {
		a.log.Warn("unrecognized feedback, not applied",
			logger.String("domain", domainLabel),
			logger.String("subdomain", subdomain))
	}

	a.telemetry.RecordFeedback(polarity, record.Applied)

	if a.store != nil {
		if err := a.store.InsertFeedback(ctx, record); err != nil {
			return record, err
		}
	}
	return record, nil
}

// evaluate determines polarity and step from the feedback text, falling back
// to the numeric rating when the lexicon does not match.
func (a *Adjuster) evaluate(feedbackText string, rating *int) (string, float64) {
	padded := " " + classifier.QuerySignature(feedbackText) + " "

	// Negated positive phrases ("not helpful", "not accurate") flip to
	// plain negative. Checked before the lexicon scan so the positive
	// entry inside cannot fire.
	for _, entry := range lexicon {
		if entry.polarity != domain.PolarityPositive {
			continue
		}
		if strings.Contains(padded, " not "+entry.phrase+" ") {
			return domain.PolarityNegative, a.cfg.NegativeStep
		}
	}

	for _, entry := range lexicon {
		if !strings.Contains(padded, " "+entry.phrase+" ") {
			continue
		}
		switch {
		case entry.polarity == domain.PolarityPositive && entry.strong:
			return domain.PolarityPositive, a.cfg.StrongPositiveStep
		case entry.polarity == domain.PolarityPositive:
			return domain.PolarityPositive, a.cfg.PositiveStep
		case entry.strong:
			return domain.PolarityNegative, a.cfg.StrongNegativeStep
		default:
			return domain.PolarityNegative, a.cfg.NegativeStep
		}
	}

	if rating != nil {
		switch {
		case *rating >= a.cfg.RatingPositiveMin:
			if *rating >= 5 {
				return domain.PolarityPositive, a.cfg.StrongPositiveStep
			}
			return domain.PolarityPositive, a.cfg.PositiveStep
		case *rating <= a.cfg.RatingNegativeMax:
			if *rating <= 1 {
				return domain.PolarityNegative, a.cfg.StrongNegativeStep
			}
			return domain.PolarityNegative, a.cfg.NegativeStep
		}
	}

	return domain.PolarityNeutral, 0
}
