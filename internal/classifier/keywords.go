package classifier

import (
	"sort"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
)

// KeywordOverlay is the rule-based signal layered over the similarity
// ranking. It matches high-signal keywords with a single Aho-Corasick pass
// and either boosts a domain's score or forces it to the top of the ranking.
//
// Keywords are matched on word boundaries: both patterns and input are
// normalized and space-padded, so "rape" never fires inside "grapevine".
type KeywordOverlay struct {
	matcher   *ahocorasick.Matcher
	patterns  []string
	kwToRules map[string][]ruleMapping
	rules     []domain.KeywordRule
}

type ruleMapping struct {
	ruleIndex int
	keyword   string
}

// OverlayResult holds the adjusted ranking plus the overlay diagnostics.
type OverlayResult struct {
	// Candidates is the re-ranked candidate list, forced domain first when set.
	Candidates []domain.DomainScore
	// Forced names the domain selected by a forced keyword match, if any.
	Forced string
	// Matched lists the keywords that fired, in pattern order.
	Matched []string
}

// NewKeywordOverlay builds the Aho-Corasick automaton from the keyword table.
func NewKeywordOverlay(rules []domain.KeywordRule) *KeywordOverlay {
	o := &KeywordOverlay{
		kwToRules: make(map[string][]ruleMapping),
		rules:     rules,
	}

	for i, rule := range rules {
		for _, kw := range rule.Keywords {
			normalized := strings.Join(tokenize(kw), " ")
			if normalized == "" {
				continue
			}
			padded := " " + normalized + " "
			if _, seen := o.kwToRules[padded]; !seen {
				o.patterns = append(o.patterns, padded)
			}
			o.kwToRules[padded] = append(o.kwToRules[padded], ruleMapping{
				ruleIndex: i,
				keyword:   normalized,
			})
		}
	}

	if len(o.patterns) > 0 {
		o.matcher = ahocorasick.NewStringMatcher(o.patterns)
	}
	return o
}

// Apply adjusts the similarity candidates with the keyword signal.
// Precedence: any domain with a forced keyword match wins outright (highest
// rule priority first, then table order); otherwise domains are ranked by
// similarity plus cumulative boost, capped at 1.0.
func (o *KeywordOverlay) Apply(text string, candidates []domain.DomainScore) OverlayResult {
	result := OverlayResult{Candidates: candidates}
	if o.matcher == nil || len(candidates) == 0 {
		return result
	}

	hits := o.matcher.Match([]byte(canonicalText(text)))
	if len(hits) == 0 {
		return result
	}

	boosts := make(map[string]float64)
	forcedIndex := -1
	for _, hit := range hits {
		if hit >= len(o.patterns) {
			continue
		}
		for _, m := range o.kwToRules[o.patterns[hit]] {
			rule := o.rules[m.ruleIndex]
			result.Matched = append(result.Matched, m.keyword)
			if rule.Forced {
				if forcedIndex == -1 || betterForced(o.rules, m.ruleIndex, forcedIndex) {
					forcedIndex = m.ruleIndex
				}
				continue
			}
			boosts[rule.Domain] += rule.Boost
		}
	}
	sort.Strings(result.Matched)
	result.Matched = dedupe(result.Matched)

	adjusted := make([]domain.DomainScore, len(candidates))
	for i, c := range candidates {
		score := c.Score + boosts[c.Domain]
		if score > 1 {
			score = 1
		}
		adjusted[i] = domain.DomainScore{Domain: c.Domain, Score: score}
	}
	sort.SliceStable(adjusted, func(i, j int) bool {
		return adjusted[i].Score > adjusted[j].Score
	})

	if forcedIndex >= 0 {
		result.Forced = o.rules[forcedIndex].Domain
		adjusted = moveToFront(adjusted, result.Forced)
	}

	result.Candidates = adjusted
	return result
}

// betterForced reports whether rule i outranks rule j for forced selection.
func betterForced(rules []domain.KeywordRule, i, j int) bool {
	if rules[i].Priority != rules[j].Priority {
		return rules[i].Priority > rules[j].Priority
	}
	return i < j
}

func moveToFront(scores []domain.DomainScore, domainLabel string) []domain.DomainScore {
	for i, s := range scores {
		if s.Domain == domainLabel {
			if i == 0 {
				return scores
			}
			front := scores[i]
			copy(scores[1:i+1], scores[:i])
			scores[0] = front
			return scores
		}
	}
	return scores
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
