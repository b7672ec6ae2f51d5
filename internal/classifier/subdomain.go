package classifier

import (
	"strings"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
)

// SubdomainResolver picks a subdomain once the domain is fixed, using the
// same precedence as the keyword overlay scoped to one domain's vocabulary:
// forced rules win by priority, otherwise the rule with the most keyword
// matches, table order breaking ties.
type SubdomainResolver struct {
	byDomain map[string][]domain.SubdomainRule
}

// NewSubdomainResolver indexes the subdomain rule table by domain.
func NewSubdomainResolver(rules []domain.SubdomainRule) *SubdomainResolver {
	byDomain := make(map[string][]domain.SubdomainRule)
	for _, rule := range rules {
		byDomain[rule.Domain] = append(byDomain[rule.Domain], rule)
	}
	return &SubdomainResolver{byDomain: byDomain}
}

// Resolve returns the subdomain for the query text within domainLabel,
// falling back to "general" when nothing matches.
func (r *SubdomainResolver) Resolve(domainLabel, text string) string {
	rules := r.byDomain[domainLabel]
	if len(rules) == 0 {
		return domain.SubdomainGeneral
	}

	padded := canonicalText(text)

	best := ""
	bestMatches := 0
	forcedBest := ""
	forcedPriority := 0

	for _, rule := range rules {
		matches := 0
		for _, kw := range rule.Keywords {
			normalized := strings.Join(tokenize(kw), " ")
			if normalized == "" {
				continue
			}
			if strings.Contains(padded, " "+normalized+" ") {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		if rule.Forced && (forcedBest == "" || rule.Priority > forcedPriority) {
			forcedBest = rule.Subdomain
			forcedPriority = rule.Priority
		}
		if matches > bestMatches {
			best = rule.Subdomain
			bestMatches = matches
		}
	}

	if forcedBest != "" {
		return forcedBest
	}
	if best != "" {
		return best
	}
	return domain.SubdomainGeneral
}
