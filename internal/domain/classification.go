package domain

import "time"

// Legal domain labels. A classification result always carries one of these
// or the DomainUnknown sentinel.
const (
	DomainCriminalLaw       = "criminal_law"
	DomainFamilyLaw         = "family_law"
	DomainPropertyLaw       = "property_law"
	DomainEmploymentLaw     = "employment_law"
	DomainConsumerLaw       = "consumer_law"
	DomainCyberLaw          = "cyber_law"
	DomainTenantRights      = "tenant_rights"
	DomainContractLaw       = "contract_law"
	DomainConstitutionalLaw = "constitutional_law"
	DomainTaxLaw            = "tax_law"

	DomainUnknown         = "unknown"
	SubdomainUnclassified = "unclassified"
	SubdomainGeneral      = "general"
)

// ClassificationMethod constants.
const (
	MethodSimilarity      = "similarity"
	MethodKeywordBoost    = "keyword_boost"
	MethodKeywordOverride = "keyword_override"
	MethodFallback        = "fallback"
)

// DomainScore is a single (domain, score) candidate in a ranked list.
type DomainScore struct {
	Domain string  `json:"domain"`
	Score  float64 `json:"score"`
}

// ClassificationResult is the outcome of classifying a single query.
// It is created fresh per request and never mutated after construction.
type ClassificationResult struct {
	Query     string `json:"query"`
	Domain    string `json:"domain"`
	Subdomain string `json:"subdomain"`

	// Confidence is the final reported score after feedback adjustment,
	// clamped to [0,1]. RawScore is the pre-adjustment similarity+boost.
	Confidence float64 `json:"confidence"`
	RawScore   float64 `json:"raw_score"`
	Adjustment float64 `json:"adjustment"`

	// Alternatives lists all candidate domains ordered by descending score.
	Alternatives []DomainScore `json:"alternatives"`

	// MatchedKeywords holds the overlay keywords that fired, if any.
	MatchedKeywords []string `json:"matched_keywords,omitempty"`

	// EnumerateAll is set for empty queries: the caller should enumerate
	// all known domains and sections instead of preferring one.
	EnumerateAll bool `json:"enumerate_all,omitempty"`

	Method            string    `json:"method"`
	ClassifierVersion string    `json:"classifier_version"`
	ProcessingTimeMs  int64     `json:"processing_time_ms"`
	ClassifiedAt      time.Time `json:"classified_at"`
}

// Domains returns the fixed, ordered set of legal domain labels.
// Order matters: it is the exemplar insertion order used for tie-breaking.
func Domains() []string {
	return []string{
		DomainCriminalLaw,
		DomainFamilyLaw,
		DomainPropertyLaw,
		DomainEmploymentLaw,
		DomainConsumerLaw,
		DomainCyberLaw,
		DomainTenantRights,
		DomainContractLaw,
		DomainConstitutionalLaw,
		DomainTaxLaw,
	}
}

// IsKnownDomain reports whether label is one of the fixed legal domains.
func IsKnownDomain(label string) bool {
	for _, d := range Domains() {
		if d == label {
			return true
		}
	}
	return false
}
