package domain

// DomainExemplar pairs a legal domain with the representative phrases used
// for similarity comparison. The exemplar set is fixed-size, loaded once at
// startup, and read-only afterwards.
type DomainExemplar struct {
	Domain  string   `json:"domain"  yaml:"domain"`
	Phrases []string `json:"phrases" yaml:"phrases"`
}

// KeywordRule maps a legal domain to high-signal keywords. Forced rules win
// the ranking outright when any of their keywords appear; non-forced rules
// add Boost per matched keyword, bounded by the aggregator.
type KeywordRule struct {
	Domain   string   `json:"domain"   yaml:"domain"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Boost    float64  `json:"boost"    yaml:"boost"`
	Forced   bool     `json:"forced"   yaml:"forced"`
	Priority int      `json:"priority" yaml:"priority"`
}

// SubdomainRule resolves a subdomain within an already-fixed domain.
// Same precedence as KeywordRule, scoped to one domain's vocabulary.
type SubdomainRule struct {
	Domain    string   `json:"domain"    yaml:"domain"`
	Subdomain string   `json:"subdomain" yaml:"subdomain"`
	Keywords  []string `json:"keywords"  yaml:"keywords"`
	Forced    bool     `json:"forced"    yaml:"forced"`
	Priority  int      `json:"priority"  yaml:"priority"`
}
