package classifier

import (
	"math"
	"reflect"
	"testing"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
)

func overlayCandidates() []domain.DomainScore {
	return []domain.DomainScore{
		{Domain: "alpha", Score: 0.5},
		{Domain: "beta", Score: 0.3},
		{Domain: "gamma", Score: 0.1},
	}
}

func TestKeywordOverlay_BoostReranks(t *testing.T) {
	overlay := NewKeywordOverlay([]domain.KeywordRule{
		{Domain: "beta", Keywords: []string{"landlord"}, Boost: 0.4},
	})

	result := overlay.Apply("my landlord is evicting me", overlayCandidates())

	if result.Forced != "" {
		t.Errorf("no forced rule configured, got forced=%q", result.Forced)
	}
	if result.Candidates[0].Domain != "beta" {
		t.Errorf("expected boosted beta first, got %s", result.Candidates[0].Domain)
	}
	if got := result.Candidates[0].Score; math.Abs(got-0.7) > 1e-9 {
		t.Errorf("expected 0.3+0.4=0.7, got %f", got)
	}
	if !reflect.DeepEqual(result.Matched, []string{"landlord"}) {
		t.Errorf("matched = %v", result.Matched)
	}
}

func TestKeywordOverlay_BoostCappedAtOne(t *testing.T) {
	overlay := NewKeywordOverlay([]domain.KeywordRule{
		{Domain: "alpha", Keywords: []string{"fraud"}, Boost: 0.9},
	})

	result := overlay.Apply("fraud happened", overlayCandidates())
	if got := result.Candidates[0].Score; got != 1 {
		t.Errorf("expected score capped at 1, got %f", got)
	}
}

func TestKeywordOverlay_WordBoundary(t *testing.T) {
	overlay := NewKeywordOverlay([]domain.KeywordRule{
		{Domain: "alpha", Keywords: []string{"rape"}, Forced: true, Priority: 100},
	})

	tests := []struct {
		name   string
		text   string
		forced string
	}{
		{"substring does not fire", "we walked past the grapevine", ""},
		{"exact word fires", "she was a victim of rape", "alpha"},
		{"punctuation boundary fires", "rape. that is the complaint", "alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := overlay.Apply(tt.text, overlayCandidates())
			if result.Forced != tt.forced {
				t.Errorf("forced = %q, want %q", result.Forced, tt.forced)
			}
		})
	}
}

func TestKeywordOverlay_MultiWordKeyword(t *testing.T) {
	overlay := NewKeywordOverlay([]domain.KeywordRule{
		{Domain: "beta", Keywords: []string{"domestic violence"}, Boost: 0.2},
	})

	result := overlay.Apply("I am facing domestic   violence at home", overlayCandidates())
	if !reflect.DeepEqual(result.Matched, []string{"domestic violence"}) {
		t.Errorf("matched = %v", result.Matched)
	}
}

func TestKeywordOverlay_ForcedWinsByPriority(t *testing.T) {
	overlay := NewKeywordOverlay([]domain.KeywordRule{
		{Domain: "beta", Keywords: []string{"ransom"}, Forced: true, Priority: 50},
		{Domain: "gamma", Keywords: []string{"kidnapped"}, Forced: true, Priority: 100},
	})

	result := overlay.Apply("kidnapped and held for ransom", overlayCandidates())
	if result.Forced != "gamma" {
		t.Errorf("expected higher-priority forced rule, got %q", result.Forced)
	}
	if result.Candidates[0].Domain != "gamma" {
		t.Errorf("forced domain must rank first, got %s", result.Candidates[0].Domain)
	}
}

func TestKeywordOverlay_NoRules(t *testing.T) {
	overlay := NewKeywordOverlay(nil)

	candidates := overlayCandidates()
	result := overlay.Apply("anything at all", candidates)
	if !reflect.DeepEqual(result.Candidates, candidates) {
		t.Errorf("candidates changed with no rules: %v", result.Candidates)
	}
}

func TestSubdomainResolver(t *testing.T) {
	resolver := NewSubdomainResolver([]domain.SubdomainRule{
		{Domain: "alpha", Subdomain: "kidnapping", Keywords: []string{"kidnapped", "ransom"}, Forced: true, Priority: 100},
		{Domain: "alpha", Subdomain: "theft", Keywords: []string{"stolen", "theft", "robbery"}, Priority: 50},
		{Domain: "alpha", Subdomain: "assault", Keywords: []string{"attacked"}, Priority: 40},
	})

	tests := []struct {
		name     string
		domain   string
		text     string
		expected string
	}{
		{"forced wins", "alpha", "kidnapped and my bike stolen", "kidnapping"},
		{"most matches wins", "alpha", "theft and robbery while I was attacked", "theft"},
		{"no match falls back", "alpha", "something unrelated", domain.SubdomainGeneral},
		{"unknown domain falls back", "other", "kidnapped", domain.SubdomainGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolver.Resolve(tt.domain, tt.text); got != tt.expected {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.domain, tt.text, got, tt.expected)
			}
		})
	}
}
