package classifier

import (
	"reflect"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "My LANDLORD", "my landlord"},
		{"punctuation to spaces", "refund, please!", "refund  please "},
		{"folds diacritics", "kidnappé", "kidnappe"},
		{"keeps digits", "section 302", "section 302"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeText(tt.input); got != tt.expected {
				t.Errorf("normalizeText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("  My landlord -- refuses...to PAY! ")
	want := []string{"my", "landlord", "refuses", "to", "pay"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize = %v, want %v", got, want)
	}
}

func TestCanonicalText(t *testing.T) {
	if got := canonicalText("My child was kidnapped!"); got != " my child was kidnapped " {
		t.Errorf("canonicalText = %q", got)
	}
	// Blank input still yields a searchable string.
	if got := canonicalText("   "); got != " " {
		t.Errorf("canonicalText(blank) = %q", got)
	}
}

func TestQuerySignature_CollapsesSpellingVariants(t *testing.T) {
	a := QuerySignature("My landlord REFUSES to pay!!")
	b := QuerySignature("my landlord refuses to pay")
	if a != b {
		t.Errorf("signatures differ: %q vs %q", a, b)
	}
}
