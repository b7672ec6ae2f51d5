package classifier

import (
	"math"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
)

// FeatureVector is a sparse term-weight vector over the exemplar vocabulary.
type FeatureVector map[string]float64

// Norm returns the Euclidean norm of the vector.
func (v FeatureVector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Vectorizer turns query text into a TF-IDF weighted feature vector.
// The vocabulary and document frequencies are fixed at construction from the
// exemplar corpus; out-of-vocabulary terms contribute zero weight. Vectorize
// is deterministic and side-effect free.
type Vectorizer struct {
	idf map[string]float64
}

// NewVectorizer builds the vocabulary from the exemplar table. Each domain's
// phrase set is one document for IDF purposes.
func NewVectorizer(exemplars []domain.DomainExemplar) *Vectorizer {
	docCount := len(exemplars)
	df := make(map[string]int)

	for _, ex := range exemplars {
		seen := make(map[string]bool)
		for _, phrase := range ex.Phrases {
			for _, tok := range tokenize(phrase) {
				if !seen[tok] {
					seen[tok] = true
					df[tok]++
				}
			}
		}
	}

	idf := make(map[string]float64, len(df))
	for term, freq := range df {
		// Smoothed IDF keeps terms present in every document at a small
		// positive weight instead of zeroing them out.
		idf[term] = math.Log(float64(1+docCount)/float64(1+freq)) + 1
	}

	return &Vectorizer{idf: idf}
}

// Vectorize converts text into a TF-IDF vector over the fixed vocabulary.
// Any string, including the empty string, yields a valid (possibly all-zero)
// vector.
func (v *Vectorizer) Vectorize(text string) FeatureVector {
	tokens := tokenize(text)
	vec := make(FeatureVector)
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[string]int)
	inVocab := 0
	for _, tok := range tokens {
		if _, ok := v.idf[tok]; ok {
			counts[tok]++
			inVocab++
		}
	}
	if inVocab == 0 {
		return vec
	}

	for term, count := range counts {
		tf := float64(count) / float64(len(tokens))
		vec[term] = tf * v.idf[term]
	}
	return vec
}

// VocabularySize returns the number of terms in the fixed vocabulary.
func (v *Vectorizer) VocabularySize() int {
	return len(v.idf)
}
