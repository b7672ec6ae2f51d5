package classifier

import (
	"sort"
	"strings"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
)

// SimilarityScorer ranks domains by cosine similarity between a query vector
// and each domain's exemplar vector. Pure: no state is mutated after
// construction.
type SimilarityScorer struct {
	order   []string // exemplar insertion order, used for tie-breaking
	vectors map[string]FeatureVector
	norms   map[string]float64
}

// NewSimilarityScorer precomputes one vector per domain from its exemplar
// phrases, in table order.
func NewSimilarityScorer(vectorizer *Vectorizer, exemplars []domain.DomainExemplar) *SimilarityScorer {
	s := &SimilarityScorer{
		order:   make([]string, 0, len(exemplars)),
		vectors: make(map[string]FeatureVector, len(exemplars)),
		norms:   make(map[string]float64, len(exemplars)),
	}
	for _, ex := range exemplars {
		vec := vectorizer.Vectorize(strings.Join(ex.Phrases, " "))
		s.order = append(s.order, ex.Domain)
		s.vectors[ex.Domain] = vec
		s.norms[ex.Domain] = vec.Norm()
	}
	return s
}

// Score returns all domains ordered by descending cosine similarity.
// Ties, including the all-zero query vector, fall back to exemplar
// insertion order.
func (s *SimilarityScorer) Score(query FeatureVector) []domain.DomainScore {
	queryNorm := query.Norm()

	scores := make([]domain.DomainScore, 0, len(s.order))
	for _, d := range s.order {
		scores = append(scores, domain.DomainScore{
			Domain: d,
			Score:  cosine(query, queryNorm, s.vectors[d], s.norms[d]),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// Domains returns the fixed domain order used by the scorer.
func (s *SimilarityScorer) Domains() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func cosine(a FeatureVector, aNorm float64, b FeatureVector, bNorm float64) float64 {
	if aNorm == 0 || bNorm == 0 {
		return 0
	}

	// Iterate the smaller map.
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, w := range a {
		if bw, ok := b[term]; ok {
			dot += w * bw
		}
	}

	sim := dot / (aNorm * bNorm)
	// Guard against floating point drift above 1.
	if sim > 1 {
		sim = 1
	}
	if sim < 0 {
		sim = 0
	}
	return sim
}
