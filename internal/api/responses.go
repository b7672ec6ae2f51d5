package api

import (
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
)

// ClassifyResponse is a classification result enriched with the statute
// sections and constitutional articles for the resolved domain.
type ClassifyResponse struct {
	*domain.ClassificationResult

	Sections []domain.StatuteSection      `json:"sections"`
	Articles []domain.ConstitutionArticle `json:"articles"`
}

// BatchResponse wraps the ordered results of a batch classification.
type BatchResponse struct {
	Count   int                 `json:"count"`
	Results []*ClassifyResponse `json:"results"`
}

// FeedbackResponse reports what the adjuster did with one submission.
type FeedbackResponse struct {
	ID            string  `json:"id"`
	Polarity      string  `json:"polarity"`
	Applied       bool    `json:"applied"`
	Step          float64 `json:"step"`
	NewAdjustment float64 `json:"new_adjustment"`
}

// DomainInfo describes one legal domain and its known subdomains.
type DomainInfo struct {
	Domain     string   `json:"domain"`
	Subdomains []string `json:"subdomains"`
}

// StatsResponse summarizes the live adjustment state and feedback counts.
type StatsResponse struct {
	ClassifierVersion string             `json:"classifier_version"`
	MinConfidence     float64            `json:"min_confidence"`
	Adjustments       map[string]float64 `json:"adjustments"`
	FeedbackCounts    map[string]int     `json:"feedback_counts,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}
