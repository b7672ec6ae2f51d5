package domain

import "time"

// Feedback polarity constants.
const (
	PolarityPositive = "positive"
	PolarityNegative = "negative"
	PolarityNeutral  = "neutral"
)

// FeedbackRecord captures one feedback submission. Records are append-only:
// created on submission, never mutated, read back only to recompute deltas.
type FeedbackRecord struct {
	ID             string    `db:"id"              json:"id"`
	QueryText      string    `db:"query_text"      json:"query_text"`
	QuerySignature string    `db:"query_signature" json:"query_signature"`
	Domain         string    `db:"domain"          json:"domain"`
	Subdomain      string    `db:"subdomain"       json:"subdomain"`
	Confidence     float64   `db:"confidence"      json:"confidence"`
	FeedbackText   string    `db:"feedback_text"   json:"feedback_text"`
	Rating         *int      `db:"rating"          json:"rating,omitempty"`
	Polarity       string    `db:"polarity"        json:"polarity"`
	Applied        bool      `db:"applied"         json:"applied"`
	Step           float64   `db:"step"            json:"step"`
	CreatedAt      time.Time `db:"created_at"      json:"created_at"`
}
