package models

import "time"

// Sentiment is the externally supplied polarity label for a review.
// The pipeline never derives it from text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positivo"
	SentimentNegative Sentiment = "negativo"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ReviewID  string         `json:"review_id"`
	Text      string         `json:"text"`
	Rating    int            `json:"rating"`
	Sentiment Sentiment      `json:"sentiment"`
	Metadata  ReviewMetadata `json:"metadata,omitempty"`
}

type ReviewMetadata struct {
	Source    string    `json:"source,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// ClampRating bounds out-of-range ratings at the ingestion boundary.
// The scorers themselves never validate the rating.
func ClampRating(rating int) int {
	if rating < MinRating {
		return MinRating
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}
