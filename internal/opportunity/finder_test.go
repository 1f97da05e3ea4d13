package opportunity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/reviewpulse/internal/models"
)

func TestFind_BrandAdvocate(t *testing.T) {
	text := "sempre compro aqui, já indiquei para toda família, simplesmente perfeito"

	result := Find(text, 5, models.SentimentPositive)

	assert.Equal(t, 100.0, result.OpportunityScore)
	assert.Equal(t, models.OpportunityHigh, result.OpportunityLevel)
	assert.Equal(t, models.ProfileAdvocate, result.CustomerProfile)
	assert.True(t, result.IsHighValue)
	assert.GreaterOrEqual(t, result.SignalsDetected[models.SignalAdvocate], 1)
	assert.GreaterOrEqual(t, result.SignalsDetected[models.SignalLoyalty], 1)
	assert.Equal(t,
		[]models.OpportunityType{models.TypeLoyalty, models.TypeAdvocate, models.TypeExceptional},
		result.OpportunityTypes)
}

func TestFind_EmptyText(t *testing.T) {
	result := Find("", 5, models.SentimentPositive)

	assert.Equal(t, 0.0, result.OpportunityScore)
	assert.Equal(t, models.OpportunityNone, result.OpportunityLevel)
	assert.Equal(t, models.ProfileCommon, result.CustomerProfile)
	assert.Empty(t, result.OpportunityTypes)
	assert.False(t, result.IsHighValue)
}

func TestFind_NegativeSentimentGate(t *testing.T) {
	text := "sempre compro aqui, já indiquei para toda família"

	result := Find(text, 5, models.SentimentNegative)

	assert.Equal(t, models.OpportunityNone, result.OpportunityLevel)
	// The score itself is still computed; only the level is gated.
	assert.Greater(t, result.OpportunityScore, 0.0)
}

func TestFind_LowRatingGate(t *testing.T) {
	result := Find("recomendo muito", 3, models.SentimentPositive)

	assert.Equal(t, models.OpportunityNone, result.OpportunityLevel)
}

func TestFind_ScoreBounded(t *testing.T) {
	var phrases []string
	for _, group := range opportunitySignals {
		phrases = append(phrases, group.Phrases...)
	}
	adversarial := strings.Join(phrases, " ")

	for rating := 1; rating <= 5; rating++ {
		result := Find(adversarial, rating, models.SentimentPositive)
		assert.LessOrEqual(t, result.OpportunityScore, 100.0)
		assert.GreaterOrEqual(t, result.OpportunityScore, 0.0)
	}
}

func TestFind_Levels(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		rating   int
		expected models.OpportunityLevel
	}{
		{
			// "recomendo" alone: 30 * 1.1 = 33 at rating 4.
			"medium on single advocate signal",
			"recomendo",
			4,
			models.OpportunityMedium,
		},
		{
			// 30 * 1.3 = 39 at rating 5, high via the 5-star rule.
			"high via five star rule",
			"recomendo",
			5,
			models.OpportunityHigh,
		},
		{
			// "superou" alone: 10 * 1.1 = 11 at rating 4.
			"low on weak signal",
			"superou",
			4,
			models.OpportunityLow,
		},
		{
			"none without signals",
			"tudo certo com o pedido",
			5,
			models.OpportunityNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Find(tt.text, tt.rating, models.SentimentPositive)
			assert.Equal(t, tt.expected, result.OpportunityLevel)
		})
	}
}

func TestFind_CustomerProfiles(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected models.CustomerProfile
	}{
		{"loyal on loyalty plus exceptional", "sempre compro e dessa vez superou", models.ProfileLoyal},
		{"highly satisfied on double exceptional", "superou tudo, incrível", models.ProfileHighlySatisfied},
		{"satisfied on single signal", "simplesmente incrível", models.ProfileSatisfied},
		{"common without signals", "tudo certo com o pedido", models.ProfileCommon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Find(tt.text, 5, models.SentimentPositive)
			assert.Equal(t, tt.expected, result.CustomerProfile)
		})
	}
}

func TestStatistics(t *testing.T) {
	reviews := []models.Review{
		{Text: "sempre compro aqui, já indiquei para toda família, perfeito", Rating: 5, Sentiment: models.SentimentPositive},
		{Text: "recomendo", Rating: 4, Sentiment: models.SentimentPositive},
		{Text: "não gostei", Rating: 2, Sentiment: models.SentimentNegative},
	}

	stats := Statistics(reviews)

	assert.Equal(t, 3, stats.TotalReviews)
	assert.Equal(t, 1, stats.HighOpportunity)
	assert.Equal(t, 1, stats.MediumOpportunity)
	assert.Equal(t, 1, stats.NoOpportunity)
	assert.Equal(t, 1, stats.BrandAdvocates)
	assert.InDelta(t, 100.0/3.0, stats.PctHigh, 1e-9)
}

func TestStatistics_EmptyDataset(t *testing.T) {
	stats := Statistics(nil)

	assert.Equal(t, 0, stats.TotalReviews)
	assert.Equal(t, 0.0, stats.MeanScore)
	assert.Equal(t, 0.0, stats.PctHigh)
}

func TestTopOpportunities(t *testing.T) {
	reviews := []models.Review{
		{ReviewID: "a", Text: "recomendo", Rating: 4, Sentiment: models.SentimentPositive},
		{ReviewID: "b", Text: "sempre compro aqui, já indiquei para toda família, perfeito", Rating: 5, Sentiment: models.SentimentPositive},
		{ReviewID: "c", Text: "nada de especial", Rating: 3, Sentiment: models.SentimentNegative},
		{ReviewID: "d", Text: "recomendo", Rating: 4, Sentiment: models.SentimentPositive},
	}

	top := TopOpportunities(reviews, 3)

	assert.Len(t, top, 3)
	assert.Equal(t, "b", top[0].Review.ReviewID)
	// Equal scores keep dataset order.
	assert.Equal(t, "a", top[1].Review.ReviewID)
	assert.Equal(t, "d", top[2].Review.ReviewID)
}
