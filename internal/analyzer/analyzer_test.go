package analyzer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/reviewpulse/internal/models"
)

func TestAnalyze_EmptyText(t *testing.T) {
	review := models.Review{
		ReviewID:  "r-1",
		Text:      "",
		Rating:    3,
		Sentiment: models.SentimentPositive,
	}

	analysis := Analyze(review)

	assert.Equal(t, "", analysis.CleanedText)
	assert.Equal(t, models.CategoryOther, analysis.Category.Category)
	assert.Equal(t, 0.0, analysis.Category.Confidence)
	assert.Equal(t, 0.0, analysis.Churn.ChurnScore)
	assert.Equal(t, models.RiskNone, analysis.Churn.RiskLevel)
	assert.Equal(t, 0.0, analysis.Opportunity.OpportunityScore)
	assert.Equal(t, models.OpportunityNone, analysis.Opportunity.OpportunityLevel)
}

// The classifier falling through to the catch-all category must not stop the
// other scorers from reading their own signals out of the same text.
func TestAnalyze_ScorersAreIndependent(t *testing.T) {
	review := models.Review{
		ReviewID:  "r-2",
		Text:      "Gostei bastante, recomendo",
		Rating:    5,
		Sentiment: models.SentimentPositive,
	}

	analysis := Analyze(review)

	assert.Equal(t, models.CategoryOther, analysis.Category.Category)
	assert.Greater(t, analysis.Opportunity.OpportunityScore, 0.0)
	assert.Equal(t, 1, analysis.Opportunity.SignalsDetected[models.SignalAdvocate])
	assert.Equal(t, models.OpportunityHigh, analysis.Opportunity.OpportunityLevel)
}

func TestAnalyze_CleansBeforeScoring(t *testing.T) {
	review := models.Review{
		Text:      "NÃO RECOMENDO!!! vejam https://example.com/reclamacao",
		Rating:    1,
		Sentiment: models.SentimentNegative,
	}

	analysis := Analyze(review)

	assert.NotContains(t, analysis.CleanedText, "https://")
	assert.NotContains(t, analysis.CleanedText, "!!!")
	assert.Greater(t, analysis.Churn.ChurnScore, 0.0)
	assert.Equal(t, models.OpportunityNone, analysis.Opportunity.OpportunityLevel)
}

func TestAnalyzeAll_PreservesOrder(t *testing.T) {
	reviews := make([]models.Review, 100)
	for i := range reviews {
		reviews[i] = models.Review{
			ReviewID:  fmt.Sprintf("r-%03d", i),
			Text:      "produto excelente, recomendo",
			Rating:    5,
			Sentiment: models.SentimentPositive,
		}
	}

	results := AnalyzeAll(context.Background(), reviews)

	assert.Len(t, results, len(reviews))
	for i, result := range results {
		assert.Equal(t, fmt.Sprintf("r-%03d", i), result.ReviewID)
	}
}

func TestAnalyzeAll_Empty(t *testing.T) {
	results := AnalyzeAll(context.Background(), nil)
	assert.Empty(t, results)
}

func TestSummarize(t *testing.T) {
	reviews := []models.Review{
		{ReviewID: "a", Text: "Produto horrível, nunca mais compro aqui. Vou procurar o procon.", Rating: 1, Sentiment: models.SentimentNegative},
		{ReviewID: "b", Text: "sempre compro aqui, já indiquei para toda família, simplesmente perfeito", Rating: 5, Sentiment: models.SentimentPositive},
		{ReviewID: "c", Text: "celular samsung galaxy com bateria ótima", Rating: 4, Sentiment: models.SentimentPositive},
		{ReviewID: "d", Text: "", Rating: 3, Sentiment: models.SentimentPositive},
	}

	analyses := AnalyzeAll(context.Background(), reviews)
	summary := Summarize(analyses)

	assert.Equal(t, 4, summary.TotalReviews)
	assert.InDelta(t, 3.25, summary.MeanRating, 1e-9)
	assert.Equal(t, 1, summary.RatingHistogram[1])
	assert.Equal(t, 1, summary.RatingHistogram[5])
	assert.Equal(t, 3, summary.SentimentCounts[models.SentimentPositive])
	assert.Equal(t, 1, summary.SentimentCounts[models.SentimentNegative])

	assert.Equal(t, 1, summary.Categories["Smartphones"])
	assert.Equal(t, 3, summary.Categories[models.CategoryOther])

	assert.Equal(t, 1, summary.Churn.HighRisk)
	assert.Equal(t, 3, summary.Churn.NoRisk)
	assert.InDelta(t, 25.0, summary.Churn.PctHighRisk, 1e-9)
	assert.Len(t, summary.CriticalReviews, 1)
	assert.Equal(t, "a", summary.CriticalReviews[0].ReviewID)

	assert.Equal(t, 1, summary.Opportunity.HighOpportunity)
	assert.Equal(t, 1, summary.Opportunity.BrandAdvocates)
	assert.Len(t, summary.TopOpportunities, 1)
	assert.Equal(t, "b", summary.TopOpportunities[0].Review.ReviewID)

	assert.NotEmpty(t, summary.TopWords)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalReviews)
	assert.Equal(t, 0.0, summary.MeanRating)
	assert.Equal(t, 0.0, summary.Churn.MeanScore)
	assert.Equal(t, 0.0, summary.Opportunity.PctHigh)
	assert.Empty(t, summary.TopOpportunities)
	assert.Empty(t, summary.CriticalReviews)
}
