package churn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/reviewpulse/internal/models"
)

func TestDetect_HighRiskClampsAt100(t *testing.T) {
	text := "produto horrível, nunca mais compro, quero processar essa empresa no procon"

	result := Detect(text, 1, models.SentimentNegative)

	// Three high-severity phrases at weight 30 give 90; the 1-star
	// multiplier pushes past the cap.
	assert.Equal(t, 100.0, result.ChurnScore)
	assert.Equal(t, models.RiskHigh, result.RiskLevel)
	assert.True(t, result.IsCritical)
	assert.Equal(t, 3, result.SignalsDetected[models.SeverityHigh])
	assert.Equal(t, []string{"nunca mais", "procon", "horrível"}, result.MainReasons)
}

func TestDetect_EmptyText(t *testing.T) {
	result := Detect("", 1, models.SentimentNegative)

	assert.Equal(t, 0.0, result.ChurnScore)
	assert.Equal(t, models.RiskNone, result.RiskLevel)
	assert.Empty(t, result.ProblemAspects)
	assert.Empty(t, result.MainReasons)
	assert.False(t, result.IsCritical)
}

func TestDetect_ScoreBounded(t *testing.T) {
	// Every phrase of every tier at once.
	var phrases []string
	for _, tier := range churnSignals {
		phrases = append(phrases, tier.Phrases...)
	}
	adversarial := strings.Join(phrases, " ")

	for rating := 1; rating <= 5; rating++ {
		result := Detect(adversarial, rating, models.SentimentNegative)
		assert.LessOrEqual(t, result.ChurnScore, 100.0)
		assert.GreaterOrEqual(t, result.ChurnScore, 0.0)
	}
}

func TestDetect_Monotonic(t *testing.T) {
	base := "não gostei"
	stronger := base + " e foi a pior compra"

	baseScore := Detect(base, 2, models.SentimentNegative).ChurnScore
	strongerScore := Detect(stronger, 2, models.SentimentNegative).ChurnScore

	assert.GreaterOrEqual(t, strongerScore, baseScore)
}

func TestDetect_PositiveHighRatingOverridesScore(t *testing.T) {
	// A churn phrase is present but a positive 5-star review carries no risk.
	result := Detect("teve demora mas adorei", 5, models.SentimentPositive)

	assert.Equal(t, models.RiskNone, result.RiskLevel)
	assert.Greater(t, result.ChurnScore, 0.0)
}

func TestDetect_RiskLevels(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		rating    int
		sentiment models.Sentiment
		expected  models.RiskLevel
	}{
		{
			// Two low signals at rating 3: 10 * 1.2 = 12, medium via the
			// rating-3 rule.
			"medium via rating three rule",
			"teve demora e atraso na entrega",
			3,
			models.SentimentNegative,
			models.RiskMedium,
		},
		{
			// One low signal at rating 4 negative: score 5, low risk.
			"low risk on small score",
			"um pouco de demora",
			4,
			models.SentimentNegative,
			models.RiskLow,
		},
		{
			// No signals but rating 3 still reads as low risk.
			"low risk on middling rating alone",
			"produto razoável",
			3,
			models.SentimentNegative,
			models.RiskLow,
		},
		{
			// One medium signal at rating 2: 15 * 1.5 = 22.5 >= 20, high via
			// the low-rating rule.
			"high via low rating rule",
			"estou muito insatisfeito",
			2,
			models.SentimentNegative,
			models.RiskHigh,
		},
		{
			"no signals and good rating",
			"produto razoável",
			4,
			models.SentimentNegative,
			models.RiskNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Detect(tt.text, tt.rating, tt.sentiment)
			assert.Equal(t, tt.expected, result.RiskLevel)
		})
	}
}

func TestDetect_ProblemAspects(t *testing.T) {
	result := Detect("chegou quebrado e com defeito depois de muito atraso", 1, models.SentimentNegative)

	assert.Equal(t,
		[]models.ProblemAspect{models.AspectQuality, models.AspectDelivery},
		result.ProblemAspects)
}

func TestDetect_MainReasonsCappedAtThree(t *testing.T) {
	result := Detect("péssimo golpe fraude procon cancelei", 1, models.SentimentNegative)

	assert.Len(t, result.MainReasons, 3)
	// Reasons come in table order, not text order.
	assert.Equal(t, []string{"péssimo", "golpe", "fraude"}, result.MainReasons)
}

func TestStatistics(t *testing.T) {
	reviews := []models.Review{
		{Text: "produto horrível, nunca mais compro, fui no procon", Rating: 1, Sentiment: models.SentimentNegative},
		{Text: "teve demora e atraso na entrega", Rating: 3, Sentiment: models.SentimentNegative},
		{Text: "adorei tudo", Rating: 5, Sentiment: models.SentimentPositive},
	}

	stats := Statistics(reviews)

	assert.Equal(t, 3, stats.TotalReviews)
	assert.Equal(t, 1, stats.HighRisk)
	assert.Equal(t, 1, stats.MediumRisk)
	assert.Equal(t, 1, stats.NoRisk)
	assert.InDelta(t, 100.0/3.0, stats.PctHighRisk, 1e-9)
	assert.Greater(t, stats.MeanScore, 0.0)
}

func TestStatistics_EmptyDataset(t *testing.T) {
	stats := Statistics(nil)

	assert.Equal(t, 0, stats.TotalReviews)
	assert.Equal(t, 0.0, stats.MeanScore)
	assert.Equal(t, 0.0, stats.PctHighRisk)
}
