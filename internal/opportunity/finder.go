// Package opportunity detects upsell, cross-sell and advocacy signals in
// positive reviews and profiles the customer behind them.
package opportunity

import (
	"math"
	"sort"
	"strings"

	"github.com/spacesedan/reviewpulse/internal/models"
)

type signalGroup struct {
	Signal  models.OpportunitySignal
	Type    models.OpportunityType
	Weight  float64
	Phrases []string
}

var opportunitySignals = []signalGroup{
	{models.SignalUpsell, models.TypeUpsell, 20, []string{
		"vou comprar", "comprarei", "quero comprar", "vou pegar",
		"versão maior", "modelo maior", "próxima compra", "quero outro",
		"precisando de outro", "comprar mais", "já estou de olho",
		"próximo será", "vou trocar por",
	}},
	{models.SignalCrossSell, models.TypeCrossSell, 15, []string{
		"combina com", "agora preciso", "falta só", "vou comprar também",
		"agora falta", "próximo passo", "agora quero", "complementa",
		"junto com", "para acompanhar", "pensando em pegar",
	}},
	{models.SignalLoyalty, models.TypeLoyalty, 25, []string{
		"sempre compro", "cliente fiel", "toda vez", "compro sempre",
		"já é a segunda", "já é o terceiro", "compro todo mês",
		"cliente há anos", "confio", "só compro aqui", "minha marca favorita",
		"não troco", "única loja", "só compro dessa marca",
	}},
	{models.SignalAdvocate, models.TypeAdvocate, 30, []string{
		"indiquei", "recomendo", "recomendei", "toda família", "todos da família",
		"todo mundo", "já indiquei", "super recomendo", "recomendo muito",
		"indico", "todo mundo deveria", "todos deveriam", "melhor que existe",
		"não existe melhor", "compartilhei", "mostrei para", "convenci",
	}},
	{models.SignalExceptional, models.TypeExceptional, 10, []string{
		"superou", "excedeu", "além das expectativas", "melhor que esperado",
		"surpreendeu", "impressionado", "incrível", "perfeito", "impecável",
		"maravilhoso", "sensacional", "fantástico", "excepcional",
	}},
}

const maxScore = 100

// Find scores growth opportunity for one review. Empty text returns the
// zero no-opportunity result. Phrase counts are weighted and summed, then
// high ratings amplify the score (x1.3 for 5 stars, x1.1 for 4) before the
// clamp to 100.
func Find(text string, rating int, sentiment models.Sentiment) models.OpportunityResult {
	if text == "" {
		return noOpportunityResult()
	}

	lower := strings.ToLower(text)

	counts := map[models.OpportunitySignal]int{
		models.SignalUpsell:      0,
		models.SignalCrossSell:   0,
		models.SignalLoyalty:     0,
		models.SignalAdvocate:    0,
		models.SignalExceptional: 0,
	}
	score := 0.0
	for _, group := range opportunitySignals {
		for _, phrase := range group.Phrases {
			if strings.Contains(lower, phrase) {
				counts[group.Signal]++
			}
		}
		score += float64(counts[group.Signal]) * group.Weight
	}

	switch rating {
	case 5:
		score *= 1.3
	case 4:
		score *= 1.1
	}
	score = math.Min(score, maxScore)
	score = math.Round(score*100) / 100

	level := classifyOpportunity(score, rating, sentiment)

	return models.OpportunityResult{
		OpportunityScore: score,
		OpportunityLevel: level,
		OpportunityTypes: identifyTypes(counts),
		CustomerProfile: profileCustomer(
			counts[models.SignalLoyalty],
			counts[models.SignalAdvocate],
			counts[models.SignalExceptional],
		),
		SignalsDetected: counts,
		IsHighValue:     level == models.OpportunityHigh,
	}
}

func noOpportunityResult() models.OpportunityResult {
	return models.OpportunityResult{
		OpportunityScore: 0.0,
		OpportunityLevel: models.OpportunityNone,
		OpportunityTypes: []models.OpportunityType{},
		CustomerProfile:  models.ProfileCommon,
		SignalsDetected: map[models.OpportunitySignal]int{
			models.SignalUpsell:      0,
			models.SignalCrossSell:   0,
			models.SignalLoyalty:     0,
			models.SignalAdvocate:    0,
			models.SignalExceptional: 0,
		},
	}
}

// classifyOpportunity applies the precedence rules; the first matching rule
// wins. Negative sentiment or fewer than four stars disqualifies the review
// outright.
func classifyOpportunity(score float64, rating int, sentiment models.Sentiment) models.OpportunityLevel {
	if sentiment == models.SentimentNegative || rating < 4 {
		return models.OpportunityNone
	}

	switch {
	case score >= 50 || (rating == 5 && score >= 30):
		return models.OpportunityHigh
	case score >= 25 || (rating == 5 && score >= 15):
		return models.OpportunityMedium
	case score > 0:
		return models.OpportunityLow
	default:
		return models.OpportunityNone
	}
}

// identifyTypes returns the opportunity types whose signal count is positive,
// in signal-table order.
func identifyTypes(counts map[models.OpportunitySignal]int) []models.OpportunityType {
	types := []models.OpportunityType{}
	for _, group := range opportunitySignals {
		if counts[group.Signal] > 0 {
			types = append(types, group.Type)
		}
	}
	return types
}

// profileCustomer tags the customer from the loyalty, advocacy and
// exceptional-satisfaction counts; the first matching rule wins.
func profileCustomer(loyalty, advocate, exceptional int) models.CustomerProfile {
	switch {
	case advocate >= 2 || (advocate >= 1 && loyalty >= 1):
		return models.ProfileAdvocate
	case loyalty >= 2 || (loyalty >= 1 && exceptional >= 1):
		return models.ProfileLoyal
	case exceptional >= 2:
		return models.ProfileHighlySatisfied
	case loyalty+advocate+exceptional > 0:
		return models.ProfileSatisfied
	default:
		return models.ProfileCommon
	}
}

// Statistics reduces Find over a whole dataset. An empty dataset yields zero
// counts and a zero mean, never a division by zero.
func Statistics(reviews []models.Review) models.OpportunityStatistics {
	stats := models.OpportunityStatistics{TotalReviews: len(reviews)}
	if len(reviews) == 0 {
		return stats
	}

	var scoreSum float64
	for _, review := range reviews {
		result := Find(review.Text, review.Rating, review.Sentiment)
		scoreSum += result.OpportunityScore
		switch result.OpportunityLevel {
		case models.OpportunityHigh:
			stats.HighOpportunity++
		case models.OpportunityMedium:
			stats.MediumOpportunity++
		case models.OpportunityLow:
			stats.LowOpportunity++
		case models.OpportunityNone:
			stats.NoOpportunity++
		}
		switch result.CustomerProfile {
		case models.ProfileAdvocate:
			stats.BrandAdvocates++
		case models.ProfileLoyal:
			stats.LoyalCustomers++
		}
	}

	total := float64(len(reviews))
	stats.PctHigh = float64(stats.HighOpportunity) / total * 100
	stats.MeanScore = scoreSum / total

	return stats
}

// TopOpportunities returns the n highest-scoring reviews with a positive
// opportunity score. The sort is stable, so ties keep dataset order.
func TopOpportunities(reviews []models.Review, n int) []models.ScoredOpportunity {
	scored := make([]models.ScoredOpportunity, 0, len(reviews))
	for _, review := range reviews {
		result := Find(review.Text, review.Rating, review.Sentiment)
		if result.OpportunityScore > 0 {
			scored = append(scored, models.ScoredOpportunity{
				Review:      review,
				Opportunity: result,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Opportunity.OpportunityScore > scored[j].Opportunity.OpportunityScore
	})

	if n > 0 && len(scored) > n {
		scored = scored[:n]
	}
	return scored
}
