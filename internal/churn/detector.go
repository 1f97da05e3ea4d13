// Package churn scores how likely a reviewer is to stop buying, from
// negative-signal phrase density, the star rating and the sentiment label.
package churn

import (
	"math"
	"strings"

	"github.com/spacesedan/reviewpulse/internal/models"
)

type signalTier struct {
	Severity models.Severity
	Weight   float64
	Phrases  []string
}

// Tier order doubles as the extraction order for main reasons: high-severity
// phrases are collected before medium, medium before low.
var churnSignals = []signalTier{
	{models.SeverityHigh, 30, []string{
		"nunca mais", "não compro", "não volto", "péssimo", "golpe",
		"fraude", "processarei", "procon", "juizado", "reclame aqui",
		"cancelei", "devolvi", "não recomendo", "horrível", "lixo",
		"pior compra", "arrependimento total", "dinheiro jogado fora",
	}},
	{models.SeverityMedium, 15, []string{
		"decepcionado", "decepção", "arrependido", "arrependimento",
		"não vale", "não recomendo", "insatisfeito", "frustrado",
		"esperava mais", "propaganda enganosa", "mentira", "enganação",
		"não presta", "muito ruim", "mal feito",
	}},
	{models.SeverityLow, 5, []string{
		"poderia ser melhor", "esperava mais", "deixou a desejar",
		"não é o que parece", "não gostei", "não atendeu",
		"demora", "demorado", "atraso", "atrasado",
	}},
}

var problemAspects = []struct {
	Aspect   models.ProblemAspect
	Keywords []string
}{
	{models.AspectQuality, []string{
		"quebrou", "defeito", "quebrado", "estragou", "não funciona",
		"parou de funcionar", "ruim", "fraco", "frágil", "mal feito",
	}},
	{models.AspectDelivery, []string{
		"não chegou", "não recebi", "atraso", "demora", "perdido",
		"extraviado", "atrasado", "prazo", "não entregaram",
	}},
	{models.AspectService, []string{
		"não respondem", "mal atendido", "grosseiro", "não resolve",
		"não ajuda", "ignoram", "não atende", "péssimo atendimento",
	}},
	{models.AspectPrice, []string{
		"caro demais", "muito caro", "não vale o preço", "superfaturado",
		"abuso", "preço abusivo", "cobrou a mais",
	}},
}

const (
	maxScore       = 100
	maxMainReasons = 3
)

// Detect scores churn risk for one review. Empty text returns the zero
// no-risk result. Each phrase counts once no matter how often it repeats,
// the weighted sum is clamped to 100, then low ratings amplify it (x1.5 for
// 1-2 stars, x1.2 for 3) with a second clamp.
func Detect(text string, rating int, sentiment models.Sentiment) models.ChurnResult {
	if text == "" {
		return noRiskResult()
	}

	lower := strings.ToLower(text)

	counts := map[models.Severity]int{
		models.SeverityHigh:   0,
		models.SeverityMedium: 0,
		models.SeverityLow:    0,
	}
	score := 0.0
	for _, tier := range churnSignals {
		for _, phrase := range tier.Phrases {
			if strings.Contains(lower, phrase) {
				counts[tier.Severity]++
			}
		}
		score += float64(counts[tier.Severity]) * tier.Weight
	}
	score = math.Min(score, maxScore)

	switch {
	case rating <= 2:
		score *= 1.5
	case rating == 3:
		score *= 1.2
	}
	score = math.Min(score, maxScore)
	score = math.Round(score*100) / 100

	riskLevel := classifyRisk(score, rating, sentiment)

	return models.ChurnResult{
		ChurnScore:      score,
		RiskLevel:       riskLevel,
		ProblemAspects:  detectProblemAspects(lower),
		MainReasons:     extractMainReasons(lower),
		SignalsDetected: counts,
		IsCritical:      riskLevel == models.RiskHigh,
	}
}

func noRiskResult() models.ChurnResult {
	return models.ChurnResult{
		ChurnScore:     0.0,
		RiskLevel:      models.RiskNone,
		ProblemAspects: []models.ProblemAspect{},
		MainReasons:    []string{},
		SignalsDetected: map[models.Severity]int{
			models.SeverityHigh:   0,
			models.SeverityMedium: 0,
			models.SeverityLow:    0,
		},
	}
}

// classifyRisk applies the precedence rules; the first matching rule wins.
// A positive review with four or more stars never carries risk, whatever
// the score says.
func classifyRisk(score float64, rating int, sentiment models.Sentiment) models.RiskLevel {
	if sentiment == models.SentimentPositive && rating >= 4 {
		return models.RiskNone
	}

	switch {
	case score >= 40 || (rating <= 2 && score >= 20):
		return models.RiskHigh
	case score >= 20 || (rating == 3 && score >= 10):
		return models.RiskMedium
	case score > 0 || rating <= 3:
		return models.RiskLow
	default:
		return models.RiskNone
	}
}

func detectProblemAspects(lower string) []models.ProblemAspect {
	aspects := []models.ProblemAspect{}
	for _, entry := range problemAspects {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				aspects = append(aspects, entry.Aspect)
				break
			}
		}
	}
	return aspects
}

// extractMainReasons walks the tiers in severity order collecting matched
// phrases until three are found.
func extractMainReasons(lower string) []string {
	reasons := []string{}
	for _, tier := range churnSignals {
		for _, phrase := range tier.Phrases {
			if strings.Contains(lower, phrase) {
				reasons = append(reasons, phrase)
				if len(reasons) == maxMainReasons {
					return reasons
				}
			}
		}
	}
	return reasons
}

// Statistics reduces Detect over a whole dataset. An empty dataset yields
// zero counts and a zero mean, never a division by zero.
func Statistics(reviews []models.Review) models.ChurnStatistics {
	stats := models.ChurnStatistics{TotalReviews: len(reviews)}
	if len(reviews) == 0 {
		return stats
	}

	var scoreSum float64
	for _, review := range reviews {
		result := Detect(review.Text, review.Rating, review.Sentiment)
		scoreSum += result.ChurnScore
		switch result.RiskLevel {
		case models.RiskHigh:
			stats.HighRisk++
		case models.RiskMedium:
			stats.MediumRisk++
		case models.RiskLow:
			stats.LowRisk++
		case models.RiskNone:
			stats.NoRisk++
		}
	}

	total := float64(len(reviews))
	stats.PctHighRisk = float64(stats.HighRisk) / total * 100
	stats.PctMediumRisk = float64(stats.MediumRisk) / total * 100
	stats.MeanScore = scoreSum / total

	return stats
}
