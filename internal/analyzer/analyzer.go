// Package analyzer runs every scorer over a review and reduces whole
// datasets into the summary the dashboard consumes.
package analyzer

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strconv"
	"sync"

	"github.com/spacesedan/reviewpulse/internal/category"
	"github.com/spacesedan/reviewpulse/internal/churn"
	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/opportunity"
	"github.com/spacesedan/reviewpulse/internal/preprocessing"
)

const (
	maxCriticalReviews = 10
	maxTopWords        = 25
	defaultTopN        = 10
)

// Analyze cleans the review text once and runs the three scorers over the
// cleaned text. The scorers never see each other's output.
func Analyze(review models.Review) models.ReviewAnalysis {
	cleaned := preprocessing.Clean(review.Text)

	return models.ReviewAnalysis{
		Review:      review,
		CleanedText: cleaned,
		Category:    category.Classify(cleaned),
		Churn:       churn.Detect(cleaned, review.Rating, review.Sentiment),
		Opportunity: opportunity.Find(cleaned, review.Rating, review.Sentiment),
	}
}

// AnalyzeAll fans reviews out over a worker pool and writes each result to
// its own slot of a preallocated slice, so dataset order is preserved with
// no coordination beyond the WaitGroup. Rows are independent; the only
// shared state is the read-only keyword tables.
func AnalyzeAll(ctx context.Context, reviews []models.Review) []models.ReviewAnalysis {
	results := make([]models.ReviewAnalysis, len(reviews))
	if len(reviews) == 0 {
		return results
	}

	workers := workerCount()
	if workers > len(reviews) {
		workers = len(reviews)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = Analyze(reviews[i])
			}
		}()
	}

	for i := range reviews {
		select {
		case <-ctx.Done():
			slog.Warn("[Analyzer] Context cancelled, stopping batch analysis")
			close(jobs)
			wg.Wait()
			return results
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func workerCount() int {
	if raw := os.Getenv("ANALYZER_WORKERS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
		slog.Warn("[Analyzer] Invalid ANALYZER_WORKERS value, using GOMAXPROCS",
			slog.String("value", raw))
	}
	return runtime.GOMAXPROCS(0)
}

// Summarize reduces a batch of per-review analyses into the dataset summary.
// An empty batch yields zero counts, never a division by zero.
func Summarize(analyses []models.ReviewAnalysis) models.Summary {
	summary := models.Summary{
		TotalReviews:     len(analyses),
		RatingHistogram:  make(map[int]int),
		SentimentCounts:  make(map[models.Sentiment]int),
		Categories:       make(map[string]int),
		TopOpportunities: []models.ScoredOpportunity{},
		CriticalReviews:  []models.ReviewAnalysis{},
		Emojis:           []string{},
	}
	summary.Churn.TotalReviews = len(analyses)
	summary.Opportunity.TotalReviews = len(analyses)

	if len(analyses) == 0 {
		return summary
	}

	var (
		ratingSum       int
		confidenceSum   float64
		churnScoreSum   float64
		opportunitySum  float64
		cleanedTexts    = make([]string, 0, len(analyses))
		allOpportunites = make([]models.ScoredOpportunity, 0, len(analyses))
	)

	for _, analysis := range analyses {
		ratingSum += analysis.Rating
		summary.RatingHistogram[analysis.Rating]++
		summary.SentimentCounts[analysis.Sentiment]++
		summary.Categories[analysis.Category.Category]++
		confidenceSum += analysis.Category.Confidence
		cleanedTexts = append(cleanedTexts, analysis.CleanedText)

		churnScoreSum += analysis.Churn.ChurnScore
		switch analysis.Churn.RiskLevel {
		case models.RiskHigh:
			summary.Churn.HighRisk++
		case models.RiskMedium:
			summary.Churn.MediumRisk++
		case models.RiskLow:
			summary.Churn.LowRisk++
		case models.RiskNone:
			summary.Churn.NoRisk++
		}
		if analysis.Churn.IsCritical && len(summary.CriticalReviews) < maxCriticalReviews {
			summary.CriticalReviews = append(summary.CriticalReviews, analysis)
		}

		opportunitySum += analysis.Opportunity.OpportunityScore
		switch analysis.Opportunity.OpportunityLevel {
		case models.OpportunityHigh:
			summary.Opportunity.HighOpportunity++
		case models.OpportunityMedium:
			summary.Opportunity.MediumOpportunity++
		case models.OpportunityLow:
			summary.Opportunity.LowOpportunity++
		case models.OpportunityNone:
			summary.Opportunity.NoOpportunity++
		}
		switch analysis.Opportunity.CustomerProfile {
		case models.ProfileAdvocate:
			summary.Opportunity.BrandAdvocates++
		case models.ProfileLoyal:
			summary.Opportunity.LoyalCustomers++
		}

		if analysis.Opportunity.OpportunityScore > 0 {
			allOpportunites = append(allOpportunites, models.ScoredOpportunity{
				Review:      analysis.Review,
				Opportunity: analysis.Opportunity,
			})
		}

		summary.Emojis = append(summary.Emojis, preprocessing.ExtractEmojis(analysis.Text)...)
	}

	total := float64(len(analyses))
	summary.MeanRating = float64(ratingSum) / total
	summary.MeanConfidence = confidenceSum / total
	summary.Churn.MeanScore = churnScoreSum / total
	summary.Churn.PctHighRisk = float64(summary.Churn.HighRisk) / total * 100
	summary.Churn.PctMediumRisk = float64(summary.Churn.MediumRisk) / total * 100
	summary.Opportunity.MeanScore = opportunitySum / total
	summary.Opportunity.PctHigh = float64(summary.Opportunity.HighOpportunity) / total * 100

	sort.SliceStable(allOpportunites, func(i, j int) bool {
		return allOpportunites[i].Opportunity.OpportunityScore > allOpportunites[j].Opportunity.OpportunityScore
	})
	if len(allOpportunites) > defaultTopN {
		allOpportunites = allOpportunites[:defaultTopN]
	}
	summary.TopOpportunities = allOpportunites

	summary.TopWords = preprocessing.WordFrequencies(cleanedTexts, maxTopWords)

	return summary
}
