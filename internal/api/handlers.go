package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/spacesedan/reviewpulse/internal/analyzer"
	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/report"
)

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AnalyzeReview scores a single posted review along all three axes.
func (h *Handlers) AnalyzeReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		respondError(w, http.StatusBadRequest, "invalid review payload")
		return
	}

	review.Rating = models.ClampRating(review.Rating)
	respondJSON(w, http.StatusOK, analyzer.Analyze(review))
}

// GetSummary returns the full dataset summary.
func (h *Handlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.summary)
}

// GetChurnSummary returns the churn statistics slice of the summary.
func (h *Handlers) GetChurnSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.summary.Churn)
}

// GetOpportunitySummary returns the opportunity statistics slice of the summary.
func (h *Handlers) GetOpportunitySummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.summary.Opportunity)
}

// GetCategorySummary returns the category distribution.
func (h *Handlers) GetCategorySummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.summary.Categories)
}

// GetTopOpportunities returns the n highest-scoring opportunities, default 10.
func (h *Handlers) GetTopOpportunities(w http.ResponseWriter, r *http.Request) {
	n := 10
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}

	respondJSON(w, http.StatusOK, topOpportunities(h.analyses, n))
}

// topOpportunities reuses the already computed per-review results rather
// than re-scoring the dataset.
func topOpportunities(analyses []models.ReviewAnalysis, n int) []models.ScoredOpportunity {
	scored := make([]models.ScoredOpportunity, 0, len(analyses))
	for _, analysis := range analyses {
		if analysis.Opportunity.OpportunityScore > 0 {
			scored = append(scored, models.ScoredOpportunity{
				Review:      analysis.Review,
				Opportunity: analysis.Opportunity,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Opportunity.OpportunityScore > scored[j].Opportunity.OpportunityScore
	})

	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

// GetReport renders the summary as an HTML report.
func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(report.HTML(h.summary))
}
