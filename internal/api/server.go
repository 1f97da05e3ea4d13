// Package api exposes the scoring core and dataset aggregates over HTTP for
// the dashboard.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// Handlers serves on-demand scoring plus the aggregates of the dataset
// loaded at startup. The dataset is immutable once loaded, so no locking is
// needed around it.
type Handlers struct {
	analyses []models.ReviewAnalysis
	summary  models.Summary
}

func NewHandlers(analyses []models.ReviewAnalysis, summary models.Summary) *Handlers {
	return &Handlers{
		analyses: analyses,
		summary:  summary,
	}
}

func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", h.AnalyzeReview)
		r.Get("/summary", h.GetSummary)
		r.Get("/summary/churn", h.GetChurnSummary)
		r.Get("/summary/opportunities", h.GetOpportunitySummary)
		r.Get("/summary/categories", h.GetCategorySummary)
		r.Get("/opportunities/top", h.GetTopOpportunities)
		r.Get("/report", h.GetReport)
	})

	return r
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("[API] Failed to encode response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
