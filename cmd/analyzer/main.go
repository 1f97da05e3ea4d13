package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/reviewpulse/config"
	"github.com/spacesedan/reviewpulse/internal/analyzer"
	"github.com/spacesedan/reviewpulse/internal/loader"
	"github.com/spacesedan/reviewpulse/internal/logging"
	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/report"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	var (
		source     = flag.String("source", "csv", "dataset source: csv or dynamodb")
		dataset    = flag.String("dataset", "data/dataset_avaliacoes.csv", "path to the CSV dataset")
		asMarkdown = flag.Bool("markdown", false, "emit the Markdown report instead of JSON")
	)
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var (
		reviews []models.Review
		err     error
	)
	switch *source {
	case "csv":
		reviews, err = loader.LoadCSV(*dataset)
	case "dynamodb":
		reviews, err = loader.LoadDynamoDB(ctx)
	default:
		slog.Error("[Analyzer] Unknown dataset source", slog.String("source", *source))
		os.Exit(1)
	}
	if err != nil {
		slog.Error("[Analyzer] Failed to load dataset",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	analyses := analyzer.AnalyzeAll(ctx, reviews)
	summary := analyzer.Summarize(analyses)

	slog.Info("[Analyzer] Dataset analyzed",
		slog.Int("reviews", summary.TotalReviews),
		slog.Int("high_risk", summary.Churn.HighRisk),
		slog.Int("high_opportunity", summary.Opportunity.HighOpportunity))

	if *asMarkdown {
		os.Stdout.WriteString(report.Markdown(summary))
		return
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		slog.Error("[Analyzer] Failed to encode summary",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
