package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/reviewpulse/config"
	"github.com/spacesedan/reviewpulse/internal/analyzer"
	"github.com/spacesedan/reviewpulse/internal/api"
	"github.com/spacesedan/reviewpulse/internal/loader"
	"github.com/spacesedan/reviewpulse/internal/logging"
	"github.com/spacesedan/reviewpulse/internal/models"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	var (
		source  = flag.String("source", "csv", "dataset source: csv or dynamodb")
		dataset = flag.String("dataset", "data/dataset_avaliacoes.csv", "path to the CSV dataset")
		addr    = flag.String("addr", ":8080", "listen address")
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
		slog.Error("[API] Unknown dataset source", slog.String("source", *source))
		os.Exit(1)
	}
	if err != nil {
		slog.Error("[API] Failed to load dataset",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	analyses := analyzer.AnalyzeAll(ctx, reviews)
	summary := analyzer.Summarize(analyses)
	handlers := api.NewHandlers(analyses, summary)

	server := &http.Server{
		Addr:         *addr,
		Handler:      handlers.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("[API] Listening...", slog.String("addr", *addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[API] Server failed",
				slog.String("error", err.Error()))
			cancel()
		}
	}()

	<-ctx.Done()

	slog.Info("[API] Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("[API] Shutdown failed",
			slog.String("error", err.Error()))
	}
}
