package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/spacesedan/reviewpulse/config"
	"github.com/spacesedan/reviewpulse/internal/clients/kafka_client"
	"github.com/spacesedan/reviewpulse/internal/loader"
	"github.com/spacesedan/reviewpulse/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	dataset := flag.String("dataset", "data/dataset_avaliacoes.csv", "path to the CSV dataset")
	flag.Parse()

	cfg := kafka_client.GetKafkaConfig()
	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseProducer()

	reviews, err := loader.LoadCSV(*dataset)
	if err != nil {
		slog.Error("[Producer] Failed to load dataset",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	published := 0
	for _, review := range reviews {
		if err := kafka_client.PublishToKafka(
			kafka_client.KAFKA_TOPIC_RAW_REVIEWS, review.ReviewID, review); err != nil {
			slog.Error("[Producer] Failed to publish review",
				slog.String("review_id", review.ReviewID),
				slog.String("error", err.Error()))
			continue
		}
		published++
	}

	slog.Info("[Producer] Dataset published",
		slog.Int("published", published),
		slog.Int("total", len(reviews)))
}
