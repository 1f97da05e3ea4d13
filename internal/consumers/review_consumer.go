// Package consumers holds the Kafka consumer loops of the scoring pipeline.
package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/spacesedan/reviewpulse/internal/analyzer"
	"github.com/spacesedan/reviewpulse/internal/clients"
	"github.com/spacesedan/reviewpulse/internal/clients/kafka_client"
	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/utils"
)

var resultBuffer = utils.NewBatchBuffer[models.ReviewAnalysis]()

// StartReviewConsumer consumes raw reviews, scores each one along the three
// axes and publishes result batches. Review IDs already present in the
// Valkey processed set are skipped, so replays never double-count.
func StartReviewConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)
	valkeyClient := clients.GetValkeyClient()

	ticker := time.NewTicker(kafka_client.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[ReviewConsumer] Consumer shutting down...")
			publishResults(ctx, committer, valkeyClient)
			return
		case <-ticker.C:
			publishResults(ctx, committer, valkeyClient)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var review models.Review
			if err := utils.DeserializeFromJSON(msg.Value, &review); err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			if valkeyClient.IsReviewProcessed(ctx, review.ReviewID) {
				slog.Info("[ReviewConsumer] Skipping already processed review",
					slog.String("review_id", review.ReviewID))
				if err := committer.Commit(msg); err != nil {
					slog.Warn("[ReviewConsumer] Failed to commit skipped offset",
						slog.String("error", err.Error()))
				}
				continue
			}

			utils.TrackMessage(review.ReviewID, msg)
			resultBuffer.Add(analyzer.Analyze(review))

			if resultBuffer.Size() >= kafka_client.BATCH_SIZE {
				publishResults(ctx, committer, valkeyClient)
			}
		}
	}
}

func publishResults(ctx context.Context, committer *kafka_client.CommitHandler, valkeyClient *clients.ValkeyClient) {
	batch := resultBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	var publishErr error
	for i := 0; i < 3; i++ {
		publishErr = kafka_client.PublishToKafka(
			kafka_client.KAFKA_TOPIC_REVIEW_RESULTS, batch[0].ReviewID, batch)
		if publishErr == nil {
			break
		}
		slog.Warn("[ReviewConsumer] Batch publishing failed",
			slog.Int("attempt", i+1),
			slog.String("error", publishErr.Error()))
		time.Sleep(2 * time.Second)
	}
	if publishErr != nil {
		slog.Error("[ReviewConsumer] Dropping batch after repeated publish failures",
			slog.Int("batch_size", len(batch)),
			slog.String("error", publishErr.Error()))
		return
	}

	for _, analysis := range batch {
		if err := valkeyClient.MarkReviewProcessed(ctx, analysis.ReviewID); err != nil {
			slog.Warn("[ReviewConsumer] Failed to mark review as processed",
				slog.String("review_id", analysis.ReviewID),
				slog.String("error", err.Error()))
		}

		msg, found := utils.GetMessageForReview(analysis.ReviewID)
		if found {
			if err := committer.Commit(msg); err != nil {
				slog.Warn("[ReviewConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}
