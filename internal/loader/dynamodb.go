package loader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/spacesedan/reviewpulse/internal/clients"
	"github.com/spacesedan/reviewpulse/internal/models"
)

const REVIEWS_TABLE_NAME = "Reviews"

// reviewItem is the DynamoDB shape of a stored review row.
type reviewItem struct {
	ReviewID  string `dynamodbav:"review_id"`
	Text      string `dynamodbav:"avaliacao"`
	Rating    int    `dynamodbav:"nota"`
	Sentiment string `dynamodbav:"sentimento"`
}

// LoadDynamoDB scans the Reviews table and returns every stored review,
// paging until the scan is exhausted. Ratings are clamped like every other
// ingestion path.
func LoadDynamoDB(ctx context.Context) ([]models.Review, error) {
	dbClient := clients.GetDynamoDBClient()

	var reviews []models.Review

	input := &dynamodb.ScanInput{TableName: aws.String(REVIEWS_TABLE_NAME)}
	for {
		select {
		case <-ctx.Done():
			slog.Warn("[Loader] Context cancelled during DynamoDB scan")
			return nil, ctx.Err()
		default:
		}

		out, err := dbClient.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("[Loader] Failed to scan reviews table: %w", err)
		}

		var items []reviewItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("[Loader] Failed to unmarshal review items: %w", err)
		}

		for _, item := range items {
			reviews = append(reviews, models.Review{
				ReviewID:  item.ReviewID,
				Text:      item.Text,
				Rating:    models.ClampRating(item.Rating),
				Sentiment: models.Sentiment(item.Sentiment),
			})
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	slog.Info("[Loader] Reviews loaded from DynamoDB",
		slog.Int("reviews", len(reviews)))
	return reviews, nil
}
