// Package loader reads review datasets from CSV files or a DynamoDB table.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// Required dataset columns. An optional review_id column is honored when
// present; otherwise IDs are generated.
const (
	columnText      = "avaliacao"
	columnRating    = "nota"
	columnSentiment = "sentimento"
	columnReviewID  = "review_id"
)

// LoadCSV reads a review dataset from a CSV file with a header row. Rows
// with an unparseable rating are skipped with a warning rather than failing
// the whole load; out-of-range ratings are clamped to 1-5.
func LoadCSV(path string) ([]models.Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("[Loader] Failed to open dataset: %w", err)
	}
	defer f.Close()

	reviews, err := ParseCSV(f)
	if err != nil {
		return nil, err
	}

	slog.Info("[Loader] Dataset loaded",
		slog.String("path", path),
		slog.Int("reviews", len(reviews)))
	return reviews, nil
}

// ParseCSV decodes reviews from CSV data.
func ParseCSV(r io.Reader) ([]models.Review, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("[Loader] Failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{columnText, columnRating, columnSentiment} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("[Loader] Dataset is missing required column %q", required)
		}
	}

	var reviews []models.Review
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("[Loader] Failed to read CSV record at line %d: %w", line, err)
		}

		rating, err := strconv.Atoi(strings.TrimSpace(field(record, columns[columnRating])))
		if err != nil {
			slog.Warn("[Loader] Skipping row with unparseable rating",
				slog.Int("line", line),
				slog.String("error", err.Error()))
			continue
		}

		reviewID := ""
		if idx, ok := columns[columnReviewID]; ok {
			reviewID = strings.TrimSpace(field(record, idx))
		}
		if reviewID == "" {
			reviewID = uuid.NewString()
		}

		reviews = append(reviews, models.Review{
			ReviewID:  reviewID,
			Text:      field(record, columns[columnText]),
			Rating:    models.ClampRating(rating),
			Sentiment: models.Sentiment(strings.TrimSpace(field(record, columns[columnSentiment]))),
		})
	}

	return reviews, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
