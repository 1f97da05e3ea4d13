package kafka_client

import "time"

const (
	KAFKA_TOPIC_RAW_REVIEWS    = "raw-reviews"    // reviews published by the dataset producer
	KAFKA_TOPIC_REVIEW_RESULTS = "review-results" // batched scoring results
)

const (
	BATCH_SIZE    = 50
	BATCH_TIMEOUT = 5 * time.Second
	MAX_RETRIES   = 5
	RETRY_DELAY   = 2 * time.Second
)
