package utils

import (
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// Maps review IDs to their source Kafka message so offsets can be committed
// once the review's scoring result is published.
var messageMap sync.Map

func TrackMessage(reviewID string, msg *kafka.Message) {
	messageMap.Store(reviewID, msg)
}

func GetMessageForReview(reviewID string) (*kafka.Message, bool) {
	msg, ok := messageMap.Load(reviewID)
	if !ok {
		return nil, false
	}
	messageMap.Delete(reviewID)
	return msg.(*kafka.Message), true
}
