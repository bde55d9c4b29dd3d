package order

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"ms-concerts/internal/kafka"
	"ms-concerts/internal/models"
)

// KafkaPublisher streams order events to Kafka, keyed by order id.
type KafkaPublisher struct {
	Producer *kafka.Producer
	Topic    string
}

func NewKafkaPublisher(producer *kafka.Producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{Producer: producer, Topic: topic}
}

func (p *KafkaPublisher) PublishOrderCreated(detail models.OrderDetail) error {
	event := models.NewOrderCreatedEvent(detail)
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.Producer.Publish(ctx, p.Topic, strconv.FormatInt(detail.ID, 10), value)
}

// NoopPublisher stands in when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderCreated(models.OrderDetail) error { return nil }
