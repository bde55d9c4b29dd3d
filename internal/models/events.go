package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderCreatedEvent is the message streamed to Kafka after an order and its
// items are persisted. Consumers key on OrderID; EventID deduplicates.
type OrderCreatedEvent struct {
	EventID    string      `json:"eventId"`
	OccurredAt time.Time   `json:"occurredAt"`
	Order      Order       `json:"order"`
	Items      []OrderItem `json:"items"`
}

func NewOrderCreatedEvent(detail OrderDetail) OrderCreatedEvent {
	return OrderCreatedEvent{
		EventID:    uuid.New().String(),
		OccurredAt: time.Now().UTC(),
		Order:      detail.Order,
		Items:      detail.Items,
	}
}
