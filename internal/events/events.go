// Package events describes catalog change events and publishes them
// through a message broker.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event types emitted after a successful write.
const (
	SupplierCreated = "supplier.created"
	SupplierUpdated = "supplier.updated"
	SupplierDeleted = "supplier.deleted"
	ProductCreated  = "product.created"
	ProductUpdated  = "product.updated"
	ProductDeleted  = "product.deleted"
)

// CatalogEvent is the message body published for every catalog change.
type CatalogEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	EntityID   int64     `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// New builds an event with a fresh identifier.
func New(eventType string, entityID int64) CatalogEvent {
	return CatalogEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher delivers catalog events.
type Publisher interface {
	Publish(event CatalogEvent) error
}

// Sender is the transport a BrokerPublisher writes to. *rabbitmq.Client
// satisfies it.
type Sender interface {
	Publish(messageType string, body []byte) error
}

// BrokerPublisher marshals events to JSON and hands them to a Sender.
type BrokerPublisher struct {
	sender Sender
}

// NewBrokerPublisher creates a new BrokerPublisher.
func NewBrokerPublisher(sender Sender) *BrokerPublisher {
	return &BrokerPublisher{sender: sender}
}

// Publish implements Publisher.
func (p *BrokerPublisher) Publish(event CatalogEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.Type, err)
	}
	if err := p.sender.Publish(event.Type, body); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}
	return nil
}

// Decode parses a message body produced by BrokerPublisher.
func Decode(body []byte) (CatalogEvent, error) {
	var event CatalogEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return CatalogEvent{}, fmt.Errorf("failed to decode event: %w", err)
	}
	if event.Type == "" {
		return CatalogEvent{}, fmt.Errorf("event %q has no type", event.ID)
	}
	return event, nil
}
