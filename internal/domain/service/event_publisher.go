package service

import (
	"context"
	"time"
)

// MessageEvent is emitted after a message has been committed.
type MessageEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	MessageID      int64     `json:"message_id"`
	SenderID       int64     `json:"sender_id"`
	RecipientID    *int64    `json:"recipient_id,omitempty"`
	ConversationID *int64    `json:"conversation_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMessageEvent publishes a message event for async fan-out
	PublishMessageEvent(ctx context.Context, event *MessageEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
