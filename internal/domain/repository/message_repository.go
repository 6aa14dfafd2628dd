package repository

import (
	"context"

	"messenger/internal/domain/entity"
)

// MessageRepository persists direct and conversation messages.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// ListReceivedBy returns direct messages addressed to the user, oldest first.
	ListReceivedBy(ctx context.Context, recipientID int64) ([]*entity.Message, error)

	// ListSentBy returns direct messages sent by the user, oldest first.
	ListSentBy(ctx context.Context, senderID int64) ([]*entity.Message, error)

	ListByConversation(ctx context.Context, conversationID int64) ([]*entity.Message, error)
}
