package usecase

import (
	"context"

	"messenger/internal/domain/entity"
)

// MessageUsecase handles user-to-user messages.
type MessageUsecase interface {
	// Inbox returns the direct messages addressed to the caller.
	Inbox(ctx context.Context, actor Actor) ([]*entity.Message, error)

	// SendDirect sends text from the caller to recipientID.
	SendDirect(ctx context.Context, actor Actor, recipientID int64, text string) (*entity.Message, error)

	// ListSentBy returns the direct messages sent by userID. Self or Admin only.
	ListSentBy(ctx context.Context, actor Actor, userID int64) ([]*entity.Message, error)
}
