package usecase

import (
	"context"

	"messenger/internal/domain/entity"
)

// ConversationUsecase manages multi-user conversations and their messages.
type ConversationUsecase interface {
	List(ctx context.Context) ([]*entity.Conversation, error)

	// Create opens an empty conversation with the caller as its first member.
	Create(ctx context.Context, actor Actor) (*entity.Conversation, error)

	ListMembers(ctx context.Context, conversationID int64) ([]*entity.ConversationMember, error)

	// AddMember adds userID. The caller must be a member or an Admin.
	AddMember(ctx context.Context, actor Actor, conversationID, userID int64) (*entity.Conversation, error)

	ListMessages(ctx context.Context, actor Actor, conversationID int64) ([]*entity.Message, error)

	// PostMessage sends text to the conversation. The caller must be a member.
	PostMessage(ctx context.Context, actor Actor, conversationID int64, text string) (*entity.Message, error)
}
