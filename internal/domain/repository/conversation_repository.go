package repository

import (
	"context"

	"messenger/internal/domain/entity"
)

// ConversationRepository persists conversations and their memberships.
type ConversationRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Conversation, error)

	List(ctx context.Context) ([]*entity.Conversation, error)

	Create(ctx context.Context, conversation *entity.Conversation) error

	// AddMember returns ErrAlreadyConversationMember when the pair already exists.
	AddMember(ctx context.Context, member *entity.ConversationMember) error

	ListMembers(ctx context.Context, conversationID int64) ([]*entity.ConversationMember, error)

	IsMember(ctx context.Context, conversationID, userID int64) (bool, error)
}
