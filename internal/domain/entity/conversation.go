package entity

import "time"

// Conversation is a multi-user thread. Members are tracked separately.
type Conversation struct {
	ID        int64
	CreatedAt time.Time
}

// ConversationMember links a user to a conversation.
type ConversationMember struct {
	ConversationID int64
	UserID         int64
	JoinedAt       time.Time
}
