package entity

import "time"

// MaxMessageLength bounds the text of a single message.
const MaxMessageLength = 65535

// Message is either a direct message (RecipientID set) or a conversation message (ConversationID set).
type Message struct {
	ID             int64
	Text           string
	SenderID       int64
	RecipientID    *int64
	ConversationID *int64
	CreatedAt      time.Time
}

// IsDirect reports whether the message was sent to a single user.
func (m *Message) IsDirect() bool {
	return m.RecipientID != nil
}
