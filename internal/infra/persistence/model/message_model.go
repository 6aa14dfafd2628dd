package model

import "time"

// MessageModel mirrors the 'messages' table. Exactly one of RecipientID and ConversationID is set.
type MessageModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Text           string    `gorm:"type:varchar(65535);not null"`
	SenderID       int64     `gorm:"not null;index"`
	RecipientID    *int64    `gorm:"index"`
	ConversationID *int64    `gorm:"index;check:chk_messages_target,(recipient_id IS NULL) <> (conversation_id IS NULL)"`
	CreatedAt      time.Time `gorm:"not null"`

	Sender       *UserModel         `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Recipient    *UserModel         `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
	Conversation *ConversationModel `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

func (MessageModel) TableName() string {
	return "messages"
}
