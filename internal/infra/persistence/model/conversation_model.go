package model

import "time"

// ConversationModel mirrors the 'conversations' table.
type ConversationModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null"`

	Members []ConversationMemberModel `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

func (ConversationModel) TableName() string {
	return "conversations"
}

// ConversationMemberModel mirrors the 'conversation_members' join table.
type ConversationMemberModel struct {
	ConversationID int64     `gorm:"primaryKey"`
	UserID         int64     `gorm:"primaryKey;index"`
	JoinedAt       time.Time `gorm:"not null;autoCreateTime"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (ConversationMemberModel) TableName() string {
	return "conversation_members"
}
