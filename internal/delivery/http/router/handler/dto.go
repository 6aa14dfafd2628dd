package handler

import (
	"time"

	"messenger/internal/domain/entity"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=3,max=255,letterdigit"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=3,max=255,letterdigit"`
	Role     string `json:"role" validate:"omitempty,oneof=User Admin"`
}

// UpdateUserRequest leaves absent fields unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=3,max=255"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=3,max=255,letterdigit"`
	Role     *string `json:"role" validate:"omitempty,oneof=User Admin"`
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=65535"`
}

type AddMemberRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
}

// UserResponse never exposes the password verifier.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

type MessageResponse struct {
	ID             int64     `json:"id"`
	Text           string    `json:"text"`
	SenderID       int64     `json:"senderId"`
	RecipientID    *int64    `json:"recipientId,omitempty"`
	ConversationID *int64    `json:"conversationId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ConversationResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type MemberResponse struct {
	UserID int64 `json:"userId"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  entity.RoleOrDefault(user.Role).String(),
	}
}

func toUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

func toMessageResponse(msg *entity.Message) MessageResponse {
	return MessageResponse{
		ID:             msg.ID,
		Text:           msg.Text,
		SenderID:       msg.SenderID,
		RecipientID:    msg.RecipientID,
		ConversationID: msg.ConversationID,
		CreatedAt:      msg.CreatedAt,
	}
}

func toMessageResponses(messages []*entity.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, toMessageResponse(msg))
	}

	return out
}

func toConversationResponse(conversation *entity.Conversation) ConversationResponse {
	return ConversationResponse{ID: conversation.ID, CreatedAt: conversation.CreatedAt}
}
