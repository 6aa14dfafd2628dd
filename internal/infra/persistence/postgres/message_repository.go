package postgres

import (
	"context"

	"messenger/internal/domain/entity"
	domainerrors "messenger/internal/domain/errors"
	"messenger/internal/domain/repository"
	"messenger/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	msgM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(msgM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WithDetails("sender, recipient or conversation does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("message needs exactly one recipient or conversation")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = msgM.ID
	message.CreatedAt = msgM.CreatedAt

	return nil
}

func (repo *messageRepository) ListReceivedBy(ctx context.Context, recipientID int64) ([]*entity.Message, error) {
	return repo.list(ctx, "failed to list received messages", "recipient_id = ?", recipientID)
}

func (repo *messageRepository) ListSentBy(ctx context.Context, senderID int64) ([]*entity.Message, error) {
	return repo.list(ctx, "failed to list sent messages", "sender_id = ? AND recipient_id IS NOT NULL", senderID)
}

func (repo *messageRepository) ListByConversation(ctx context.Context, conversationID int64) ([]*entity.Message, error) {
	return repo.list(ctx, "failed to list conversation messages", "conversation_id = ?", conversationID)
}

func (repo *messageRepository) list(ctx context.Context, details string, query string, args ...any) ([]*entity.Message, error) {
	var rows []model.MessageModel
	if err := repo.db.WithContext(ctx).Where(query, args...).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	messages := make([]*entity.Message, 0, len(rows))
	for i := range rows {
		messages = append(messages, toMessageDomain(&rows[i]))
	}

	return messages, nil
}

func toMessageDomain(data *model.MessageModel) *entity.Message {
	return &entity.Message{
		ID:             data.ID,
		Text:           data.Text,
		SenderID:       data.SenderID,
		RecipientID:    data.RecipientID,
		ConversationID: data.ConversationID,
		CreatedAt:      data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	return &model.MessageModel{
		ID:             data.ID,
		Text:           data.Text,
		SenderID:       data.SenderID,
		RecipientID:    data.RecipientID,
		ConversationID: data.ConversationID,
		CreatedAt:      data.CreatedAt,
	}
}
