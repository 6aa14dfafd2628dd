package postgres

import (
	"context"

	"messenger/internal/domain/entity"
	domainerrors "messenger/internal/domain/errors"
	"messenger/internal/domain/repository"
	"messenger/internal/errors"
	"messenger/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

func (repo *conversationRepository) FindByID(ctx context.Context, id int64) (*entity.Conversation, error) {
	var convM model.ConversationModel
	if err := repo.db.WithContext(ctx).First(&convM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find conversation")
	}

	return toConversationDomain(&convM), nil
}

func (repo *conversationRepository) List(ctx context.Context) ([]*entity.Conversation, error) {
	var rows []model.ConversationModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list conversations")
	}

	conversations := make([]*entity.Conversation, 0, len(rows))
	for i := range rows {
		conversations = append(conversations, toConversationDomain(&rows[i]))
	}

	return conversations, nil
}

func (repo *conversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	convM := &model.ConversationModel{CreatedAt: conversation.CreatedAt}
	if err := repo.db.WithContext(ctx).Create(convM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create conversation")
	}

	conversation.ID = convM.ID
	conversation.CreatedAt = convM.CreatedAt

	return nil
}

func (repo *conversationRepository) AddMember(ctx context.Context, member *entity.ConversationMember) error {
	memberM := &model.ConversationMemberModel{
		ConversationID: member.ConversationID,
		UserID:         member.UserID,
		JoinedAt:       member.JoinedAt,
	}

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyConversationMember
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WithDetails("conversation or user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add conversation member")
	}

	member.JoinedAt = memberM.JoinedAt

	return nil
}

func (repo *conversationRepository) ListMembers(ctx context.Context, conversationID int64) ([]*entity.ConversationMember, error) {
	var rows []model.ConversationMemberModel
	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("joined_at, user_id").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list conversation members")
	}

	members := make([]*entity.ConversationMember, 0, len(rows))
	for _, row := range rows {
		members = append(members, &entity.ConversationMember{
			ConversationID: row.ConversationID,
			UserID:         row.UserID,
			JoinedAt:       row.JoinedAt,
		})
	}

	return members, nil
}

func (repo *conversationRepository) IsMember(ctx context.Context, conversationID, userID int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ConversationMemberModel{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check conversation membership")
	}

	return count > 0, nil
}

func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	return &entity.Conversation{
		ID:        data.ID,
		CreatedAt: data.CreatedAt,
	}
}
