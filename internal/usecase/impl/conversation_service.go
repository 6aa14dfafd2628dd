package impl

import (
	"context"
	"log/slog"

	deliverycontext "messenger/internal/delivery/context"
	"messenger/internal/domain/entity"
	domainerrors "messenger/internal/domain/errors"
	"messenger/internal/domain/repository"
	"messenger/internal/domain/service"
	"messenger/internal/errors"
	"messenger/internal/usecase"

	"go.uber.org/fx"
)

type conversationService struct {
	txManager   repository.TransactionManager
	convRepo    repository.ConversationRepository
	messageRepo repository.MessageRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// ConversationServiceParams holds dependencies for ConversationService, injected by Fx.
type ConversationServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ConvRepo    repository.ConversationRepository
	MessageRepo repository.MessageRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewConversationService is the constructor for conversationService.
func NewConversationService(params ConversationServiceParams) usecase.ConversationUsecase {
	return &conversationService{
		txManager:   params.TxManager,
		convRepo:    params.ConvRepo,
		messageRepo: params.MessageRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *conversationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *conversationService) List(ctx context.Context) ([]*entity.Conversation, error) {
	conversations, err := srv.convRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	return conversations, nil
}

func (srv *conversationService) Create(ctx context.Context, actor usecase.Actor) (*entity.Conversation, error) {
	conversation := &entity.Conversation{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		convRepo := repoFactory.NewConversationRepository()

		if err := convRepo.Create(ctx, conversation); err != nil {
			return err
		}

		return convRepo.AddMember(ctx, &entity.ConversationMember{
			ConversationID: conversation.ID,
			UserID:         actor.UserID,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create conversation")
	}

	srv.log(ctx).Info("Conversation created", slog.Int64("conversationID", conversation.ID), slog.Int64("by", actor.UserID))

	return conversation, nil
}

func (srv *conversationService) ListMembers(ctx context.Context, conversationID int64) ([]*entity.ConversationMember, error) {
	if _, err := srv.convRepo.FindByID(ctx, conversationID); err != nil {
		return nil, errors.Wrap(err, "failed to find conversation")
	}

	members, err := srv.convRepo.ListMembers(ctx, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation members")
	}

	return members, nil
}

func (srv *conversationService) AddMember(ctx context.Context, actor usecase.Actor, conversationID, userID int64) (*entity.Conversation, error) {
	var conversation *entity.Conversation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		convRepo := repoFactory.NewConversationRepository()

		var err error
		if conversation, err = convRepo.FindByID(ctx, conversationID); err != nil {
			return err
		}

		if err := authorizeMember(ctx, convRepo, actor, conversationID); err != nil {
			return err
		}

		if _, err := repoFactory.NewUserRepository().FindByID(ctx, userID); err != nil {
			return err
		}

		return convRepo.AddMember(ctx, &entity.ConversationMember{
			ConversationID: conversationID,
			UserID:         userID,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add conversation member")
	}

	srv.log(ctx).Info("Conversation member added",
		slog.Int64("conversationID", conversationID),
		slog.Int64("userID", userID),
		slog.Int64("by", actor.UserID),
	)

	return conversation, nil
}

func (srv *conversationService) ListMessages(ctx context.Context, actor usecase.Actor, conversationID int64) ([]*entity.Message, error) {
	if _, err := srv.convRepo.FindByID(ctx, conversationID); err != nil {
		return nil, errors.Wrap(err, "failed to find conversation")
	}

	if err := authorizeMember(ctx, srv.convRepo, actor, conversationID); err != nil {
		return nil, err
	}

	messages, err := srv.messageRepo.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation messages")
	}

	return messages, nil
}

// PostMessage requires membership even for administrators.
func (srv *conversationService) PostMessage(ctx context.Context, actor usecase.Actor, conversationID int64, text string) (*entity.Message, error) {
	if _, err := srv.convRepo.FindByID(ctx, conversationID); err != nil {
		return nil, errors.Wrap(err, "failed to find conversation")
	}

	isMember, err := srv.convRepo.IsMember(ctx, conversationID, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check conversation membership")
	}
	if !isMember {
		return nil, domainerrors.ErrNotConversationMember
	}

	msg := &entity.Message{
		Text:           text,
		SenderID:       actor.UserID,
		ConversationID: &conversationID,
	}
	if err := srv.messageRepo.Create(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "failed to post conversation message")
	}

	srv.log(ctx).Info("Conversation message posted",
		slog.Int64("messageID", msg.ID),
		slog.Int64("conversationID", conversationID),
		slog.Int64("senderID", actor.UserID),
	)

	publishMessageEvent(ctx, srv.publisher, srv.log(ctx), msg)

	return msg, nil
}

// authorizeMember lets administrators through and requires membership from everyone else.
func authorizeMember(ctx context.Context, convRepo repository.ConversationRepository, actor usecase.Actor, conversationID int64) error {
	if actor.IsAdmin() {
		return nil
	}

	isMember, err := convRepo.IsMember(ctx, conversationID, actor.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to check conversation membership")
	}
	if !isMember {
		return domainerrors.ErrNotConversationMember
	}

	return nil
}
