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

type messageService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	MessageRepo repository.MessageRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		userRepo:    params.UserRepo,
		messageRepo: params.MessageRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *messageService) Inbox(ctx context.Context, actor usecase.Actor) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.ListReceivedBy(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inbox")
	}

	return messages, nil
}

// SendDirect stores the message with the caller as sender, then publishes an event.
func (srv *messageService) SendDirect(ctx context.Context, actor usecase.Actor, recipientID int64, text string) (*entity.Message, error) {
	if _, err := srv.userRepo.FindByID(ctx, recipientID); err != nil {
		return nil, errors.Wrap(err, "failed to find recipient")
	}

	msg := &entity.Message{
		Text:        text,
		SenderID:    actor.UserID,
		RecipientID: &recipientID,
	}
	if err := srv.messageRepo.Create(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "failed to send direct message")
	}

	srv.log(ctx).Info("Direct message sent",
		slog.Int64("messageID", msg.ID),
		slog.Int64("senderID", actor.UserID),
		slog.Int64("recipientID", recipientID),
	)

	publishMessageEvent(ctx, srv.publisher, srv.log(ctx), msg)

	return msg, nil
}

func (srv *messageService) ListSentBy(ctx context.Context, actor usecase.Actor, userID int64) ([]*entity.Message, error) {
	if !actor.CanActFor(userID) {
		return nil, domainerrors.ErrForbidden.WithDetails("cannot read messages sent by another user")
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	messages, err := srv.messageRepo.ListSentBy(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sent messages")
	}

	return messages, nil
}
