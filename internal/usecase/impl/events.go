package impl

import (
	"context"
	"log/slog"

	deliverycontext "messenger/internal/delivery/context"
	"messenger/internal/domain/entity"
	"messenger/internal/domain/service"
)

// publishMessageEvent announces a committed message. Failures are logged only.
func publishMessageEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, msg *entity.Message) {
	event := &service.MessageEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		MessageID:      msg.ID,
		SenderID:       msg.SenderID,
		RecipientID:    msg.RecipientID,
		ConversationID: msg.ConversationID,
		CreatedAt:      msg.CreatedAt,
	}

	if err := publisher.PublishMessageEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish message event",
			slog.Int64("messageID", msg.ID),
			slog.Any("error", err),
		)
	}
}
