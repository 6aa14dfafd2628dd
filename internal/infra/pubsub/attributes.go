package pubsub

import (
	"strconv"

	"messenger/internal/domain/service"
)

const localSubscription = "projects/local/subscriptions/message-events-sub"

// messageAttributes builds the Pub/Sub attributes used for filtering and tracing.
func messageAttributes(event *service.MessageEvent) map[string]string {
	attributes := map[string]string{
		"message_id": strconv.FormatInt(event.MessageID, 10),
		"sender_id":  strconv.FormatInt(event.SenderID, 10),
		"kind":       "conversation",
	}
	if event.RecipientID != nil {
		attributes["kind"] = "direct"
		attributes["recipient_id"] = strconv.FormatInt(*event.RecipientID, 10)
	}
	if event.ConversationID != nil {
		attributes["conversation_id"] = strconv.FormatInt(*event.ConversationID, 10)
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
