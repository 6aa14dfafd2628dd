package handler

import (
	"net/http"

	"messenger/internal/delivery/http/response"
	"messenger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler serves direct messages between users.
type MessageHandler struct {
	uc usecase.MessageUsecase
}

func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

// Inbox handles GET /api/messages.
func (h *MessageHandler) Inbox(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	messages, err := h.uc.Inbox(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMessageResponses(messages), "")
}

// SendDirect handles POST /api/users/:id/messages.
func (h *MessageHandler) SendDirect(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	recipientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	msg, err := h.uc.SendDirect(c.Request().Context(), caller, recipientID, req.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMessageResponse(msg), "Message sent")
}

// ListSentBy handles GET /api/users/:id/messages.
func (h *MessageHandler) ListSentBy(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	messages, err := h.uc.ListSentBy(c.Request().Context(), caller, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMessageResponses(messages), "")
}
