package handler

import (
	"net/http"

	"messenger/internal/delivery/http/response"
	"messenger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConversationHandler serves /api/conversations.
type ConversationHandler struct {
	uc usecase.ConversationUsecase
}

func NewConversationHandler(uc usecase.ConversationUsecase) *ConversationHandler {
	return &ConversationHandler{uc: uc}
}

func (h *ConversationHandler) List(c echo.Context) error {
	conversations, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]ConversationResponse, 0, len(conversations))
	for _, conversation := range conversations {
		out = append(out, toConversationResponse(conversation))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func (h *ConversationHandler) Create(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	conversation, err := h.uc.Create(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toConversationResponse(conversation), "Conversation created")
}

func (h *ConversationHandler) ListMembers(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	members, err := h.uc.ListMembers(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]MemberResponse, 0, len(members))
	for _, member := range members {
		out = append(out, MemberResponse{UserID: member.UserID})
	}

	return response.Success(c, http.StatusOK, out, "")
}

func (h *ConversationHandler) AddMember(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req AddMemberRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	conversation, err := h.uc.AddMember(c.Request().Context(), caller, id, req.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toConversationResponse(conversation), "Member added")
}

func (h *ConversationHandler) ListMessages(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	messages, err := h.uc.ListMessages(c.Request().Context(), caller, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMessageResponses(messages), "")
}

func (h *ConversationHandler) PostMessage(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	msg, err := h.uc.PostMessage(c.Request().Context(), caller, id, req.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMessageResponse(msg), "Message sent")
}
