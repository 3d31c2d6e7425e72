package handler

import (
	"log/slog"
	"net/http"

	"suja/internal/delivery/http/middleware"
	"suja/internal/delivery/http/response"
	"suja/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for direct-messaging handlers.
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(chatUC usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatUC: chatUC,
		logger: logger,
	}
}

// Conversation returns the message window with the other profile and
// its presence.
func (h *ChatHandler) Conversation(c echo.Context) error {
	otherID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user id must be a UUID")
	}

	identity := middleware.CurrentIdentity(c)

	output, err := h.chatUC.Conversation(c.Request().Context(), identity.ID, otherID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Conversation retrieved")
}

// Send delivers a message to the given profile. Empty text is accepted; the
// client owns text validation.
func (h *ChatHandler) Send(c echo.Context) error {
	receiverID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user id must be a UUID")
	}

	var input *usecase.SendMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	identity := middleware.CurrentIdentity(c)

	message, err := h.chatUC.SendMessage(c.Request().Context(), identity.ID, receiverID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent")
}

// DeleteMessage removes one of the caller's own messages.
func (h *ChatHandler) DeleteMessage(c echo.Context) error {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "message id must be a UUID")
	}

	identity := middleware.CurrentIdentity(c)

	if err := h.chatUC.DeleteMessage(c.Request().Context(), messageID, identity.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message deleted")
}

// Search finds mutual followers of the caller by name, the candidates for a
// new conversation.
func (h *ChatHandler) Search(c echo.Context) error {
	identity := middleware.CurrentIdentity(c)

	profiles, err := h.chatUC.SearchMutuals(c.Request().Context(), identity.ID, c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "Mutual followers retrieved")
}
