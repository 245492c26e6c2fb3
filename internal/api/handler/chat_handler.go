package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/servicedesk/service-desk/internal/api/metrics"
	"github.com/servicedesk/service-desk/internal/api/middleware"
	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

// ChatHandler serves direct messaging between accounts.
type ChatHandler struct {
	messages ports.MessageService
}

func NewChatHandler(messages ports.MessageService) *ChatHandler {
	return &ChatHandler{messages: messages}
}

type contactsResponse struct {
	Users []userResponse `json:"users"`
}

type messageResponse struct {
	Text    string `json:"text"`
	IsMe    bool   `json:"is_me"`
	Created string `json:"created"`
}

type roomResponse struct {
	Peer     userResponse      `json:"peer"`
	Messages []messageResponse `json:"messages"`
}

type messagesResponse struct {
	Messages []messageResponse `json:"messages"`
}

type sendRequest struct {
	ReceiverID string `json:"receiver_id" form:"receiver_id"`
	Text       string `json:"text" form:"text"`
}

// sendResult is the envelope of the send endpoint, errors included.
type sendResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func toMessageResponses(views []ports.MessageView) []messageResponse {
	out := make([]messageResponse, 0, len(views))
	for _, v := range views {
		out = append(out, messageResponse{Text: v.Text, IsMe: v.IsMe, Created: v.Created})
	}
	return out
}

// Contacts lists everyone the caller can chat with.
//
// @Summary      Chat contacts
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  contactsResponse
// @Failure      401  {object}  map[string]string
// @Router       /chat/ [get]
func (h *ChatHandler) Contacts(c echo.Context) error {
	users, err := h.messages.Contacts(c.Request().Context(), middleware.Identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contactsResponse{Users: toUserResponses(users)})
}

// Room returns the peer and the whole conversation.
//
// @Summary      Chat room
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string  true  "Peer id"
// @Success      200      {object}  roomResponse
// @Failure      404      {object}  map[string]string
// @Router       /chat/{user_id}/ [get]
func (h *ChatHandler) Room(c echo.Context) error {
	room, err := h.messages.Room(c.Request().Context(), middleware.Identity(c), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roomResponse{
		Peer:     userResponse{ID: room.Peer.ID, Username: room.Peer.Username},
		Messages: toMessageResponses(room.Messages),
	})
}

// Messages returns the conversation with a peer, oldest first.
//
// @Summary      Conversation
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string  true  "Peer id"
// @Success      200      {object}  messagesResponse
// @Failure      404      {object}  map[string]string
// @Router       /api/messages/{user_id}/ [get]
func (h *ChatHandler) Messages(c echo.Context) error {
	views, err := h.messages.Conversation(c.Request().Context(), middleware.Identity(c), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messagesResponse{Messages: toMessageResponses(views)})
}

// Send delivers a message. Failures keep the {"status":"error"} envelope the
// chat client expects.
//
// @Summary      Send a message
// @Tags         chat
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Security     BearerAuth
// @Param        receiver_id  formData  string  true  "Receiver id"
// @Param        text         formData  string  true  "Message text"
// @Success      200          {object}  sendResult
// @Failure      400          {object}  sendResult
// @Failure      404          {object}  sendResult
// @Router       /api/messages/send/ [post]
func (h *ChatHandler) Send(c echo.Context) error {
	var req sendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, sendResult{Status: "error", Error: "invalid payload"})
	}

	_, err := h.messages.Send(c.Request().Context(), middleware.Identity(c), req.ReceiverID, req.Text)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, sendResult{Status: "error", Error: ve.Error()})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, sendResult{Status: "error", Error: "receiver not found"})
		}
		return err
	}

	metrics.MessagesSentTotal.Inc()
	return c.JSON(http.StatusOK, sendResult{Status: "ok"})
}
