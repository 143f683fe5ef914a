package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"relay-chat/internal/services"
	"relay-chat/internal/transport/httpdto"
	relay_errors "relay-chat/pkg/errors"
)

type MessageHandler struct {
	service *services.MessageService
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// ListForChat handles GET /api/chats/:chatId/messages
func (h *MessageHandler) ListForChat(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("chatId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid chatId"))
		return
	}

	messages, err := h.service.ListChatMessages(c.Request.Context(), chatID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpdto.FromMessageSlice(messages))
}

// Get handles GET /api/messages/:messageId
func (h *MessageHandler) Get(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid messageId"))
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), messageID)
	if err != nil {
		if errors.Is(err, relay_errors.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpdto.NewErrorResponse("message not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpdto.FromMessage(m))
}

// Send handles POST /api/chats/:chatId/messages
func (h *MessageHandler) Send(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("chatId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid chatId"))
		return
	}

	var req httpdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request body"))
		return
	}
	senderID, err := uuid.Parse(req.SenderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid sender_id"))
		return
	}

	m, err := h.service.Send(c.Request.Context(), chatID, senderID, req.Body)
	if err != nil {
		if errors.Is(err, relay_errors.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("sender_id and body are required"))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, httpdto.FromMessage(m))
}
