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

type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// ListForUser handles GET /api/chats?userId=...
func (h *ChatHandler) ListForUser(c *gin.Context) {
	raw := c.Query("userId")
	if raw == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("userId is required"))
		return
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid userId"))
		return
	}

	summaries, err := h.service.ListChatsForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpdto.FromChatSummarySlice(summaries))
}

// Get handles GET /api/chats/:chatId
func (h *ChatHandler) Get(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("chatId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid chatId"))
		return
	}

	chat, err := h.service.GetByID(c.Request.Context(), chatID)
	if err != nil {
		if errors.Is(err, relay_errors.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpdto.NewErrorResponse("chat not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpdto.FromChat(chat))
}
