package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"relay-chat/internal/services"
	"relay-chat/internal/transport/httpdto"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpdto.FromUserSlice(users))
}

func (h *UserHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request body"))
		return
	}
	if req.Username == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("username is required"))
		return
	}

	u, err := h.service.Login(c.Request.Context(), req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpdto.FromUser(u))
}
