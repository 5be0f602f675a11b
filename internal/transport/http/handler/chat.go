package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalassist/internal/app"
	"legalassist/internal/transport/http/response"
)

type ChatHandler struct {
	chatService *app.ChatService
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

func NewChatHandler(chatService *app.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Welcome(c *gin.Context) {
	response.OK(c, gin.H{"message": h.chatService.Welcome()})
}

func (h *ChatHandler) NewSession(c *gin.Context) {
	response.OK(c, gin.H{"sessionId": h.chatService.NewSessionID()})
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid message data")
		return
	}

	result, err := h.chatService.SendMessage(c.Request.Context(), c.Param("sessionId"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "failed to process message")
		}
		return
	}

	response.OK(c, result)
}

func (h *ChatHandler) GetHistory(c *gin.Context) {
	messages, err := h.chatService.GetHistory(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "failed to fetch messages")
		}
		return
	}

	response.OK(c, messages)
}
