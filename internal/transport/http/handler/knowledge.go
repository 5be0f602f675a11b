package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalassist/internal/app"
	"legalassist/internal/transport/http/response"
)

type KnowledgeHandler struct {
	knowledgeService *app.KnowledgeService
}

type CreateKnowledgeRequest struct {
	Category string   `json:"category" binding:"required"`
	Keywords []string `json:"keywords" binding:"required,min=1"`
	Question string   `json:"question" binding:"required"`
	Answer   string   `json:"answer" binding:"required"`
	Priority int      `json:"priority"`
}

func NewKnowledgeHandler(knowledgeService *app.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledgeService: knowledgeService}
}

func (h *KnowledgeHandler) List(c *gin.Context) {
	records, err := h.knowledgeService.List()
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "failed to fetch knowledge base")
		return
	}
	response.OK(c, records)
}

func (h *KnowledgeHandler) Search(c *gin.Context) {
	records, err := h.knowledgeService.Search(c.Query("q"), c.Query("category"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "query parameter q is required")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "failed to search knowledge base")
		}
		return
	}
	response.OK(c, records)
}

func (h *KnowledgeHandler) Create(c *gin.Context) {
	var req CreateKnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	record, err := h.knowledgeService.Create(app.CreateKnowledgeInput{
		Category: req.Category,
		Keywords: req.Keywords,
		Question: req.Question,
		Answer:   req.Answer,
		Priority: req.Priority,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidCategory):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidCategory, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create knowledge failed")
		}
		return
	}
	response.OK(c, record)
}
