package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	commentApp "github.com/tasklab/tasks-management/internal/comment/application"
	"github.com/tasklab/tasks-management/pkg/utils"
)

// CommentHandler encapsula os endpoints HTTP de comentários.
type CommentHandler struct {
	service *commentApp.CommentService
}

// NewCommentHandler cria um novo CommentHandler.
func NewCommentHandler(service *commentApp.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create endpoint POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var input commentApp.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendBadRequest(c, "Dados para criação do comentário não informados.")
		return
	}

	res := h.service.Create(c.Request.Context(), input)
	utils.SendResult(c, res, http.StatusCreated)
}
