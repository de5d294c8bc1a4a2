package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectApp "github.com/tasklab/tasks-management/internal/project/application"
	"github.com/tasklab/tasks-management/pkg/utils"
)

// ProjectHandler encapsula os endpoints HTTP de projetos.
type ProjectHandler struct {
	service *projectApp.ProjectService
}

// NewProjectHandler cria um novo ProjectHandler.
func NewProjectHandler(service *projectApp.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ---------------- Handlers ----------------

// GetByID endpoint GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "Identificador de projeto inválido.")
		return
	}

	res := h.service.GetByID(c.Request.Context(), id)
	utils.SendResult(c, res, http.StatusOK)
}

// GetAllByUserID endpoint GET /api/projects/user/:userId
func (h *ProjectHandler) GetAllByUserID(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.SendBadRequest(c, "Identificador de usuário inválido.")
		return
	}

	res := h.service.GetAllByUserID(c.Request.Context(), userID)
	utils.SendResult(c, res, http.StatusOK)
}

// Create endpoint POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var input projectApp.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendBadRequest(c, "Dados para criação do projeto não informados.")
		return
	}

	res := h.service.Create(c.Request.Context(), input)
	utils.SendResult(c, res, http.StatusCreated)
}

// Update endpoint PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "Identificador de projeto inválido.")
		return
	}

	var input projectApp.UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendBadRequest(c, "Dados para atualização do projeto não informados.")
		return
	}

	res := h.service.Update(c.Request.Context(), id, input)
	utils.SendResult(c, res, http.StatusNoContent)
}

// Delete endpoint DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "Identificador de projeto inválido.")
		return
	}

	res := h.service.Delete(c.Request.Context(), id)
	utils.SendResult(c, res, http.StatusNoContent)
}
