package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	historyApp "github.com/tasklab/tasks-management/internal/history/application"
	projectApp "github.com/tasklab/tasks-management/internal/project/application"
	taskApp "github.com/tasklab/tasks-management/internal/task/application"
	"github.com/tasklab/tasks-management/pkg/utils"
)

// TaskHandler encapsula os endpoints HTTP de tarefas. A listagem por projeto
// passa pelo serviço de projetos para garantir a existência do agregado.
type TaskHandler struct {
	service  *taskApp.TaskService
	projects *projectApp.ProjectService
	history  *historyApp.TaskHistoryService
}

// NewTaskHandler cria um novo TaskHandler.
func NewTaskHandler(service *taskApp.TaskService, projects *projectApp.ProjectService, history *historyApp.TaskHistoryService) *TaskHandler {
	return &TaskHandler{service: service, projects: projects, history: history}
}

// ---------------- Handlers ----------------

// GetByID endpoint GET /api/tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "Identificador de tarefa inválido.")
		return
	}

	res := h.service.GetByID(c.Request.Context(), id)
	utils.SendResult(c, res, http.StatusOK)
}

// GetByProjectID endpoint GET /api/tasks/project/:projectId
func (h *TaskHandler) GetByProjectID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		utils.SendBadRequest(c, "Identificador de projeto inválido.")
		return
	}

	res := h.projects.GetTasksByProjectID(c.Request.Context(), projectID)
	utils.SendResult(c, res, http.StatusOK)
}

// GetHistory endpoint GET /api/tasks/:id/history
func (h *TaskHandler) GetHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "Identificador de tarefa inválido.")
		return
	}

	res := h.history.ListByTaskID(c.Request.Context(), id)
	utils.SendResult(c, res, http.StatusOK)
}

// Create endpoint POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var input taskApp.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendBadRequest(c, "Dados para criação da tarefa não informados.")
		return
	}

	res := h.service.Create(c.Request.Context(), input)
	utils.SendResult(c, res, http.StatusCreated)
}

// Update endpoint PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "Identificador de tarefa inválido.")
		return
	}

	var input taskApp.UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendBadRequest(c, "Dados para atualização da tarefa não informados.")
		return
	}

	res := h.service.Update(c.Request.Context(), id, input)
	utils.SendResult(c, res, http.StatusNoContent)
}

// Delete endpoint DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "Identificador de tarefa inválido.")
		return
	}

	res := h.service.Delete(c.Request.Context(), id)
	utils.SendResult(c, res, http.StatusNoContent)
}
