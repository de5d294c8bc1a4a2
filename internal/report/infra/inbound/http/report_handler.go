package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reportApp "github.com/tasklab/tasks-management/internal/report/application"
	"github.com/tasklab/tasks-management/internal/shared/result"
	userApp "github.com/tasklab/tasks-management/internal/user/application"
	"github.com/tasklab/tasks-management/pkg/utils"
)

// ReportHandler encapsula os endpoints HTTP de relatórios. A autorização é
// uma guarda da borda: o usuário solicitante vem no query param
// userRequestId e precisa ter papel de gerente.
type ReportHandler struct {
	taskReports    *reportApp.TaskReportService
	projectReports *reportApp.ProjectReportService
	users          *userApp.UserService
}

// NewReportHandler cria um novo ReportHandler.
func NewReportHandler(taskReports *reportApp.TaskReportService, projectReports *reportApp.ProjectReportService, users *userApp.UserService) *ReportHandler {
	return &ReportHandler{
		taskReports:    taskReports,
		projectReports: projectReports,
		users:          users,
	}
}

// authorize resolve o usuário solicitante e verifica o papel de gerente.
// Devolve false após já ter respondido a requisição.
func (h *ReportHandler) authorize(c *gin.Context) bool {
	requesterID, err := uuid.Parse(c.Query("userRequestId"))
	if err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Usuário sem permissão para geração de relatórios.")
		return false
	}

	userRes := h.users.GetByID(c.Request.Context(), requesterID)
	if !userRes.IsSuccess() || !userRes.Data().IsManager() {
		utils.SendError(c, http.StatusUnauthorized, "Usuário sem permissão para geração de relatórios.")
		return false
	}
	return true
}

// parseDays lê e valida o período do relatório. Devolve -1 após já ter
// respondido a requisição.
func parseDays(c *gin.Context) int {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil || days < 0 {
		utils.SendBadRequest(c, "Período de relatório inválido.")
		return -1
	}
	if days > reportApp.MaxReportDays {
		utils.SendError(c, result.StatusUnprocessable, "Não é possível geração de relatórios para período superior a 30 dias.")
		return -1
	}
	return days
}

// ---------------- Handlers ----------------

// CompletedTasksByUser endpoint GET /api/reports/users/:userId/tasks/:days
func (h *ReportHandler) CompletedTasksByUser(c *gin.Context) {
	if !h.authorize(c) {
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.SendBadRequest(c, "Identificador de usuário inválido.")
		return
	}

	days := parseDays(c)
	if days < 0 {
		return
	}

	res := h.taskReports.CompletedTasksByUser(c.Request.Context(), userID, days)
	utils.SendResult(c, res, http.StatusOK)
}

// TopTasksByComments endpoint GET /api/reports/top/tasks-with-most-comments/:days
func (h *ReportHandler) TopTasksByComments(c *gin.Context) {
	if !h.authorize(c) {
		return
	}

	days := parseDays(c)
	if days < 0 {
		return
	}

	res := h.taskReports.TopTasksByComments(c.Request.Context(), days)
	utils.SendResult(c, res, http.StatusOK)
}

// TopProjectsByCompletedTasks endpoint GET /api/reports/top/projects-with-completed-tasks/:days
func (h *ReportHandler) TopProjectsByCompletedTasks(c *gin.Context) {
	if !h.authorize(c) {
		return
	}

	days := parseDays(c)
	if days < 0 {
		return
	}

	res := h.projectReports.TopProjectsByCompletedTasks(c.Request.Context(), days)
	utils.SendResult(c, res, http.StatusOK)
}
