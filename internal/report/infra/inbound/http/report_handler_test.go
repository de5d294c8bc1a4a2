package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	reportApp "github.com/tasklab/tasks-management/internal/report/application"
	userApp "github.com/tasklab/tasks-management/internal/user/application"
	userDomain "github.com/tasklab/tasks-management/internal/user/domain"
	"github.com/tasklab/tasks-management/tests/mocks"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func newReportRouter(userRepo *mocks.InMemoryUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	projectRepo := mocks.NewInMemoryProjectRepo()
	taskRepo := mocks.NewInMemoryTaskRepo()

	users := userApp.NewUserService(userRepo, zap.NewNop())
	taskReports := reportApp.NewTaskReportService(projectRepo, taskRepo, zap.NewNop())
	projectReports := reportApp.NewProjectReportService(projectRepo, zap.NewNop())

	router := gin.New()
	RegisterReportRoutes(router, NewReportHandler(taskReports, projectReports, users))
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestReports_NonManagerIsUnauthorized(t *testing.T) {
	userRepo := mocks.NewInMemoryUserRepo()
	dev := userDomain.NewUser("Bruno", "Desenvolvedor")
	userRepo.Users[dev.ID] = dev

	router := newReportRouter(userRepo)

	w := get(router, fmt.Sprintf("/api/reports/top/tasks-with-most-comments/7?userRequestId=%s", dev.ID))

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body errorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Usuário sem permissão para geração de relatórios.", body.Error.Message)
}

func TestReports_UnknownRequesterIsUnauthorized(t *testing.T) {
	router := newReportRouter(mocks.NewInMemoryUserRepo())

	w := get(router, fmt.Sprintf("/api/reports/top/tasks-with-most-comments/7?userRequestId=%s", uuid.New()))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReports_MissingRequesterIsUnauthorized(t *testing.T) {
	router := newReportRouter(mocks.NewInMemoryUserRepo())

	w := get(router, "/api/reports/top/tasks-with-most-comments/7")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReports_WindowAboveThirtyDaysIsRejected(t *testing.T) {
	userRepo := mocks.NewInMemoryUserRepo()
	manager := userDomain.NewUser("Carla", "Gerente")
	userRepo.Users[manager.ID] = manager

	router := newReportRouter(userRepo)

	w := get(router, fmt.Sprintf("/api/reports/top/tasks-with-most-comments/31?userRequestId=%s", manager.ID))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body errorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Não é possível geração de relatórios para período superior a 30 dias.", body.Error.Message)
}

func TestReports_ManagerGetsEmptyReport(t *testing.T) {
	userRepo := mocks.NewInMemoryUserRepo()
	manager := userDomain.NewUser("Carla", "Gerente")
	userRepo.Users[manager.ID] = manager

	router := newReportRouter(userRepo)

	w := get(router, fmt.Sprintf("/api/reports/users/%s/tasks/7?userRequestId=%s", uuid.New(), manager.ID))

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []reportApp.TaskReport `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
}

func TestReports_InvalidDaysIsBadRequest(t *testing.T) {
	userRepo := mocks.NewInMemoryUserRepo()
	manager := userDomain.NewUser("Carla", "Gerente")
	userRepo.Users[manager.ID] = manager

	router := newReportRouter(userRepo)

	w := get(router, fmt.Sprintf("/api/reports/top/projects-with-completed-tasks/abc?userRequestId=%s", manager.ID))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
