package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	historyApp "github.com/tasklab/tasks-management/internal/history/application"
	projectApp "github.com/tasklab/tasks-management/internal/project/application"
	projectDomain "github.com/tasklab/tasks-management/internal/project/domain"
	"github.com/tasklab/tasks-management/internal/shared/result"
	taskDomain "github.com/tasklab/tasks-management/internal/task/domain"
	userApp "github.com/tasklab/tasks-management/internal/user/application"
	userDomain "github.com/tasklab/tasks-management/internal/user/domain"
	"github.com/tasklab/tasks-management/tests/mocks"
)

type taskServiceFixture struct {
	service     *TaskService
	userRepo    *mocks.InMemoryUserRepo
	projectRepo *mocks.InMemoryProjectRepo
	taskRepo    *mocks.InMemoryTaskRepo
	historyRepo *mocks.InMemoryHistoryRepo
}

func newTaskServiceFixture() taskServiceFixture {
	userRepo := mocks.NewInMemoryUserRepo()
	projectRepo := mocks.NewInMemoryProjectRepo()
	taskRepo := mocks.NewInMemoryTaskRepo()
	historyRepo := mocks.NewInMemoryHistoryRepo()

	users := userApp.NewUserService(userRepo, zap.NewNop())
	projects := projectApp.NewProjectService(users, projectRepo, taskRepo, zap.NewNop())
	history := historyApp.NewTaskHistoryService(historyRepo, zap.NewNop())
	service := NewTaskService(projects, users, taskRepo, history, zap.NewNop())

	return taskServiceFixture{
		service:     service,
		userRepo:    userRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		historyRepo: historyRepo,
	}
}

func dueDate() time.Time {
	return time.Now().UTC().Add(72 * time.Hour)
}

func TestTaskCreate_Success(t *testing.T) {
	f := newTaskServiceFixture()

	project := projectDomain.NewProject("Roadmap", uuid.New())
	f.projectRepo.Projects[project.ID] = project

	res := f.service.Create(context.Background(), CreateTaskInput{
		Title:       "Especificar API",
		Description: "Rascunho dos endpoints",
		DueDate:     dueDate(),
		Priority:    taskDomain.PriorityHigh,
		ProjectID:   project.ID,
	})

	assert.True(t, res.IsSuccess())
	assert.Equal(t, taskDomain.StatusPending, res.Data().Status)
	assert.Contains(t, f.taskRepo.Tasks, res.Data().ID)
}

func TestTaskCreate_ProjectMissing(t *testing.T) {
	f := newTaskServiceFixture()

	res := f.service.Create(context.Background(), CreateTaskInput{
		Title:       "Especificar API",
		Description: "Rascunho dos endpoints",
		DueDate:     dueDate(),
		Priority:    taskDomain.PriorityHigh,
		ProjectID:   uuid.New(),
	})

	assert.False(t, res.IsSuccess())
	assert.Equal(t, result.StatusNotFound, res.StatusCode())
	assert.Equal(t, "Projeto não encontrado.", res.Message())
}

func TestTaskCreate_PendingCap(t *testing.T) {
	f := newTaskServiceFixture()

	project := projectDomain.NewProject("Roadmap", uuid.New())
	for i := 0; i < MaxPendingTasks; i++ {
		project.AddTask(taskDomain.NewTaskItem("Tarefa", "Descrição", dueDate(), taskDomain.PriorityLow, project.ID))
	}
	f.projectRepo.Projects[project.ID] = project

	res := f.service.Create(context.Background(), CreateTaskInput{
		Title:       "Tarefa 21",
		Description: "Não deve entrar",
		DueDate:     dueDate(),
		Priority:    taskDomain.PriorityLow,
		ProjectID:   project.ID,
	})

	assert.False(t, res.IsSuccess())
	assert.Equal(t, result.StatusUnprocessable, res.StatusCode())
	assert.Equal(t, "Não é possível adicionar mais de 20 tarefas por projeto. Finalize ou remova tarefas existentes para adicionar uma nova tarefa.", res.Message())
	assert.Empty(t, f.taskRepo.Tasks)
}

// Tarefas concluídas não contam para o teto de pendentes.
func TestTaskCreate_CompletedTasksDoNotCount(t *testing.T) {
	f := newTaskServiceFixture()

	project := projectDomain.NewProject("Roadmap", uuid.New())
	for i := 0; i < MaxPendingTasks-1; i++ {
		project.AddTask(taskDomain.NewTaskItem("Tarefa", "Descrição", dueDate(), taskDomain.PriorityLow, project.ID))
	}
	done := taskDomain.NewTaskItem("Concluída", "Descrição", dueDate(), taskDomain.PriorityLow, project.ID)
	done.Update(done.Title, done.Description, done.DueDate, taskDomain.StatusCompleted)
	project.AddTask(done)
	f.projectRepo.Projects[project.ID] = project

	res := f.service.Create(context.Background(), CreateTaskInput{
		Title:       "Ainda cabe",
		Description: "Descrição",
		DueDate:     dueDate(),
		Priority:    taskDomain.PriorityLow,
		ProjectID:   project.ID,
	})

	assert.True(t, res.IsSuccess())
}

func TestTaskCreate_InvalidDueDate(t *testing.T) {
	f := newTaskServiceFixture()

	project := projectDomain.NewProject("Roadmap", uuid.New())
	f.projectRepo.Projects[project.ID] = project

	res := f.service.Create(context.Background(), CreateTaskInput{
		Title:       "Especificar API",
		Description: "Rascunho dos endpoints",
		DueDate:     time.Now().UTC().Add(-time.Hour),
		Priority:    taskDomain.PriorityHigh,
		ProjectID:   project.ID,
	})

	assert.False(t, res.IsSuccess())
	assert.Equal(t, result.StatusUnprocessable, res.StatusCode())
	assert.Contains(t, res.Message(), "Erro ao validar a tarefa:")
	assert.Equal(t, "DueDate", res.Notifications()[0].Key)
}

func TestTaskUpdate_RecordsHistory(t *testing.T) {
	f := newTaskServiceFixture()

	author := userDomain.NewUser("Ana", "Desenvolvedora")
	f.userRepo.Users[author.ID] = author

	task := taskDomain.NewTaskItem("Título A", "Descrição", dueDate(), taskDomain.PriorityLow, uuid.New())
	f.taskRepo.Tasks[task.ID] = task

	res := f.service.Update(context.Background(), task.ID, UpdateTaskInput{
		Title:       "Título B",
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      taskDomain.StatusInProgress,
		User:        projectApp.UserInput{ID: author.ID},
	})

	assert.True(t, res.IsSuccess())
	assert.Len(t, f.historyRepo.Records, 1)
	assert.Equal(t, task.ID, f.historyRepo.Records[0].TaskID)
	assert.Equal(t, author.ID, f.historyRepo.Records[0].ChangedBy)
	assert.Contains(t, f.historyRepo.Records[0].Changes, "Título atualizado de 'Título A' para 'Título B'.")
}

// Sem mudanças, não há registro de histórico.
func TestTaskUpdate_NoChangesNoHistory(t *testing.T) {
	f := newTaskServiceFixture()

	author := userDomain.NewUser("Ana", "Desenvolvedora")
	f.userRepo.Users[author.ID] = author

	task := taskDomain.NewTaskItem("Título A", "Descrição", dueDate(), taskDomain.PriorityLow, uuid.New())
	f.taskRepo.Tasks[task.ID] = task

	res := f.service.Update(context.Background(), task.ID, UpdateTaskInput{
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      task.Status,
		User:        projectApp.UserInput{ID: author.ID},
	})

	assert.True(t, res.IsSuccess())
	assert.Empty(t, f.historyRepo.Records)
}

// A falha na gravação do histórico não desfaz a atualização.
func TestTaskUpdate_HistoryFailureIsBestEffort(t *testing.T) {
	f := newTaskServiceFixture()
	f.historyRepo.Err = errors.New("mongo down")

	author := userDomain.NewUser("Ana", "Desenvolvedora")
	f.userRepo.Users[author.ID] = author

	task := taskDomain.NewTaskItem("Título A", "Descrição", dueDate(), taskDomain.PriorityLow, uuid.New())
	f.taskRepo.Tasks[task.ID] = task

	res := f.service.Update(context.Background(), task.ID, UpdateTaskInput{
		Title:       "Título B",
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      task.Status,
		User:        projectApp.UserInput{ID: author.ID},
	})

	assert.True(t, res.IsSuccess())
	assert.Equal(t, "Título B", f.taskRepo.Tasks[task.ID].Title)
	assert.Empty(t, f.historyRepo.Records)
}

func TestTaskUpdate_UserMissing(t *testing.T) {
	f := newTaskServiceFixture()

	task := taskDomain.NewTaskItem("Título A", "Descrição", dueDate(), taskDomain.PriorityLow, uuid.New())
	f.taskRepo.Tasks[task.ID] = task

	res := f.service.Update(context.Background(), task.ID, UpdateTaskInput{
		Title:       "Título B",
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      task.Status,
		User:        projectApp.UserInput{ID: uuid.New()},
	})

	assert.False(t, res.IsSuccess())
	assert.Equal(t, result.StatusNotFound, res.StatusCode())
	assert.Equal(t, "Usuário não encontrado.", res.Message())
}

func TestTaskGetByID_NotFound(t *testing.T) {
	f := newTaskServiceFixture()

	res := f.service.GetByID(context.Background(), uuid.New())

	assert.False(t, res.IsSuccess())
	assert.Equal(t, result.StatusNotFound, res.StatusCode())
	assert.Equal(t, "Tarefa não encontrada.", res.Message())
}

func TestTaskDelete_Success(t *testing.T) {
	f := newTaskServiceFixture()

	task := taskDomain.NewTaskItem("Título", "Descrição", dueDate(), taskDomain.PriorityLow, uuid.New())
	f.taskRepo.Tasks[task.ID] = task

	res := f.service.Delete(context.Background(), task.ID)

	assert.True(t, res.IsSuccess())
	assert.Empty(t, f.taskRepo.Tasks)
}

func TestTaskDelete_NotFound(t *testing.T) {
	f := newTaskServiceFixture()

	res := f.service.Delete(context.Background(), uuid.New())

	assert.False(t, res.IsSuccess())
	assert.Equal(t, result.StatusNotFound, res.StatusCode())
}
