package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	commentDomain "github.com/tasklab/tasks-management/internal/comment/domain"
	projectDomain "github.com/tasklab/tasks-management/internal/project/domain"
	taskDomain "github.com/tasklab/tasks-management/internal/task/domain"
	"github.com/tasklab/tasks-management/tests/mocks"
)

// completedTask reidrata uma tarefa concluída com data de conclusão
// controlada, para posicioná-la dentro ou fora da janela do relatório.
func completedTask(title string, projectID uuid.UUID, completedAt time.Time) *taskDomain.TaskItem {
	return taskDomain.RestoreTaskItem(
		uuid.New(),
		title,
		"Descrição",
		completedAt.Add(-24*time.Hour),
		&completedAt,
		taskDomain.StatusCompleted,
		taskDomain.PriorityMedium,
		projectID,
	)
}

func TestCompletedTasksByUser_NoProjectsIsEmptySuccess(t *testing.T) {
	projectRepo := mocks.NewInMemoryProjectRepo()
	taskRepo := mocks.NewInMemoryTaskRepo()
	service := NewTaskReportService(projectRepo, taskRepo, zap.NewNop())

	res := service.CompletedTasksByUser(context.Background(), uuid.New(), 7)

	assert.True(t, res.IsSuccess())
	assert.Empty(t, res.Data())
}

func TestCompletedTasksByUser_FiltersByWindow(t *testing.T) {
	projectRepo := mocks.NewInMemoryProjectRepo()
	taskRepo := mocks.NewInMemoryTaskRepo()
	service := NewTaskReportService(projectRepo, taskRepo, zap.NewNop())

	userID := uuid.New()
	project := projectDomain.NewProject("Roadmap", userID)
	projectRepo.Projects[project.ID] = project

	recent := completedTask("Recente", project.ID, time.Now().UTC().Add(-48*time.Hour))
	old := completedTask("Antiga", project.ID, time.Now().UTC().Add(-40*24*time.Hour))
	pending := taskDomain.NewTaskItem("Pendente", "Descrição", time.Now().UTC().Add(24*time.Hour), taskDomain.PriorityLow, project.ID)
	taskRepo.Tasks[recent.ID] = recent
	taskRepo.Tasks[old.ID] = old
	taskRepo.Tasks[pending.ID] = pending

	res := service.CompletedTasksByUser(context.Background(), userID, 7)

	assert.True(t, res.IsSuccess())
	assert.Len(t, res.Data(), 1)
	assert.Equal(t, recent.ID, res.Data()[0].TaskID)
	assert.Equal(t, "Recente", res.Data()[0].Title)
	assert.NotNil(t, res.Data()[0].CompletionDate)
}

// Tarefas de projetos de outros usuários não entram no relatório.
func TestCompletedTasksByUser_ScopedToOwner(t *testing.T) {
	projectRepo := mocks.NewInMemoryProjectRepo()
	taskRepo := mocks.NewInMemoryTaskRepo()
	service := NewTaskReportService(projectRepo, taskRepo, zap.NewNop())

	owner := uuid.New()
	mine := projectDomain.NewProject("Meu", owner)
	other := projectDomain.NewProject("Alheio", uuid.New())
	projectRepo.Projects[mine.ID] = mine
	projectRepo.Projects[other.ID] = other

	foreign := completedTask("Alheia", other.ID, time.Now().UTC().Add(-time.Hour))
	taskRepo.Tasks[foreign.ID] = foreign

	res := service.CompletedTasksByUser(context.Background(), owner, 7)

	assert.True(t, res.IsSuccess())
	assert.Empty(t, res.Data())
}

func TestTopTasksByComments_OrdersByCount(t *testing.T) {
	projectRepo := mocks.NewInMemoryProjectRepo()
	taskRepo := mocks.NewInMemoryTaskRepo()
	service := NewTaskReportService(projectRepo, taskRepo, zap.NewNop())

	projectID := uuid.New()
	busy := taskDomain.NewTaskItem("Movimentada", "Descrição", time.Now().UTC().Add(24*time.Hour), taskDomain.PriorityLow, projectID)
	quiet := taskDomain.NewTaskItem("Quieta", "Descrição", time.Now().UTC().Add(24*time.Hour), taskDomain.PriorityLow, projectID)
	silent := taskDomain.NewTaskItem("Muda", "Descrição", time.Now().UTC().Add(24*time.Hour), taskDomain.PriorityLow, projectID)

	userID := uuid.New()
	for i := 0; i < 3; i++ {
		busy.AddComment(commentDomain.NewComment("Comentário", busy.ID, userID))
	}
	quiet.AddComment(commentDomain.NewComment("Comentário", quiet.ID, userID))

	taskRepo.Tasks[busy.ID] = busy
	taskRepo.Tasks[quiet.ID] = quiet
	taskRepo.Tasks[silent.ID] = silent

	res := service.TopTasksByComments(context.Background(), 7)

	assert.True(t, res.IsSuccess())
	assert.Len(t, res.Data(), 2)
	assert.Equal(t, busy.ID, res.Data()[0].TaskID)
	assert.Equal(t, 3, res.Data()[0].CommentCount)
	assert.Equal(t, quiet.ID, res.Data()[1].TaskID)
}

// Comentários fora da janela não contam.
func TestTopTasksByComments_FiltersByWindow(t *testing.T) {
	projectRepo := mocks.NewInMemoryProjectRepo()
	taskRepo := mocks.NewInMemoryTaskRepo()
	service := NewTaskReportService(projectRepo, taskRepo, zap.NewNop())

	task := taskDomain.NewTaskItem("Tarefa", "Descrição", time.Now().UTC().Add(24*time.Hour), taskDomain.PriorityLow, uuid.New())
	old := commentDomain.RestoreComment(uuid.New(), "Antigo", task.ID, uuid.New(), time.Now().UTC().Add(-40*24*time.Hour))
	task.AddComment(old)
	taskRepo.Tasks[task.ID] = task

	res := service.TopTasksByComments(context.Background(), 7)

	assert.True(t, res.IsSuccess())
	assert.Empty(t, res.Data())
}

func TestTopProjectsByCompletedTasks(t *testing.T) {
	projectRepo := mocks.NewInMemoryProjectRepo()
	service := NewProjectReportService(projectRepo, zap.NewNop())

	userID := uuid.New()
	productive := projectDomain.RestoreProject(uuid.New(), "Produtivo", userID, []*taskDomain.TaskItem{
		completedTask("Um", uuid.New(), time.Now().UTC().Add(-time.Hour)),
		completedTask("Dois", uuid.New(), time.Now().UTC().Add(-2*time.Hour)),
	})
	idle := projectDomain.RestoreProject(uuid.New(), "Parado", userID, nil)
	projectRepo.Projects[productive.ID] = productive
	projectRepo.Projects[idle.ID] = idle

	res := service.TopProjectsByCompletedTasks(context.Background(), 7)

	assert.True(t, res.IsSuccess())
	assert.Len(t, res.Data(), 1)
	assert.Equal(t, productive.ID, res.Data()[0].ID)
	assert.Equal(t, 2, res.Data()[0].CompletedTaskCount)
}

func TestTopProjectsByCompletedTasks_EmptyIsSuccess(t *testing.T) {
	projectRepo := mocks.NewInMemoryProjectRepo()
	service := NewProjectReportService(projectRepo, zap.NewNop())

	res := service.TopProjectsByCompletedTasks(context.Background(), 7)

	assert.True(t, res.IsSuccess())
	assert.Empty(t, res.Data())
}
