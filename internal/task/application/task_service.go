package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	historyApp "github.com/tasklab/tasks-management/internal/history/application"
	historyDomain "github.com/tasklab/tasks-management/internal/history/domain"
	projectApp "github.com/tasklab/tasks-management/internal/project/application"
	"github.com/tasklab/tasks-management/internal/shared/result"
	taskDomain "github.com/tasklab/tasks-management/internal/task/domain"
	userApp "github.com/tasklab/tasks-management/internal/user/application"
)

// MaxPendingTasks é o teto de tarefas pendentes por projeto aplicado na
// criação. Convive com o teto absoluto do agregado: um limita a carga de
// trabalho ativa, o outro o tamanho total do projeto.
const MaxPendingTasks = 20

// ---------- Input models ----------

// CreateTaskInput são os dados de criação de uma tarefa.
type CreateTaskInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	DueDate     time.Time           `json:"dueDate"`
	Priority    taskDomain.Priority `json:"priority"`
	ProjectID   uuid.UUID           `json:"projectId"`
}

// UpdateTaskInput são os dados de atualização de uma tarefa. O usuário
// identifica o autor da mudança para o registro de auditoria.
type UpdateTaskInput struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	DueDate     time.Time            `json:"dueDate"`
	Status      taskDomain.Status    `json:"status"`
	User        projectApp.UserInput `json:"user"`
}

// TaskService orquestra os casos de uso de tarefas.
type TaskService struct {
	projects *projectApp.ProjectService
	users    *userApp.UserService
	taskRepo taskDomain.TaskRepository
	history  *historyApp.TaskHistoryService
	log      *zap.Logger
}

// NewTaskService constrói o serviço.
func NewTaskService(projects *projectApp.ProjectService, users *userApp.UserService, taskRepo taskDomain.TaskRepository, history *historyApp.TaskHistoryService, log *zap.Logger) *TaskService {
	return &TaskService{
		projects: projects,
		users:    users,
		taskRepo: taskRepo,
		history:  history,
		log:      log,
	}
}

// GetByID busca uma tarefa com seus comentários.
func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID) result.Result[*taskDomain.TaskItem] {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, taskDomain.ErrTaskNotFound) {
			return result.Failure[*taskDomain.TaskItem]("Tarefa não encontrada.", result.StatusNotFound)
		}
		s.log.Error("failed to fetch task", zap.String("task_id", id.String()), zap.Error(err))
		return result.Failure[*taskDomain.TaskItem]("Ocorreu um erro inesperado", result.StatusInternal)
	}
	return result.Success(task)
}

// Create cria uma tarefa em um projeto existente, aplicando o teto de
// tarefas pendentes antes da validação da entidade.
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) result.Result[*taskDomain.TaskItem] {
	projectRes := s.projects.GetByID(ctx, input.ProjectID)
	if !projectRes.IsSuccess() {
		return result.Failure[*taskDomain.TaskItem](projectRes.Message(), projectRes.StatusCode(), projectRes.Notifications()...)
	}

	if projectRes.Data().PendingTaskCount() >= MaxPendingTasks {
		return result.Failure[*taskDomain.TaskItem](
			"Não é possível adicionar mais de 20 tarefas por projeto. Finalize ou remova tarefas existentes para adicionar uma nova tarefa.",
			result.StatusUnprocessable,
		)
	}

	task := taskDomain.NewTaskItem(input.Title, input.Description, input.DueDate, input.Priority, input.ProjectID)
	if !task.IsValid() {
		return result.Failure[*taskDomain.TaskItem](
			fmt.Sprintf("Erro ao validar a tarefa: %s", task.JoinedMessages()),
			result.StatusUnprocessable,
			task.Notifications()...,
		)
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		s.log.Error("failed to create task", zap.String("task_id", task.ID.String()), zap.Error(err))
		return result.Failure[*taskDomain.TaskItem]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	return result.Success(task)
}

// Update aplica as mudanças de uma tarefa e registra a trilha de auditoria
// atribuída ao usuário autor. A gravação do histórico é melhor esforço: a
// falha é registrada em log e não desfaz a atualização.
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput) result.Result[result.Empty] {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, taskDomain.ErrTaskNotFound) {
			return result.Failure[result.Empty]("Tarefa não encontrada.", result.StatusNotFound)
		}
		s.log.Error("failed to fetch task", zap.String("task_id", id.String()), zap.Error(err))
		return result.Failure[result.Empty]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	userRes := s.users.GetByID(ctx, input.User.ID)
	if !userRes.IsSuccess() {
		return result.Failure[result.Empty](userRes.Message(), userRes.StatusCode(), userRes.Notifications()...)
	}

	changes := task.Update(input.Title, input.Description, input.DueDate, input.Status)
	if !task.IsValid() {
		return result.Failure[result.Empty](
			fmt.Sprintf("Erro ao validar a tarefa: %s", task.JoinedMessages()),
			result.StatusUnprocessable,
			task.Notifications()...,
		)
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		s.log.Error("failed to update task", zap.String("task_id", id.String()), zap.Error(err))
		return result.Failure[result.Empty]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	if changes != "" {
		record := historyDomain.NewTaskHistory(changes, task.ID, userRes.Data().ID)
		if err := s.history.Record(ctx, record); err != nil {
			s.log.Warn("failed to record task history", zap.String("task_id", id.String()), zap.Error(err))
		}
	}

	return result.Done()
}

// Delete remove uma tarefa sem guarda de negócio — ao contrário da exclusão
// de projetos.
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) result.Result[result.Empty] {
	if _, err := s.taskRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, taskDomain.ErrTaskNotFound) {
			return result.Failure[result.Empty]("Tarefa não encontrada.", result.StatusNotFound)
		}
		s.log.Error("failed to fetch task", zap.String("task_id", id.String()), zap.Error(err))
		return result.Failure[result.Empty]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete task", zap.String("task_id", id.String()), zap.Error(err))
		return result.Failure[result.Empty]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	return result.Done()
}
