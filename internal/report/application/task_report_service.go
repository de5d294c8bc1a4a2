package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	projectDomain "github.com/tasklab/tasks-management/internal/project/domain"
	"github.com/tasklab/tasks-management/internal/shared/result"
	taskDomain "github.com/tasklab/tasks-management/internal/task/domain"
)

// MaxReportDays é o período máximo aceito na geração de relatórios.
const MaxReportDays = 30

// TopLimit é o tamanho dos rankings dos relatórios.
const TopLimit = 10

// TaskReport é uma linha dos relatórios de tarefas.
type TaskReport struct {
	TaskID         uuid.UUID  `json:"taskId"`
	Title          string     `json:"title"`
	CompletionDate *time.Time `json:"completionDate,omitempty"`
	CommentCount   int        `json:"commentCount,omitempty"`
}

// TaskReportService gera relatórios de leitura sobre tarefas. Resultado
// vazio é resposta válida, nunca falha — ao contrário das buscas de
// projetos, um relatório sem linhas é uma resposta legítima.
type TaskReportService struct {
	projectRepo projectDomain.ProjectRepository
	taskRepo    taskDomain.TaskRepository
	log         *zap.Logger
}

// NewTaskReportService constrói o serviço.
func NewTaskReportService(projectRepo projectDomain.ProjectRepository, taskRepo taskDomain.TaskRepository, log *zap.Logger) *TaskReportService {
	return &TaskReportService{projectRepo: projectRepo, taskRepo: taskRepo, log: log}
}

// CompletedTasksByUser lista as tarefas concluídas nos últimos dias nos
// projetos do usuário. Usuário sem projetos recebe sucesso vazio.
func (s *TaskReportService) CompletedTasksByUser(ctx context.Context, userID uuid.UUID, days int) result.Result[[]TaskReport] {
	projects, err := s.projectRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		s.log.Error("failed to list projects for report", zap.String("user_id", userID.String()), zap.Error(err))
		return result.Failure[[]TaskReport]("Ocorreu um erro inesperado", result.StatusInternal)
	}
	if len(projects) == 0 {
		return result.Success([]TaskReport{})
	}

	projectIDs := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	tasks, err := s.taskRepo.CompletedTasksForProjects(ctx, projectIDs, since)
	if err != nil {
		s.log.Error("failed to list completed tasks", zap.String("user_id", userID.String()), zap.Error(err))
		return result.Failure[[]TaskReport]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	reports := make([]TaskReport, 0, len(tasks))
	for _, t := range tasks {
		reports = append(reports, TaskReport{
			TaskID:         t.ID,
			Title:          t.Title,
			CompletionDate: t.CompletionDate,
		})
	}
	return result.Success(reports)
}

// TopTasksByComments lista as 10 tarefas com mais comentários criados nos
// últimos dias.
func (s *TaskReportService) TopTasksByComments(ctx context.Context, days int) result.Result[[]TaskReport] {
	since := time.Now().UTC().AddDate(0, 0, -days)
	counts, err := s.taskRepo.TopTasksByComments(ctx, since, TopLimit)
	if err != nil {
		s.log.Error("failed to aggregate tasks by comments", zap.Error(err))
		return result.Failure[[]TaskReport]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	reports := make([]TaskReport, 0, len(counts))
	for _, c := range counts {
		reports = append(reports, TaskReport{
			TaskID:       c.TaskID,
			Title:        c.Title,
			CommentCount: c.Comments,
		})
	}
	return result.Success(reports)
}
