package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	projectDomain "github.com/tasklab/tasks-management/internal/project/domain"
	"github.com/tasklab/tasks-management/internal/shared/result"
)

// ProjectReport é uma linha do relatório de projetos.
type ProjectReport struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	CompletedTaskCount int       `json:"completedTaskCount"`
}

// ProjectReportService gera relatórios de leitura sobre projetos.
type ProjectReportService struct {
	projectRepo projectDomain.ProjectRepository
	log         *zap.Logger
}

// NewProjectReportService constrói o serviço.
func NewProjectReportService(projectRepo projectDomain.ProjectRepository, log *zap.Logger) *ProjectReportService {
	return &ProjectReportService{projectRepo: projectRepo, log: log}
}

// TopProjectsByCompletedTasks lista os 10 projetos com mais tarefas
// concluídas nos últimos dias. Resultado vazio é sucesso.
func (s *ProjectReportService) TopProjectsByCompletedTasks(ctx context.Context, days int) result.Result[[]ProjectReport] {
	since := time.Now().UTC().AddDate(0, 0, -days)
	counts, err := s.projectRepo.TopProjectsByCompletedTasks(ctx, since, TopLimit)
	if err != nil {
		s.log.Error("failed to aggregate projects by completed tasks", zap.Error(err))
		return result.Failure[[]ProjectReport]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	reports := make([]ProjectReport, 0, len(counts))
	for _, c := range counts {
		reports = append(reports, ProjectReport{
			ID:                 c.ProjectID,
			Name:               c.Name,
			CompletedTaskCount: c.CompletedTasks,
		})
	}
	return result.Success(reports)
}
