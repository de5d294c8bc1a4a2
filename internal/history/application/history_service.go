package application

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	historyDomain "github.com/tasklab/tasks-management/internal/history/domain"
	"github.com/tasklab/tasks-management/internal/shared/result"
)

// TaskHistoryService grava e consulta a trilha de auditoria das tarefas no
// armazenamento de documentos.
type TaskHistoryService struct {
	repo historyDomain.HistoryRepository
	log  *zap.Logger
}

// NewTaskHistoryService constrói o serviço.
func NewTaskHistoryService(repo historyDomain.HistoryRepository, log *zap.Logger) *TaskHistoryService {
	return &TaskHistoryService{repo: repo, log: log}
}

// Record insere um registro de auditoria. O erro é devolvido cru: os
// chamadores tratam a gravação como melhor esforço e decidem o que fazer.
func (s *TaskHistoryService) Record(ctx context.Context, h *historyDomain.TaskHistory) error {
	return s.repo.Create(ctx, h)
}

// ListByTaskID devolve a trilha de auditoria de uma tarefa.
func (s *TaskHistoryService) ListByTaskID(ctx context.Context, taskID uuid.UUID) result.Result[[]*historyDomain.TaskHistory] {
	items, err := s.repo.ListByTaskID(ctx, taskID)
	if err != nil {
		s.log.Error("failed to list task history", zap.String("task_id", taskID.String()), zap.Error(err))
		return result.Failure[[]*historyDomain.TaskHistory]("Ocorreu um erro inesperado", result.StatusInternal)
	}
	return result.Success(items)
}
