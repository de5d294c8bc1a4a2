package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskHistory é um registro imutável de auditoria de uma tarefa, gravado no
// armazenamento de documentos, separado do armazenamento transacional.
type TaskHistory struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"taskId"`
	Changes   string    `json:"changes"`
	ChangedAt time.Time `json:"changedAt"`
	ChangedBy uuid.UUID `json:"changedBy"`
}

// NewTaskHistory cria um registro de auditoria datado de agora.
func NewTaskHistory(changes string, taskID, changedBy uuid.UUID) *TaskHistory {
	return &TaskHistory{
		ID:        uuid.New(),
		TaskID:    taskID,
		Changes:   changes,
		ChangedAt: time.Now().UTC(),
		ChangedBy: changedBy,
	}
}

// HistoryRepository é o port do armazenamento de auditoria: inserção e
// leitura por tarefa, nunca atualização ou remoção.
type HistoryRepository interface {
	Create(ctx context.Context, h *TaskHistory) error
	ListByTaskID(ctx context.Context, taskID uuid.UUID) ([]*TaskHistory, error)
}
