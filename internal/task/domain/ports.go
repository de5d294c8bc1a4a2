package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ---------- Erros de domínio ----------
var ErrTaskNotFound = errors.New("task not found")

// CommentCount é a linha de agregação do relatório de tarefas com mais
// comentários.
type CommentCount struct {
	TaskID   uuid.UUID
	Title    string
	Comments int
}

// ---------- Interfaces (Ports) ----------

// TaskRepository define as operações persistentes para TaskItem.
type TaskRepository interface {
	Create(ctx context.Context, t *TaskItem) error

	// Deve devolver ErrTaskNotFound se não existir. Carrega os comentários.
	GetByID(ctx context.Context, id uuid.UUID) (*TaskItem, error)

	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*TaskItem, error)

	// Deve devolver ErrTaskNotFound se não existir.
	Update(ctx context.Context, t *TaskItem) error

	// Deve devolver ErrTaskNotFound se não existir.
	Delete(ctx context.Context, id uuid.UUID) error

	// CompletedTasksForProjects devolve as tarefas concluídas dos projetos
	// informados cuja data de conclusão é igual ou posterior ao corte.
	CompletedTasksForProjects(ctx context.Context, projectIDs []uuid.UUID, since time.Time) ([]*TaskItem, error)

	// TopTasksByComments agrega os comentários criados desde o corte,
	// agrupados por tarefa, em ordem decrescente, limitados.
	TopTasksByComments(ctx context.Context, since time.Time, limit int) ([]CommentCount, error)
}
