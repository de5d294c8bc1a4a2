package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ---------- Erros de domínio ----------
var ErrProjectNotFound = errors.New("project not found")

// CompletedTaskCount é a linha de agregação do relatório de projetos com mais
// tarefas concluídas.
type CompletedTaskCount struct {
	ProjectID      uuid.UUID
	Name           string
	CompletedTasks int
}

// ---------- Interfaces (Ports) ----------

// ProjectRepository define as operações persistentes para Project. Leituras
// devolvem o agregado com as tarefas carregadas — as regras de capacidade e
// de exclusão dependem delas.
type ProjectRepository interface {
	Create(ctx context.Context, p *Project) error

	// Deve devolver ErrProjectNotFound se não existir.
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// Lista vazia quando o usuário não possui projetos.
	GetAllByUserID(ctx context.Context, userID uuid.UUID) ([]*Project, error)

	// Deve devolver ErrProjectNotFound se não existir.
	Update(ctx context.Context, p *Project) error

	// Deve devolver ErrProjectNotFound se não existir.
	Delete(ctx context.Context, id uuid.UUID) error

	// TopProjectsByCompletedTasks agrega as tarefas concluídas desde a data
	// de corte, agrupadas por projeto, em ordem decrescente, limitadas.
	TopProjectsByCompletedTasks(ctx context.Context, since time.Time, limit int) ([]CompletedTaskCount, error)
}
