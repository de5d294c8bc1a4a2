package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	commentDomain "github.com/tasklab/tasks-management/internal/comment/domain"
	sharedDomain "github.com/tasklab/tasks-management/internal/shared/domain"
)

// Status de uma tarefa.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// Priority de uma tarefa.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// TaskItem é a tarefa de um projeto, com comentários associados.
type TaskItem struct {
	sharedDomain.Entity
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	DueDate        time.Time  `json:"dueDate"`
	CompletionDate *time.Time `json:"completionDate,omitempty"`
	Status         Status     `json:"status"`
	Priority       Priority   `json:"priority"`
	ProjectID      uuid.UUID  `json:"projectId"`

	comments []*commentDomain.Comment
}

// NewTaskItem cria uma tarefa com status Pending e valida.
func NewTaskItem(title, description string, dueDate time.Time, priority Priority, projectID uuid.UUID) *TaskItem {
	t := &TaskItem{
		Entity:      sharedDomain.NewEntity(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		ProjectID:   projectID,
		Status:      StatusPending,
	}
	t.validate()
	return t
}

// RestoreTaskItem reidrata uma tarefa persistida, sem validar.
func RestoreTaskItem(id uuid.UUID, title, description string, dueDate time.Time, completionDate *time.Time, status Status, priority Priority, projectID uuid.UUID) *TaskItem {
	return &TaskItem{
		Entity:         sharedDomain.RestoreEntity(id),
		Title:          title,
		Description:    description,
		DueDate:        dueDate,
		CompletionDate: completionDate,
		Status:         status,
		Priority:       priority,
		ProjectID:      projectID,
	}
}

// Comments devolve os comentários carregados da tarefa.
func (t *TaskItem) Comments() []*commentDomain.Comment {
	return t.comments
}

// AttachComments anexa comentários na reidratação, sem validar.
func (t *TaskItem) AttachComments(comments []*commentDomain.Comment) {
	t.comments = comments
}

// AddComment associa um comentário à tarefa.
func (t *TaskItem) AddComment(c *commentDomain.Comment) {
	t.comments = append(t.comments, c)
}

// Update aplica os novos valores, gerencia a data de conclusão conforme a
// transição de status e revalida. Devolve a descrição das mudanças para o
// registro de histórico (vazia quando nada mudou).
func (t *TaskItem) Update(title, description string, dueDate time.Time, status Status) string {
	var changes strings.Builder

	if t.Title != title {
		fmt.Fprintf(&changes, "Título atualizado de '%s' para '%s'. ", t.Title, title)
	}
	if t.Description != description {
		fmt.Fprintf(&changes, "Descrição atualizada de '%s' para '%s'. ", t.Description, description)
	}
	if !t.DueDate.Equal(dueDate) {
		fmt.Fprintf(&changes, "Data de entrega atualizada de '%s' para '%s'. ", t.DueDate.Format(time.RFC3339), dueDate.Format(time.RFC3339))
	}
	if t.Status != status {
		fmt.Fprintf(&changes, "Status alterado de '%s' para '%s'. ", t.Status, status)
	}

	t.Title = title
	t.Description = description
	t.DueDate = dueDate

	// Define a data de conclusão na transição para Completed e a limpa
	// quando a tarefa volta a ser pendente.
	if status == StatusCompleted && t.Status != StatusCompleted {
		now := time.Now().UTC()
		t.CompletionDate = &now
	} else if status == StatusPending {
		t.CompletionDate = nil
	}
	t.Status = status

	t.validate()

	return strings.TrimSpace(changes.String())
}

func (t *TaskItem) validate() {
	t.ClearNotifications()
	t.RequireNotBlank(t.Title, "Title")
	t.RequireNotBlank(t.Description, "Description")
	t.RequireFutureDate(t.DueDate, "DueDate")

	if t.Status == StatusCompleted && t.CompletionDate == nil {
		t.AddNotification("CompletionDate", "Campo de conclusão deve estar preenchido quando a tarefa estiver completada.")
	}
}
