package domain

import (
	"time"

	"github.com/google/uuid"

	sharedDomain "github.com/tasklab/tasks-management/internal/shared/domain"
)

// Comment é um comentário de um usuário em uma tarefa. A data de criação é
// definida na construção e nunca muda.
type Comment struct {
	sharedDomain.Entity
	TaskID    uuid.UUID `json:"taskId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uuid.UUID `json:"userId"`
}

// NewComment cria e valida um comentário.
func NewComment(content string, taskID, userID uuid.UUID) *Comment {
	c := &Comment{
		Entity:    sharedDomain.NewEntity(),
		TaskID:    taskID,
		Content:   content,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	c.validate()
	return c
}

// RestoreComment reidrata um comentário persistido, sem validar.
func RestoreComment(id uuid.UUID, content string, taskID, userID uuid.UUID, createdAt time.Time) *Comment {
	return &Comment{
		Entity:    sharedDomain.RestoreEntity(id),
		TaskID:    taskID,
		Content:   content,
		UserID:    userID,
		CreatedAt: createdAt,
	}
}

func (c *Comment) validate() {
	c.ClearNotifications()
	c.RequireNotBlank(c.Content, "Content")
}
