package postgres

import (
	"context"
	"database/sql"
	"fmt"

	commentDomain "github.com/tasklab/tasks-management/internal/comment/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// CommentRepoPostgres implementa CommentRepository sobre o armazenamento
// relacional. Comentários são lidos pela tarefa; aqui só existe a escrita.
type CommentRepoPostgres struct {
	db *sql.DB
}

func NewCommentRepoPostgres(db *sql.DB) *CommentRepoPostgres {
	return &CommentRepoPostgres{db: db}
}

func (r *CommentRepoPostgres) Create(ctx context.Context, c *commentDomain.Comment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (id, task_id, user_id, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.TaskID, c.UserID, c.Content, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
