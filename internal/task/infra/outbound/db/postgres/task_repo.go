package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	commentDomain "github.com/tasklab/tasks-management/internal/comment/domain"
	taskDomain "github.com/tasklab/tasks-management/internal/task/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// TaskRepoPostgres implementa TaskRepository sobre o armazenamento relacional.
type TaskRepoPostgres struct {
	db *sql.DB
}

func NewTaskRepoPostgres(db *sql.DB) *TaskRepoPostgres {
	return &TaskRepoPostgres{db: db}
}

const taskColumns = `id, title, description, due_date, completion_date, status, priority, project_id`

// scanTask reidrata uma tarefa a partir da linha corrente.
func scanTask(row interface{ Scan(...any) error }) (*taskDomain.TaskItem, error) {
	var (
		id             uuid.UUID
		title          string
		description    string
		dueDate        time.Time
		completionDate sql.NullTime
		status         string
		priority       string
		projectID      uuid.UUID
	)
	if err := row.Scan(&id, &title, &description, &dueDate, &completionDate, &status, &priority, &projectID); err != nil {
		return nil, err
	}

	var completion *time.Time
	if completionDate.Valid {
		t := completionDate.Time
		completion = &t
	}

	return taskDomain.RestoreTaskItem(id, title, description, dueDate, completion,
		taskDomain.Status(status), taskDomain.Priority(priority), projectID), nil
}

// ------------------ CRUD ------------------

func (r *TaskRepoPostgres) Create(ctx context.Context, t *taskDomain.TaskItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, description, due_date, completion_date, status, priority, project_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID, t.Title, t.Description, t.DueDate, t.CompletionDate, string(t.Status), string(t.Priority), t.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *TaskRepoPostgres) GetByID(ctx context.Context, id uuid.UUID) (*taskDomain.TaskItem, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, taskDomain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	comments, err := r.commentsByTaskID(ctx, id)
	if err != nil {
		return nil, err
	}
	task.AttachComments(comments)

	return task, nil
}

func (r *TaskRepoPostgres) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*taskDomain.TaskItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = $1 ORDER BY due_date`, projectID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *TaskRepoPostgres) Update(ctx context.Context, t *taskDomain.TaskItem) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET title = $1, description = $2, due_date = $3, completion_date = $4, status = $5, priority = $6
		 WHERE id = $7`,
		t.Title, t.Description, t.DueDate, t.CompletionDate, string(t.Status), string(t.Priority), t.ID,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return taskDomain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepoPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return taskDomain.ErrTaskNotFound
	}
	return nil
}

// ------------------ Consultas de relatório ------------------

func (r *TaskRepoPostgres) CompletedTasksForProjects(ctx context.Context, projectIDs []uuid.UUID, since time.Time) ([]*taskDomain.TaskItem, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}

	// database/sql não expande slices: os placeholders do IN são montados
	// na mão, com os argumentos na mesma ordem.
	placeholders := make([]string, len(projectIDs))
	args := make([]any, 0, len(projectIDs)+1)
	for i, id := range projectIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args = append(args, id)
	}
	args = append(args, since)

	query := fmt.Sprintf(
		`SELECT %s FROM tasks
		 WHERE project_id IN (%s) AND status = 'Completed' AND completion_date >= $%d
		 ORDER BY completion_date DESC`,
		taskColumns, strings.Join(placeholders, ", "), len(args),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *TaskRepoPostgres) TopTasksByComments(ctx context.Context, since time.Time, limit int) ([]taskDomain.CommentCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.task_id, t.title, COUNT(*) AS comment_count
		 FROM comments c
		 JOIN tasks t ON t.id = c.task_id
		 WHERE c.created_at >= $1
		 GROUP BY c.task_id, t.title
		 ORDER BY comment_count DESC
		 LIMIT $2`,
		since, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var counts []taskDomain.CommentCount
	for rows.Next() {
		var c taskDomain.CommentCount
		if err := rows.Scan(&c.TaskID, &c.Title, &c.Comments); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// ------------------ Helpers ------------------

func collectTasks(rows *sql.Rows) ([]*taskDomain.TaskItem, error) {
	var tasks []*taskDomain.TaskItem
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *TaskRepoPostgres) commentsByTaskID(ctx context.Context, taskID uuid.UUID) ([]*commentDomain.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, content, task_id, user_id, created_at
		 FROM comments WHERE task_id = $1 ORDER BY created_at`, taskID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var comments []*commentDomain.Comment
	for rows.Next() {
		var (
			id        uuid.UUID
			content   string
			tID       uuid.UUID
			userID    uuid.UUID
			createdAt time.Time
		)
		if err := rows.Scan(&id, &content, &tID, &userID, &createdAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		comments = append(comments, commentDomain.RestoreComment(id, content, tID, userID, createdAt))
	}
	return comments, rows.Err()
}
