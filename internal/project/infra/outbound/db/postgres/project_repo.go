package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	projectDomain "github.com/tasklab/tasks-management/internal/project/domain"
	taskPostgres "github.com/tasklab/tasks-management/internal/task/infra/outbound/db/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ProjectRepoPostgres implementa ProjectRepository sobre o armazenamento
// relacional. As leituras reidratam o agregado com as tarefas, porque as
// regras de capacidade e de exclusão dependem delas.
type ProjectRepoPostgres struct {
	db       *sql.DB
	taskRepo *taskPostgres.TaskRepoPostgres
}

func NewProjectRepoPostgres(db *sql.DB, taskRepo *taskPostgres.TaskRepoPostgres) *ProjectRepoPostgres {
	return &ProjectRepoPostgres{db: db, taskRepo: taskRepo}
}

func (r *ProjectRepoPostgres) Create(ctx context.Context, p *projectDomain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, user_id) VALUES ($1, $2, $3)`,
		p.ID, p.Name, p.UserID,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *ProjectRepoPostgres) GetByID(ctx context.Context, id uuid.UUID) (*projectDomain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, user_id FROM projects WHERE id = $1`, id)

	var (
		projectID uuid.UUID
		name      string
		userID    uuid.UUID
	)
	if err := row.Scan(&projectID, &name, &userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, projectDomain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	tasks, err := r.taskRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return projectDomain.RestoreProject(projectID, name, userID, tasks), nil
}

func (r *ProjectRepoPostgres) GetAllByUserID(ctx context.Context, userID uuid.UUID) ([]*projectDomain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, user_id FROM projects WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	type projectRow struct {
		id     uuid.UUID
		name   string
		userID uuid.UUID
	}
	var projectRows []projectRow
	for rows.Next() {
		var pr projectRow
		if err := rows.Scan(&pr.id, &pr.name, &pr.userID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		projectRows = append(projectRows, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	projects := make([]*projectDomain.Project, 0, len(projectRows))
	for _, pr := range projectRows {
		tasks, err := r.taskRepo.GetByProjectID(ctx, pr.id)
		if err != nil {
			return nil, err
		}
		projects = append(projects, projectDomain.RestoreProject(pr.id, pr.name, pr.userID, tasks))
	}
	return projects, nil
}

func (r *ProjectRepoPostgres) Update(ctx context.Context, p *projectDomain.Project) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = $1 WHERE id = $2`, p.Name, p.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return projectDomain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepoPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return projectDomain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepoPostgres) TopProjectsByCompletedTasks(ctx context.Context, since time.Time, limit int) ([]projectDomain.CompletedTaskCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.project_id, p.name, COUNT(*) AS completed_count
		 FROM tasks t
		 JOIN projects p ON p.id = t.project_id
		 WHERE t.status = 'Completed' AND t.completion_date >= $1
		 GROUP BY t.project_id, p.name
		 ORDER BY completed_count DESC
		 LIMIT $2`,
		since, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var counts []projectDomain.CompletedTaskCount
	for rows.Next() {
		var c projectDomain.CompletedTaskCount
		if err := rows.Scan(&c.ProjectID, &c.Name, &c.CompletedTasks); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
