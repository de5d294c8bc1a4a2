package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	userDomain "github.com/tasklab/tasks-management/internal/user/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// UserRepoPostgres implementa UserRepository sobre o armazenamento relacional.
type UserRepoPostgres struct {
	db *sql.DB
}

func NewUserRepoPostgres(db *sql.DB) *UserRepoPostgres {
	return &UserRepoPostgres{db: db}
}

func (r *UserRepoPostgres) Create(ctx context.Context, u *userDomain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, role) VALUES ($1, $2, $3)`,
		u.ID, u.Name, u.Role,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *UserRepoPostgres) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, role FROM users WHERE id = $1`, id)

	var (
		userID uuid.UUID
		name   string
		role   string
	)
	if err := row.Scan(&userID, &name, &role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return userDomain.RestoreUser(userID, name, role), nil
}
