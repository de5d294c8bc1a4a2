package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ---------- Erros de domínio ----------
var ErrUserNotFound = errors.New("user not found")

// ---------- Interfaces (Ports) ----------

// UserRepository define as operações persistentes para User.
type UserRepository interface {
	Create(ctx context.Context, u *User) error

	// Deve devolver ErrUserNotFound se não existir.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
