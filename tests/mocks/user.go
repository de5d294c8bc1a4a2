package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	userDomain "github.com/tasklab/tasks-management/internal/user/domain"
)

// InMemoryUserRepo simula UserRepository.
type InMemoryUserRepo struct {
	Users map[uuid.UUID]*userDomain.User
	mu    sync.Mutex
}

var _ userDomain.UserRepository = (*InMemoryUserRepo)(nil)

func NewInMemoryUserRepo() *InMemoryUserRepo {
	return &InMemoryUserRepo{
		Users: make(map[uuid.UUID]*userDomain.User),
	}
}

func (r *InMemoryUserRepo) Create(ctx context.Context, u *userDomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Users[u.ID] = u
	return nil
}

func (r *InMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return nil, userDomain.ErrUserNotFound
	}
	return u, nil
}
