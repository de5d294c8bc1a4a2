package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tasklab/tasks-management/internal/shared/result"
	userDomain "github.com/tasklab/tasks-management/internal/user/domain"
	"github.com/tasklab/tasks-management/tests/mocks"
)

func TestUserGetByID_NotFound(t *testing.T) {
	repo := mocks.NewInMemoryUserRepo()
	service := NewUserService(repo, zap.NewNop())

	res := service.GetByID(context.Background(), uuid.New())

	assert.False(t, res.IsSuccess())
	assert.Equal(t, result.StatusNotFound, res.StatusCode())
	assert.Equal(t, "Usuário não encontrado.", res.Message())
}

func TestUserCreateAndGet(t *testing.T) {
	repo := mocks.NewInMemoryUserRepo()
	service := NewUserService(repo, zap.NewNop())

	user := userDomain.NewUser("Ana", "Gerente")
	created := service.Create(context.Background(), user)
	assert.True(t, created.IsSuccess())

	res := service.GetByID(context.Background(), user.ID)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, "Ana", res.Data().Name)
}
