package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tasklab/tasks-management/internal/shared/result"
	userDomain "github.com/tasklab/tasks-management/internal/user/domain"
)

// UserService define os casos de uso relacionados a User.
type UserService struct {
	repo userDomain.UserRepository
	log  *zap.Logger
}

// NewUserService constrói o serviço.
func NewUserService(repo userDomain.UserRepository, log *zap.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// GetByID busca um usuário. A ausência é sinalizada com falha 404 — quem
// precisa distinguir "não encontrado" de erro (get-or-create de projetos)
// consulta o StatusCode do resultado.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) result.Result[*userDomain.User] {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return result.Failure[*userDomain.User]("Usuário não encontrado.", result.StatusNotFound)
		}
		s.log.Error("failed to fetch user", zap.String("user_id", id.String()), zap.Error(err))
		return result.Failure[*userDomain.User]("Ocorreu um erro inesperado", result.StatusInternal)
	}
	return result.Success(user)
}

// Create persiste um usuário já validado pelo chamador.
func (s *UserService) Create(ctx context.Context, u *userDomain.User) result.Result[*userDomain.User] {
	if err := s.repo.Create(ctx, u); err != nil {
		s.log.Error("failed to create user", zap.String("user_id", u.ID.String()), zap.Error(err))
		return result.Failure[*userDomain.User]("Erro ao criar o usuário.", result.StatusInternal)
	}
	return result.Success(u)
}
