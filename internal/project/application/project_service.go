package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	projectDomain "github.com/tasklab/tasks-management/internal/project/domain"
	"github.com/tasklab/tasks-management/internal/shared/result"
	taskDomain "github.com/tasklab/tasks-management/internal/task/domain"
	userApp "github.com/tasklab/tasks-management/internal/user/application"
	userDomain "github.com/tasklab/tasks-management/internal/user/domain"
)

// ---------- Input models ----------

// UserInput é o sub-payload de usuário embutido na criação de projetos.
type UserInput struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

// CreateProjectInput são os dados de criação de um projeto.
type CreateProjectInput struct {
	Name string    `json:"name"`
	User UserInput `json:"user"`
}

// UpdateProjectInput são os dados de atualização de um projeto.
type UpdateProjectInput struct {
	Name string `json:"name"`
}

// ProjectService orquestra entidades e repositórios nos casos de uso de
// projetos.
type ProjectService struct {
	users       *userApp.UserService
	projectRepo projectDomain.ProjectRepository
	taskRepo    taskDomain.TaskRepository
	log         *zap.Logger
}

// NewProjectService constrói o serviço.
func NewProjectService(users *userApp.UserService, projectRepo projectDomain.ProjectRepository, taskRepo taskDomain.TaskRepository, log *zap.Logger) *ProjectService {
	return &ProjectService{
		users:       users,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		log:         log,
	}
}

// GetByID busca um projeto com suas tarefas.
func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) result.Result[*projectDomain.Project] {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, projectDomain.ErrProjectNotFound) {
			return result.Failure[*projectDomain.Project]("Projeto não encontrado.", result.StatusNotFound)
		}
		s.log.Error("failed to fetch project", zap.String("project_id", id.String()), zap.Error(err))
		return result.Failure[*projectDomain.Project]("Ocorreu um erro inesperado", result.StatusInternal)
	}
	return result.Success(project)
}

// GetAllByUserID devolve os projetos do usuário. Lista vazia é tratada como
// não encontrado, distinguindo "nenhum projeto ainda" de uma resposta vazia.
func (s *ProjectService) GetAllByUserID(ctx context.Context, userID uuid.UUID) result.Result[[]*projectDomain.Project] {
	projects, err := s.projectRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		s.log.Error("failed to list projects", zap.String("user_id", userID.String()), zap.Error(err))
		return result.Failure[[]*projectDomain.Project]("Ocorreu um erro inesperado", result.StatusInternal)
	}
	if len(projects) == 0 {
		return result.Failure[[]*projectDomain.Project]("Nenhum projeto encontrado para o usuário.", result.StatusNotFound)
	}
	return result.Success(projects)
}

// GetTasksByProjectID devolve as tarefas de um projeto existente.
func (s *ProjectService) GetTasksByProjectID(ctx context.Context, projectID uuid.UUID) result.Result[[]*taskDomain.TaskItem] {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, projectDomain.ErrProjectNotFound) {
			return result.Failure[[]*taskDomain.TaskItem]("Projeto não encontrado.", result.StatusNotFound)
		}
		s.log.Error("failed to fetch project", zap.String("project_id", projectID.String()), zap.Error(err))
		return result.Failure[[]*taskDomain.TaskItem]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	tasks, err := s.taskRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		s.log.Error("failed to list project tasks", zap.String("project_id", projectID.String()), zap.Error(err))
		return result.Failure[[]*taskDomain.TaskItem]("Ocorreu um erro inesperado", result.StatusInternal)
	}
	return result.Success(tasks)
}

// Create cria um projeto. Se o usuário referenciado não existir, ele é
// provisionado a partir do sub-payload de nome e papel — a única escrita
// entre agregados da camada de serviço.
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) result.Result[*projectDomain.Project] {
	var user *userDomain.User

	userRes := s.users.GetByID(ctx, input.User.ID)
	switch {
	case userRes.IsSuccess():
		user = userRes.Data()
	case userRes.StatusCode() == result.StatusNotFound:
		user = userDomain.NewUser(input.User.Name, input.User.Role)
		if !user.IsValid() {
			return result.Failure[*projectDomain.Project](
				fmt.Sprintf("Erro ao validar o usuário: %s", user.JoinedMessages()),
				result.StatusUnprocessable,
				user.Notifications()...,
			)
		}
		created := s.users.Create(ctx, user)
		if !created.IsSuccess() {
			return result.Failure[*projectDomain.Project](
				fmt.Sprintf("Erro ao criar o usuário: %s", created.Message()),
				result.StatusUnprocessable,
			)
		}
	default:
		return result.Failure[*projectDomain.Project]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	project := projectDomain.NewProject(input.Name, user.ID)
	if !project.IsValid() {
		return result.Failure[*projectDomain.Project](
			fmt.Sprintf("Erro ao validar o projeto: %s", project.JoinedMessages()),
			result.StatusUnprocessable,
			project.Notifications()...,
		)
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		s.log.Error("failed to create project", zap.String("project_id", project.ID.String()), zap.Error(err))
		return result.Failure[*projectDomain.Project]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	return result.Success(project)
}

// Update renomeia um projeto existente.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) result.Result[result.Empty] {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, projectDomain.ErrProjectNotFound) {
			return result.Failure[result.Empty]("Projeto não encontrado.", result.StatusNotFound)
		}
		s.log.Error("failed to fetch project", zap.String("project_id", id.String()), zap.Error(err))
		return result.Failure[result.Empty]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	project.Update(input.Name)
	if !project.IsValid() {
		return result.Failure[result.Empty](
			fmt.Sprintf("Erro ao atualizar o projeto: %s", project.JoinedMessages()),
			result.StatusUnprocessable,
			project.Notifications()...,
		)
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		s.log.Error("failed to update project", zap.String("project_id", id.String()), zap.Error(err))
		return result.Failure[result.Empty]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	return result.Done()
}

// Delete exclui um projeto. A exclusão é uma invariante do agregado: fica
// bloqueada enquanto houver tarefas pendentes.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) result.Result[result.Empty] {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, projectDomain.ErrProjectNotFound) {
			return result.Failure[result.Empty]("Projeto não encontrado.", result.StatusNotFound)
		}
		s.log.Error("failed to fetch project", zap.String("project_id", id.String()), zap.Error(err))
		return result.Failure[result.Empty]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	project.ValidateForDelete()
	if !project.IsValid() {
		return result.Failure[result.Empty](
			fmt.Sprintf("Erro ao validar a exclusão do projeto: %s", project.JoinedMessages()),
			result.StatusUnprocessable,
			project.Notifications()...,
		)
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete project", zap.String("project_id", id.String()), zap.Error(err))
		return result.Failure[result.Empty]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	return result.Done()
}
