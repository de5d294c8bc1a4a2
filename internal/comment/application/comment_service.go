package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	commentDomain "github.com/tasklab/tasks-management/internal/comment/domain"
	historyApp "github.com/tasklab/tasks-management/internal/history/application"
	historyDomain "github.com/tasklab/tasks-management/internal/history/domain"
	projectApp "github.com/tasklab/tasks-management/internal/project/application"
	"github.com/tasklab/tasks-management/internal/shared/result"
	taskApp "github.com/tasklab/tasks-management/internal/task/application"
	userApp "github.com/tasklab/tasks-management/internal/user/application"
)

// CreateCommentInput são os dados de criação de um comentário.
type CreateCommentInput struct {
	Content string               `json:"content"`
	TaskID  uuid.UUID            `json:"taskId"`
	User    projectApp.UserInput `json:"user"`
}

// CreatedComment é o payload do resultado de criação: o comentário gravado e
// se o registro de auditoria correspondente também foi gravado. As duas
// escritas cruzam armazenamentos e não são transacionais — o histórico é
// melhor esforço e sua falha é um desfecho distinguível, não um rollback.
type CreatedComment struct {
	Comment         *commentDomain.Comment `json:"comment"`
	HistoryRecorded bool                   `json:"historyRecorded"`
}

// CommentService orquestra a criação de comentários e o registro da trilha
// de auditoria associada.
type CommentService struct {
	tasks       *taskApp.TaskService
	users       *userApp.UserService
	commentRepo commentDomain.CommentRepository
	history     *historyApp.TaskHistoryService
	log         *zap.Logger
}

// NewCommentService constrói o serviço.
func NewCommentService(tasks *taskApp.TaskService, users *userApp.UserService, commentRepo commentDomain.CommentRepository, history *historyApp.TaskHistoryService, log *zap.Logger) *CommentService {
	return &CommentService{
		tasks:       tasks,
		users:       users,
		commentRepo: commentRepo,
		history:     history,
		log:         log,
	}
}

// Create valida as referências, persiste o comentário e então registra a
// adição no histórico da tarefa, atribuída ao usuário comentarista.
func (s *CommentService) Create(ctx context.Context, input CreateCommentInput) result.Result[CreatedComment] {
	taskRes := s.tasks.GetByID(ctx, input.TaskID)
	if !taskRes.IsSuccess() {
		return result.Failure[CreatedComment](taskRes.Message(), taskRes.StatusCode(), taskRes.Notifications()...)
	}

	userRes := s.users.GetByID(ctx, input.User.ID)
	if !userRes.IsSuccess() {
		return result.Failure[CreatedComment](userRes.Message(), userRes.StatusCode(), userRes.Notifications()...)
	}

	comment := commentDomain.NewComment(input.Content, taskRes.Data().ID, userRes.Data().ID)
	if !comment.IsValid() {
		return result.Failure[CreatedComment](
			fmt.Sprintf("Erro ao validar o comentário: %s", comment.JoinedMessages()),
			result.StatusUnprocessable,
			comment.Notifications()...,
		)
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		s.log.Error("failed to create comment", zap.String("comment_id", comment.ID.String()), zap.Error(err))
		return result.Failure[CreatedComment]("Ocorreu um erro inesperado", result.StatusInternal)
	}

	record := historyDomain.NewTaskHistory(
		fmt.Sprintf("Comentário adicionado: '%s'", comment.Content),
		comment.TaskID,
		userRes.Data().ID,
	)
	if err := s.history.Record(ctx, record); err != nil {
		// O comentário já está gravado; só o histórico falhou.
		s.log.Warn("failed to record comment history", zap.String("task_id", comment.TaskID.String()), zap.Error(err))
		return result.SuccessWithMessage(
			CreatedComment{Comment: comment, HistoryRecorded: false},
			"Comentário criado, mas o registro no histórico falhou.",
		)
	}

	return result.Success(CreatedComment{Comment: comment, HistoryRecorded: true})
}
