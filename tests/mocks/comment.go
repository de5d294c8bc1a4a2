package mocks

import (
	"context"
	"sync"

	commentDomain "github.com/tasklab/tasks-management/internal/comment/domain"
)

// InMemoryCommentRepo simula CommentRepository.
type InMemoryCommentRepo struct {
	Comments []*commentDomain.Comment
	Err      error // quando definido, Create falha com este erro
	mu       sync.Mutex
}

var _ commentDomain.CommentRepository = (*InMemoryCommentRepo)(nil)

func NewInMemoryCommentRepo() *InMemoryCommentRepo {
	return &InMemoryCommentRepo{}
}

func (r *InMemoryCommentRepo) Create(ctx context.Context, c *commentDomain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Comments = append(r.Comments, c)
	return nil
}
