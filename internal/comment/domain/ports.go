package domain

import (
	"context"
)

// CommentRepository define a persistência de comentários. Os comentários são
// lidos sempre por meio da tarefa, então só a escrita é exposta aqui.
type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
}
