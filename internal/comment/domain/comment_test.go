package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewComment_Valid(t *testing.T) {
	taskID := uuid.New()
	userID := uuid.New()

	comment := NewComment("Primeiro comentário", taskID, userID)

	assert.True(t, comment.IsValid())
	assert.Equal(t, taskID, comment.TaskID)
	assert.Equal(t, userID, comment.UserID)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestNewComment_BlankContent(t *testing.T) {
	comment := NewComment("   ", uuid.New(), uuid.New())

	assert.False(t, comment.IsValid())

	notifs := comment.Notifications()
	assert.Len(t, notifs, 1)
	assert.Equal(t, "Content", notifs[0].Key)
	assert.Equal(t, "Campo Content não foi informado.", notifs[0].Message)
}
