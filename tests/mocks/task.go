package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	taskDomain "github.com/tasklab/tasks-management/internal/task/domain"
)

// InMemoryTaskRepo simula TaskRepository. As agregações de relatório são
// calculadas sobre os comentários anexados às tarefas.
type InMemoryTaskRepo struct {
	Tasks map[uuid.UUID]*taskDomain.TaskItem
	mu    sync.Mutex
}

var _ taskDomain.TaskRepository = (*InMemoryTaskRepo)(nil)

func NewInMemoryTaskRepo() *InMemoryTaskRepo {
	return &InMemoryTaskRepo{
		Tasks: make(map[uuid.UUID]*taskDomain.TaskItem),
	}
}

func (r *InMemoryTaskRepo) Create(ctx context.Context, t *taskDomain.TaskItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Tasks[t.ID] = t
	return nil
}

func (r *InMemoryTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*taskDomain.TaskItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.Tasks[id]
	if !ok {
		return nil, taskDomain.ErrTaskNotFound
	}
	return t, nil
}

func (r *InMemoryTaskRepo) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*taskDomain.TaskItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*taskDomain.TaskItem
	for _, t := range r.Tasks {
		if t.ProjectID == projectID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (r *InMemoryTaskRepo) Update(ctx context.Context, t *taskDomain.TaskItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Tasks[t.ID]; !ok {
		return taskDomain.ErrTaskNotFound
	}
	r.Tasks[t.ID] = t
	return nil
}

func (r *InMemoryTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Tasks[id]; !ok {
		return taskDomain.ErrTaskNotFound
	}
	delete(r.Tasks, id)
	return nil
}

func (r *InMemoryTaskRepo) CompletedTasksForProjects(ctx context.Context, projectIDs []uuid.UUID, since time.Time) ([]*taskDomain.TaskItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[uuid.UUID]bool, len(projectIDs))
	for _, id := range projectIDs {
		wanted[id] = true
	}

	var list []*taskDomain.TaskItem
	for _, t := range r.Tasks {
		if wanted[t.ProjectID] && t.Status == taskDomain.StatusCompleted && t.CompletionDate != nil && !t.CompletionDate.Before(since) {
			list = append(list, t)
		}
	}
	return list, nil
}

func (r *InMemoryTaskRepo) TopTasksByComments(ctx context.Context, since time.Time, limit int) ([]taskDomain.CommentCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var counts []taskDomain.CommentCount
	for _, t := range r.Tasks {
		n := 0
		for _, c := range t.Comments() {
			if !c.CreatedAt.Before(since) {
				n++
			}
		}
		if n > 0 {
			counts = append(counts, taskDomain.CommentCount{
				TaskID:   t.ID,
				Title:    t.Title,
				Comments: n,
			})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Comments > counts[j].Comments
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}
