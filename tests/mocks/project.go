package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	projectDomain "github.com/tasklab/tasks-management/internal/project/domain"
	taskDomain "github.com/tasklab/tasks-management/internal/task/domain"
)

// InMemoryProjectRepo simula ProjectRepository. Os agregados são devolvidos
// como foram guardados: os testes montam as tarefas diretamente no agregado.
type InMemoryProjectRepo struct {
	Projects map[uuid.UUID]*projectDomain.Project
	mu       sync.Mutex
}

var _ projectDomain.ProjectRepository = (*InMemoryProjectRepo)(nil)

func NewInMemoryProjectRepo() *InMemoryProjectRepo {
	return &InMemoryProjectRepo{
		Projects: make(map[uuid.UUID]*projectDomain.Project),
	}
}

func (r *InMemoryProjectRepo) Create(ctx context.Context, p *projectDomain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Projects[p.ID] = p
	return nil
}

func (r *InMemoryProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*projectDomain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.Projects[id]
	if !ok {
		return nil, projectDomain.ErrProjectNotFound
	}
	return p, nil
}

func (r *InMemoryProjectRepo) GetAllByUserID(ctx context.Context, userID uuid.UUID) ([]*projectDomain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*projectDomain.Project
	for _, p := range r.Projects {
		if p.UserID == userID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *InMemoryProjectRepo) Update(ctx context.Context, p *projectDomain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Projects[p.ID]; !ok {
		return projectDomain.ErrProjectNotFound
	}
	r.Projects[p.ID] = p
	return nil
}

func (r *InMemoryProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Projects[id]; !ok {
		return projectDomain.ErrProjectNotFound
	}
	delete(r.Projects, id)
	return nil
}

func (r *InMemoryProjectRepo) TopProjectsByCompletedTasks(ctx context.Context, since time.Time, limit int) ([]projectDomain.CompletedTaskCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var counts []projectDomain.CompletedTaskCount
	for _, p := range r.Projects {
		completed := 0
		for _, t := range p.Tasks() {
			if t.Status == taskDomain.StatusCompleted && t.CompletionDate != nil && !t.CompletionDate.Before(since) {
				completed++
			}
		}
		if completed > 0 {
			counts = append(counts, projectDomain.CompletedTaskCount{
				ProjectID:      p.ID,
				Name:           p.Name,
				CompletedTasks: completed,
			})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].CompletedTasks > counts[j].CompletedTasks
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}
