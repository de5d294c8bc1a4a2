package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	historyDomain "github.com/tasklab/tasks-management/internal/history/domain"
)

// InMemoryHistoryRepo simula HistoryRepository. O campo Err permite forçar a
// falha de gravação para exercitar os caminhos de melhor esforço.
type InMemoryHistoryRepo struct {
	Records []*historyDomain.TaskHistory
	Err     error
	mu      sync.Mutex
}

var _ historyDomain.HistoryRepository = (*InMemoryHistoryRepo)(nil)

func NewInMemoryHistoryRepo() *InMemoryHistoryRepo {
	return &InMemoryHistoryRepo{}
}

func (r *InMemoryHistoryRepo) Create(ctx context.Context, h *historyDomain.TaskHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Records = append(r.Records, h)
	return nil
}

func (r *InMemoryHistoryRepo) ListByTaskID(ctx context.Context, taskID uuid.UUID) ([]*historyDomain.TaskHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var list []*historyDomain.TaskHistory
	for _, h := range r.Records {
		if h.TaskID == taskID {
			list = append(list, h)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ChangedAt.Before(list[j].ChangedAt)
	})
	return list, nil
}
