package entries

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]models.Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: map[string]models.Entry{}}
}

func (r *MemoryRepository) List(_ context.Context, userID string) ([]models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Entry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, userID, id string) (*models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, common.ErrNotFound
	}
	return &e, nil
}

func (r *MemoryRepository) Create(_ context.Context, e *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.ID] = *e
	return nil
}

func (r *MemoryRepository) Update(_ context.Context, e *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.entries[e.ID]
	if !ok || cur.UserID != e.UserID {
		return common.ErrNotFound
	}
	cur.Title, cur.Content, cur.AIInsight, cur.UpdatedAt = e.Title, e.Content, e.AIInsight, e.UpdatedAt
	r.entries[e.ID] = cur
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}
