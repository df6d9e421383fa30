package stubstore

import (
	"context"
	"strconv"
	"sync"
	"time"

	stuberrors "github.com/GFDaniel/Leave-Request-Dashboard/internal/stubstore/errors"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Record, error)
	FindByID(ctx context.Context, id string) (Record, error)
	Create(ctx context.Context, rec Record) (Record, error)
	Update(ctx context.Context, id string, apply func(*Record)) (Record, error)
}

// memoryRepository keeps records in insertion order behind a mutex, with
// sequential numeric ids like the hosted store hands out.
type memoryRepository struct {
	mu     sync.RWMutex
	order  []string
	items  map[string]Record
	nextID int
	now    func() time.Time
}

func NewMemoryRepository() Repository {
	return newMemoryRepository(time.Now)
}

func newMemoryRepository(now func() time.Time) *memoryRepository {
	return &memoryRepository{
		items:  make(map[string]Record),
		nextID: 1,
		now:    now,
	}
}

func (r *memoryRepository) FindAll(_ context.Context) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[id]
	if !ok {
		return Record{}, stuberrors.ErrRecordNotFound
	}
	return rec, nil
}

func (r *memoryRepository) Create(_ context.Context, rec Record) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = strconv.Itoa(r.nextID)
	r.nextID++
	if rec.CreatedAt == "" {
		rec.CreatedAt = r.now().UTC().Format(time.RFC3339)
	}

	r.items[rec.ID] = rec
	r.order = append(r.order, rec.ID)
	return rec, nil
}

// Update applies a caller-provided merge to the stored record. The apply
// func runs under the lock; it must only touch the record.
func (r *memoryRepository) Update(_ context.Context, id string, apply func(*Record)) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.items[id]
	if !ok {
		return Record{}, stuberrors.ErrRecordNotFound
	}
	apply(&rec)
	rec.ID = id // ids are immutable
	r.items[id] = rec
	return rec, nil
}
