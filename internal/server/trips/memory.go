package trips

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/voyagegate/internal/common"
)

// MemoryRepository keeps trip sessions in a mutex-guarded map with a
// monotonic id counter. Meant for tests and local development.
type MemoryRepository struct {
	mu     sync.Mutex
	byID   map[int64]*Session
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[int64]*Session)}
}

func (r *MemoryRepository) Create(ctx context.Context, session *Session) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	session.ID = r.nextID

	stored := *session
	r.byID[stored.ID] = &stored

	return session, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}

	copied := *session
	return &copied, nil
}

func (r *MemoryRepository) UpdateLastResponse(ctx context.Context, id int64, lastResponse string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}

	session.LastResponse = lastResponse
	return nil
}
