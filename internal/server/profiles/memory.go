package profiles

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/voyagegate/internal/common"
)

// MemoryRepository keeps profiles in a mutex-guarded map. Meant for tests
// and local development; the mutex gives the same at-most-one-row
// guarantee the unique constraint provides in postgres.
type MemoryRepository struct {
	mu     sync.Mutex
	byKey  map[string]*Profile
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byKey: make(map[string]*Profile)}
}

func (r *MemoryRepository) Upsert(ctx context.Context, profile *Profile) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byKey[profile.ProfileID]; ok {
		existing.Language = profile.Language
		existing.Nickname = profile.Nickname
		copied := *existing
		return &copied, nil
	}

	r.nextID++
	stored := &Profile{
		ID:        r.nextID,
		ProfileID: profile.ProfileID,
		PanLast4:  profile.PanLast4,
		PanHash:   profile.PanHash,
		Language:  profile.Language,
		Nickname:  profile.Nickname,
	}
	r.byKey[profile.ProfileID] = stored

	copied := *stored
	return &copied, nil
}

func (r *MemoryRepository) GetByProfileID(ctx context.Context, profileID string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.byKey[profileID]
	if !ok {
		return nil, common.ErrNotFound
	}

	copied := *profile
	return &copied, nil
}

func (r *MemoryRepository) UpdateLanguage(ctx context.Context, profileID string, language string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.byKey[profileID]
	if !ok {
		return common.ErrNotFound
	}

	profile.Language = language
	return nil
}
