package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/voyagegate/internal/server/profiles"
	"github.com/dmitrijs2005/voyagegate/internal/server/trips"
)

// InMemoryRepositoryManager backs the repositories with maps. Used by
// tests and by the -m development mode; state lives for the process only.
type InMemoryRepositoryManager struct {
	profiles profiles.Repository
	trips    trips.Repository
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Profiles() profiles.Repository {
	return m.profiles
}

func (m *InMemoryRepositoryManager) Trips() trips.Repository {
	return m.trips
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		profiles: profiles.NewMemoryRepository(),
		trips:    trips.NewMemoryRepository(),
	}
}
