// Package db wires the per-resource repositories to a concrete storage
// backend behind a single RepositoryManager.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/voyagegate/internal/server/profiles"
	"github.com/dmitrijs2005/voyagegate/internal/server/trips"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Profiles() profiles.Repository
	Trips() trips.Repository
}
