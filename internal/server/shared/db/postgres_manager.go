package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/voyagegate/internal/server/migrations"
	"github.com/dmitrijs2005/voyagegate/internal/server/profiles"
	"github.com/dmitrijs2005/voyagegate/internal/server/trips"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
	db       *sql.DB
	profiles profiles.Repository
	trips    trips.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Profiles() profiles.Repository {
	return m.profiles
}

func (m *PostgresRepositoryManager) Trips() trips.Repository {
	return m.trips
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return &PostgresRepositoryManager{
		db:       db,
		profiles: profiles.NewPostgresRepository(db),
		trips:    trips.NewPostgresRepository(db),
	}, nil
}
