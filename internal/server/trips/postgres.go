package trips

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/voyagegate/internal/common"
	"github.com/dmitrijs2005/voyagegate/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, session *Session) (*Session, error) {

	query :=
		`INSERT INTO trip_sessions (profile_id, origin, destination, travel_date, pax, status, last_response)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		session.ProfileID, session.Origin, session.Destination, session.TravelDate,
		session.Pax, session.Status, session.LastResponse).Scan(&session.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return session, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Session, error) {
	query :=
		`SELECT id, profile_id, origin, destination, travel_date, pax, status, last_response FROM trip_sessions
		 WHERE id = $1
		 `

	session := &Session{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&session.ID, &session.ProfileID, &session.Origin, &session.Destination,
			&session.TravelDate, &session.Pax, &session.Status, &session.LastResponse)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return session, nil
}

func (r *PostgresRepository) UpdateLastResponse(ctx context.Context, id int64, lastResponse string) error {
	query := `UPDATE trip_sessions SET last_response = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, lastResponse)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
