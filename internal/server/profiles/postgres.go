package profiles

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

// Upsert relies on the unique constraint on profile_id: the ON CONFLICT
// clause is the correctness anchor, not a check-then-insert.
func (r *PostgresRepository) Upsert(ctx context.Context, profile *Profile) (*Profile, error) {

	query :=
		`INSERT INTO profiles (profile_id, pan_last_4, pan_hash, language, nickname)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (profile_id) DO UPDATE
		   SET language = EXCLUDED.language, nickname = EXCLUDED.nickname
		 RETURNING id, profile_id, pan_last_4, pan_hash, language, nickname
		 `

	result := &Profile{}
	err := r.db.QueryRowContext(ctx, query,
		profile.ProfileID, profile.PanLast4, profile.PanHash, profile.Language, profile.Nickname).
		Scan(&result.ID, &result.ProfileID, &result.PanLast4, &result.PanHash, &result.Language, &result.Nickname)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByProfileID(ctx context.Context, profileID string) (*Profile, error) {
	query :=
		`SELECT id, profile_id, pan_last_4, pan_hash, language, nickname FROM profiles
		 WHERE profile_id = $1
		 `

	profile := &Profile{}
	err := r.db.QueryRowContext(ctx, query, profileID).
		Scan(&profile.ID, &profile.ProfileID, &profile.PanLast4, &profile.PanHash, &profile.Language, &profile.Nickname)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return profile, nil
}

func (r *PostgresRepository) UpdateLanguage(ctx context.Context, profileID string, language string) error {
	query := `UPDATE profiles SET language = $2 WHERE profile_id = $1`

	result, err := r.db.ExecContext(ctx, query, profileID, language)
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
