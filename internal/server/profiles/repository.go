package profiles

import (
	"context"
)

type Repository interface {
	// Upsert inserts the profile or, when the profile_id already exists,
	// overwrites language and nickname only. Implementations must be
	// atomic with respect to concurrent exchanges for the same
	// profile_id: at most one row ever exists per profile_id.
	Upsert(ctx context.Context, profile *Profile) (*Profile, error)

	GetByProfileID(ctx context.Context, profileID string) (*Profile, error)

	// UpdateLanguage overwrites the language of an existing profile.
	UpdateLanguage(ctx context.Context, profileID string, language string) error
}
