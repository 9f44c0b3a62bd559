package trips

import (
	"context"
)

type Repository interface {
	// Create inserts the session and fills in its assigned id.
	// Id allocation must be collision-free and monotonic per store.
	Create(ctx context.Context, session *Session) (*Session, error)

	GetByID(ctx context.Context, id int64) (*Session, error)

	// UpdateLastResponse overwrites the narrative result of an existing
	// session, leaving status and the trip fields untouched.
	UpdateLastResponse(ctx context.Context, id int64, lastResponse string) error
}
