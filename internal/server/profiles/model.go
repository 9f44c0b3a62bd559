package profiles

import "time"

// Profile is the persistent record created on the first successful token
// exchange for a profile_id. PanLast4 and PanHash are immutable after
// creation: the identity binding must not silently change under
// re-exchange. Only Language and Nickname are overwritten.
type Profile struct {
	ID        int64
	ProfileID string
	PanLast4  string
	PanHash   string
	Language  string
	Nickname  string
	CreatedAt time.Time
}
