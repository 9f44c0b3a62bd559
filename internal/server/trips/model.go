package trips

import "time"

// Status values of a trip session. StatusCompleted is declared for the
// full lifecycle but no current transition produces it; sessions stay in
// StatusProcessing.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// Session is one trip-planning interaction, identified by a surrogate
// integer id assigned at creation. ProfileID is the owner and never
// changes afterwards.
type Session struct {
	ID           int64
	ProfileID    string
	Origin       string
	Destination  string
	TravelDate   string
	Pax          int
	Status       string
	LastResponse string
	CreatedAt    time.Time
}
