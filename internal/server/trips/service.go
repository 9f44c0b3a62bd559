package trips

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/voyagegate/internal/common"
)

// Narrative messages, kept verbatim from the original surface.
const (
	placeholderResponse = "Calculating best route..."
	ackMessage          = "Request received"
)

// PlanRequest is a chat request from an authenticated caller. A nil
// TripPlanID means "create a new session"; otherwise the named session is
// updated in place.
type PlanRequest struct {
	Origin      string
	Destination string
	TravelDate  string
	Pax         int
	TripPlanID  *int64
}

// PlanResult acknowledges a chat request and names the session it
// touched.
type PlanResult struct {
	TripPlanID int64
	Message    string
}

// Service runs the trip-session lifecycle. The "processing" status looks
// asynchronous but the work completes synchronously within the call; no
// background scheduling exists.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Plan creates or updates a trip session on behalf of profileID.
//
// Creation writes twice on purpose: the row is inserted with a
// placeholder narrative so the store assigns an id, and the final message
// needs that id. Updates overwrite only the narrative; status and trip
// fields stay as they are.
func (s *Service) Plan(ctx context.Context, profileID string, req PlanRequest) (*PlanResult, error) {

	if req.TripPlanID != nil {
		session, err := s.getOwned(ctx, profileID, *req.TripPlanID)
		if err != nil {
			return nil, err
		}

		message := fmt.Sprintf("Updated plan for %s based on new info.", req.Destination)
		if err := s.repo.UpdateLastResponse(ctx, session.ID, message); err != nil {
			return nil, fmt.Errorf("error updating session: %w", err)
		}

		return &PlanResult{TripPlanID: session.ID, Message: ackMessage}, nil
	}

	session, err := s.repo.Create(ctx, &Session{
		ProfileID:    profileID,
		Origin:       req.Origin,
		Destination:  req.Destination,
		TravelDate:   req.TravelDate,
		Pax:          req.Pax,
		Status:       StatusProcessing,
		LastResponse: placeholderResponse,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	final := fmt.Sprintf("Trip to %s planned! ID: %d", req.Destination, session.ID)
	if err := s.repo.UpdateLastResponse(ctx, session.ID, final); err != nil {
		return nil, fmt.Errorf("error finalizing session: %w", err)
	}

	return &PlanResult{TripPlanID: session.ID, Message: ackMessage}, nil
}

// Status returns the session verbatim for polling. Idempotent and
// side-effect free.
func (s *Service) Status(ctx context.Context, profileID string, id int64) (*Session, error) {
	return s.getOwned(ctx, profileID, id)
}

// getOwned loads a session and checks it belongs to the caller. A foreign
// session reads as not found so callers cannot probe for existing ids.
func (s *Service) getOwned(ctx context.Context, profileID string, id int64) (*Session, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.ProfileID != profileID {
		return nil, fmt.Errorf("%w: session owned by another profile", common.ErrNotFound)
	}
	return session, nil
}
