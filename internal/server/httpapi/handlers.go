package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/voyagegate/internal/common"
	"github.com/dmitrijs2005/voyagegate/internal/httpx"
	"github.com/dmitrijs2005/voyagegate/internal/identity"
	"github.com/dmitrijs2005/voyagegate/internal/logging"
	"github.com/dmitrijs2005/voyagegate/internal/server/profiles"
	"github.com/dmitrijs2005/voyagegate/internal/server/trips"
	"github.com/go-chi/chi/v5"
)

// genericExchangeError is the one message every declined exchange gets,
// regardless of which check failed.
const genericExchangeError = "Invalid Token or Decryption Failed"

type Handler struct {
	profiles *profiles.Service
	trips    *trips.Service
	logger   logging.Logger
	metrics  *Metrics
}

func NewHandler(ps *profiles.Service, ts *trips.Service, l logging.Logger, m *Metrics) *Handler {
	return &Handler{
		profiles: ps,
		trips:    ts,
		logger:   l.With("module", "httpapi"),
		metrics:  m,
	}
}

type exchangeRequest struct {
	Token string `json:"token"`
}

type exchangeResponse struct {
	AccessToken string           `json:"access_token"`
	Profile     identity.Payload `json:"profile"`
}

func (h *Handler) Exchange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req exchangeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, genericExchangeError)
		return
	}

	result, err := h.profiles.Exchange(ctx, req.Token, time.Now())
	if err != nil {
		// the real cause goes to logs only
		h.logger.Warn(ctx, "exchange declined", "error", err.Error())
		h.metrics.ExchangeOutcome("declined")
		httpx.WriteError(w, http.StatusBadRequest, genericExchangeError)
		return
	}

	h.logger.Info(ctx, "exchange accepted", "profile_id", result.Payload.ProfileID)
	h.metrics.ExchangeOutcome("accepted")
	httpx.WriteJSON(w, http.StatusOK, exchangeResponse{
		AccessToken: result.AccessToken,
		Profile:     result.Payload,
	})
}

type profileUpdateRequest struct {
	Language *string `json:"language"`
}

type profileUpdateResponse struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID, _ := ProfileIDFromContext(ctx)

	var req profileUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.profiles.UpdateLanguage(ctx, profileID, req.Language); err != nil {
		h.respondError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, profileUpdateResponse{Status: "updated"})
}

type chatRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	TravelDate  string `json:"travel_date"`
	Pax         int    `json:"pax"`
	TripPlanID  *int64 `json:"tripplanid"`
}

func (req *chatRequest) validate() error {
	if req.Origin == "" || req.Destination == "" || req.TravelDate == "" {
		return common.ErrValidation
	}
	if req.Pax <= 0 {
		return common.ErrValidation
	}
	return nil
}

type chatResponse struct {
	TripPlanID int64  `json:"tripplanid"`
	Message    string `json:"message"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID, _ := ProfileIDFromContext(ctx)

	var req chatRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.trips.Plan(ctx, profileID, trips.PlanRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		TravelDate:  req.TravelDate,
		Pax:         req.Pax,
		TripPlanID:  req.TripPlanID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if req.TripPlanID == nil {
		h.metrics.TripPlanned()
	}

	httpx.WriteJSON(w, http.StatusOK, chatResponse{
		TripPlanID: result.TripPlanID,
		Message:    result.Message,
	})
}

type chatStatusResponse struct {
	TripPlanID int64  `json:"tripplanid"`
	Status     string `json:"status"`
	Response   string `json:"response"`
}

func (h *Handler) ChatStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID, _ := ProfileIDFromContext(ctx)

	id, err := strconv.ParseInt(chi.URLParam(r, "tripplanid"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "Session not found")
		return
	}

	session, err := h.trips.Status(ctx, profileID, id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chatStatusResponse{
		TripPlanID: session.ID,
		Status:     session.Status,
		Response:   session.LastResponse,
	})
}

// respondError maps service failures to the contract's status codes.
// Resource lookups get a specific 404; everything unexpected is a 500
// with the detail kept in logs.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, common.ErrUnauthorized):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid Token")
	default:
		h.logger.Error(r.Context(), "request failed", "error", err.Error())
		httpx.WriteError(w, http.StatusInternalServerError, "Internal error")
	}
}
