// Package httpapi exposes the client party's HTTP surface: a single
// endpoint that mints a launch token for the current cardholder and
// points the caller at the voyage front-end.
package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/voyagegate/internal/client/cards"
	"github.com/dmitrijs2005/voyagegate/internal/client/launch"
	"github.com/dmitrijs2005/voyagegate/internal/httpx"
	"github.com/dmitrijs2005/voyagegate/internal/logging"
)

type Handler struct {
	minter    *launch.Minter
	cards     cards.Source
	voyageURL string
	logger    logging.Logger
}

func NewHandler(m *launch.Minter, s cards.Source, voyageURL string, l logging.Logger) *Handler {
	return &Handler{minter: m, cards: s, voyageURL: voyageURL, logger: l}
}

type launchTokenResponse struct {
	Token     string `json:"token"`
	VoyageURL string `json:"voyage_url"`
}

// LaunchToken mints a fresh launch token. Every call produces a new
// envelope; tokens are single-purpose and must not be cached.
func (h *Handler) LaunchToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.minter.Mint(h.cards.Current(), time.Now())
	if err != nil {
		h.logger.Error(r.Context(), "minting launch token", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, launchTokenResponse{
		Token:     token,
		VoyageURL: h.voyageURL,
	})
}
