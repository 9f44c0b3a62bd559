package httpapi

import (
	"github.com/dmitrijs2005/voyagegate/internal/httpx"
	"github.com/dmitrijs2005/voyagegate/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter assembles the client party's routes. The launch-token
// endpoint is open; the hand-off envelope is its own protection.
func NewRouter(h *Handler, log logging.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))
	r.Use(httpx.RequestLogger(log))

	r.Get("/launch-voyage-token", h.LaunchToken)

	return r
}
