package httpapi

import (
	"github.com/dmitrijs2005/voyagegate/internal/httpx"
	"github.com/dmitrijs2005/voyagegate/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the app party's routes. The exchange endpoint is
// open; profile and chat sit behind the bearer middleware.
func NewRouter(h *Handler, jwtSecret []byte, log logging.Logger, reg *prometheus.Registry) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))
	r.Use(httpx.RequestLogger(log))

	r.Post("/auth/exchange", h.Exchange)

	r.Group(func(r chi.Router) {
		r.Use(bearerAuth(jwtSecret))
		r.Post("/profile", h.UpdateProfile)
		r.Post("/chat", h.Chat)
		r.Get("/chat/{tripplanid}", h.ChatStatus)
	})

	r.Method("GET", "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}
