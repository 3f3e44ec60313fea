package httpapi

import (
	"net/http"

	"github.com/KirkDiggler/squadup/internal/services/game"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes builds the ops router
func SetupRoutes(games game.Service, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	r.Route("/games", func(r chi.Router) {
		r.Get("/", ListGames(games))
		r.Get("/{gameID}", GetGame(games))
	})

	return r
}
