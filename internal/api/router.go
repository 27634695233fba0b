package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/automind-labs/ecodrive/internal/events"
	"github.com/automind-labs/ecodrive/internal/progress"
	"github.com/automind-labs/ecodrive/internal/routing"
	"github.com/automind-labs/ecodrive/internal/scoring"
)

func NewRouter(
	store *progress.Store,
	scorer *scoring.Scorer,
	recommender *scoring.Recommender,
	routes routing.RouteProvider,
	alternatives routing.AlternativesProvider,
	traffic routing.TrafficProvider,
	ev events.Client,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	compare := NewCompareHandler(scorer)
	recommend := NewRecommendHandler(recommender)
	carbon := NewCarbonHandler(store, ev)
	evs := NewEVHandler()
	dashboard := NewDashboardHandler(store)
	routesHandler := NewRoutesHandler(routes, alternatives, traffic)

	r.Route("/api", func(r chi.Router) {
		r.Post("/routes", routesHandler.Calculate)
		r.Post("/here-routes", routesHandler.Alternatives)
		r.Post("/compare-cars", compare.Compare)
		r.Post("/ai-recommendations", recommend.Recommend)
		r.Post("/track-carbon", carbon.Track)
		r.Post("/ev-recommendations", evs.Recommend)
		r.Get("/dashboard", dashboard.Dashboard)
		r.Get("/traffic-updates", routesHandler.Traffic)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "endpoint not found")
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
