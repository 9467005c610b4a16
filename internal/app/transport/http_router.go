package transport

import (
	"log/slog"
	"net/http"

	"github.com/cnwoye/itinerary-planner-service/internal/app/config"
	"github.com/cnwoye/itinerary-planner-service/internal/app/dto"
	"github.com/cnwoye/itinerary-planner-service/internal/app/endpoints"
	httptransport "github.com/cnwoye/itinerary-planner-service/internal/pkg/transport/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		//nolint:errcheck
		w.Write([]byte(`{"status":"UP"}`))
	})

	router.Route("/api/v1/flights", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/", httptransport.MakeHandlerFunc(
			endpts.PlannerEndpoint.PlanItinerary,
			httptransport.DecodeQueryRequest[dto.PlanItineraryRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
