package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/aqualog/hydration-api/docs"
	"github.com/aqualog/hydration-api/internal/api/handler"
	"github.com/aqualog/hydration-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler           *handler.UserHandler
	intakeHandler         *handler.IntakeHandler
	recommendationHandler *handler.RecommendationHandler
	sleepSyncHandler      *handler.SleepSyncHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	intakeHandler *handler.IntakeHandler,
	recommendationHandler *handler.RecommendationHandler,
	sleepSyncHandler *handler.SleepSyncHandler,
) *Router {
	return &Router{
		userHandler:           userHandler,
		intakeHandler:         intakeHandler,
		recommendationHandler: recommendationHandler,
		sleepSyncHandler:      sleepSyncHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)
			r.Put("/{userId}/metrics", rt.userHandler.UpdateMetrics)
			r.Get("/{userId}/goal", rt.userHandler.Goal)

			// Intake (nested under users)
			r.Route("/{userId}/intake", func(r chi.Router) {
				r.Post("/", rt.intakeHandler.Log)
				r.Get("/", rt.intakeHandler.List)
				r.Get("/summary", rt.intakeHandler.Summary)
			})
			r.Post("/{userId}/drinks/analyze", rt.intakeHandler.AnalyzeDrink)

			// Sleep stage samples (nested under users)
			r.Post("/{userId}/sleep-samples", rt.sleepSyncHandler.Sync)

			// Recommendations (nested under users)
			r.Route("/{userId}/recommendations", func(r chi.Router) {
				r.Get("/sleep", rt.recommendationHandler.Sleep)
				r.Get("/weather", rt.recommendationHandler.Weather)
				r.Get("/today", rt.recommendationHandler.Today)
				r.Post("/feedback", rt.recommendationHandler.Feedback)
			})
		})
	})

	return r
}
