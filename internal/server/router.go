package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"nomadsim/internal/httpmw"
)

// NewRouter wires the API routes with the shared middleware stack.
func NewRouter(app *App, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))
	r.Use(httpmw.WithRequestID)
	r.Use(httpmw.WithRecover(app.Log))
	r.Use(httpmw.WithAccessLog(app.Log))

	r.Get("/healthz", app.handleHealthz)

	r.Route("/api", func(api chi.Router) {
		api.Get("/state", app.handleState)
		api.Get("/horoscope", app.handleHoroscope)
		api.Post("/reset", app.handleReset)

		api.Route("/actions", func(actions chi.Router) {
			actions.Post("/work", app.handleWork)
			actions.Post("/rest-home", app.handleRestHome)
			actions.Post("/rest-cafe", app.handleRestCafe)
			actions.Post("/study", app.handleStudy)
			actions.Post("/pin", app.handlePin)
			actions.Post("/upgrade", app.handleUpgrade)
		})

		api.Get("/leaderboard", app.handleLeaderboard)
		api.Post("/leaderboard", app.handleSaveScore)
	})

	return r
}
