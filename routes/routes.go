package routes

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/arbitro/docs"
	"github.com/Dosada05/arbitro/handlers"
	"github.com/Dosada05/arbitro/middleware"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Health     *handlers.HealthHandler
	Tournament *handlers.TournamentHandler
	League     *handlers.LeagueHandler
	Match      *handlers.MatchHandler
	Team       *handlers.TeamHandler
	WebSocket  *handlers.WebSocketHandler
}

func SetupRoutes(router chi.Router, logger *slog.Logger, allowedOrigins []string, h Handlers) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", h.Health.Health)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	// Websocket connections are long-lived and must not be cut by the timeout.
	router.Get("/ws/{kind}/{name}", h.WebSocket.ServeWs)

	router.Group(func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", h.Tournament.ListTournaments)
			r.Post("/", h.Tournament.CreateTournament)
			r.Get("/{name}", h.Tournament.GetTournament)
			r.Delete("/{name}", h.Tournament.DeleteTournament)
			r.Post("/{name}/matchups/{matchupID}/open", h.Tournament.OpenMatchup)
		})

		r.Route("/leagues", func(r chi.Router) {
			r.Get("/", h.League.ListLeagues)
			r.Post("/", h.League.CreateLeague)
			r.Get("/{name}", h.League.GetLeague)
			r.Delete("/{name}", h.League.DeleteLeague)
			r.Post("/{name}/matchups/{matchupID}/open", h.League.OpenMatchup)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.Match.ListMatches)
			r.Put("/", h.Match.SaveMatch)
			r.Post("/result", h.Match.RecordResult)
			r.Get("/{key}", h.Match.GetMatch)
			r.Delete("/{key}", h.Match.DeleteMatch)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.Team.ListTeams)
			r.Put("/", h.Team.SaveTeams)
		})
	})
}
