package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Dosada05/padel-live/docs"
	"github.com/Dosada05/padel-live/handlers"
	"github.com/Dosada05/padel-live/middleware"
)

type Handlers struct {
	Viewer     *handlers.ViewerHandler
	Tournament *handlers.TournamentHandler
	Export     *handlers.ExportHandler
	Bracket    *handlers.BracketHandler
	TV         *handlers.TVHandler
	Auth       *handlers.AuthHandler
	Health     *handlers.HealthHandler
}

type Options struct {
	AllowedOrigins []string
	Sessions       middleware.SessionParser
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(corsOptions(opts.AllowedOrigins)))

	router.Get("/healthz", h.Health.HealthzHandler)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/doc.json", docs.Handler)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Viewer streams are anonymous.
	router.Get("/games/{gameID}/viewers/stream", h.Viewer.StreamHandler)
	router.Get("/games/{gameID}/viewers", h.Viewer.CountHandler)
	router.Get("/ws/games/{gameID}/viewers", h.Viewer.WebSocketHandler)
	router.Get("/viewers", h.Viewer.SnapshotHandler)

	router.Get("/public/tournaments/{tournamentID}", h.Tournament.PublicHandler)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(opts.Sessions))

		r.Get("/match-formats", h.Tournament.MatchFormatsHandler)
		r.Get("/games/{gameID}", h.Tournament.GameHandler)
		r.Get("/tv/tournaments/{tournamentID}", h.TV.BoardHandler)

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", h.Tournament.ListHandler)

			r.Route("/{tournamentID}", func(r chi.Router) {
				r.Get("/", h.Tournament.GetByIDHandler)
				r.Get("/pairs", h.Tournament.PairsHandler)
				r.Get("/pairs.csv", h.Export.PairsCSVHandler)
				r.Get("/bracket", h.Bracket.LayoutHandler)
				r.Get("/display", h.Bracket.GetDisplayHandler)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAuth)
					r.Put("/display", h.Bracket.UpdateDisplayHandler)
					r.Delete("/display", h.Bracket.ResetDisplayHandler)
					r.Post("/exports", h.Export.UploadHandler)
					r.Delete("/exports/{name}", h.Export.DeleteHandler)
				})
			})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Get("/login", h.Auth.LoginHandler)
			r.Get("/callback", h.Auth.CallbackHandler)
			r.Post("/logout", h.Auth.LogoutHandler)
			r.Get("/me", h.Auth.MeHandler)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"the requested resource could not be found"}` + "\n"))
	})
}

// corsOptions allows credentialed requests only from listed origins. With
// the "*" wildcard the session cookie is never sent cross-origin.
func corsOptions(allowedOrigins []string) cors.Options {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	return cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Last-Event-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "Location"},
		AllowCredentials: allowCredentials,
		MaxAge:           300,
	}
}
