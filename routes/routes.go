package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/pmsa-qul/artsfest/docs"
	"github.com/pmsa-qul/artsfest/handlers"
	"github.com/pmsa-qul/artsfest/middleware"
	"github.com/pmsa-qul/artsfest/models"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Results    *handlers.ResultsHandler
	Admin      *handlers.AdminHandler
	Highlights *handlers.HighlightHandler
	WebSocket  *handlers.WebSocketHandler
}

type Options struct {
	AllowedOrigins []string
	// Authenticate кладёт models.Principal в контекст запроса.
	Authenticate func(http.Handler) http.Handler
	LoginLimiter *middleware.IPRateLimiter
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Get("/ws/results", h.WebSocket.ServeWs)

	router.Route("/api", func(r chi.Router) {
		r.Get("/teams", h.Results.ListTeams)
		r.Get("/categories", h.Results.ListCategories)
		r.Get("/results/standings", h.Results.GetStandings)
		r.Get("/results/events", h.Results.ListEventCards)
		r.Get("/tv/feed", h.Results.GetTVFeed)
		r.Get("/highlights", h.Highlights.ListHighlights)

		r.Group(func(r chi.Router) {
			if opts.LoginLimiter != nil {
				r.Use(opts.LoginLimiter.Middleware)
			}
			r.Post("/auth/login", h.Auth.Login)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(opts.Authenticate)
			r.Use(middleware.Authorize(models.RoleAdmin))

			r.Get("/events", h.Admin.ListEvents)
			r.Get("/students/search", h.Admin.SearchStudents)
			r.Get("/points", h.Admin.PreviewPoints)
			r.Post("/results", h.Admin.SubmitResults)

			r.Post("/highlights", h.Highlights.UploadHighlight)
			r.Delete("/highlights/*", h.Highlights.DeleteHighlight)
		})
	})
}
