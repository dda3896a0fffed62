package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"

	"github.com/suppa/taox-brain/internal/api/handlers"
	"github.com/suppa/taox-brain/internal/api/middleware"
	"github.com/suppa/taox-brain/internal/config"
	"github.com/suppa/taox-brain/internal/draft"
	"github.com/suppa/taox-brain/internal/repository"
	"github.com/suppa/taox-brain/internal/service"
	"github.com/suppa/taox-brain/internal/ws"
)

func NewRouter(
	services *service.Services,
	repos *repository.Repositories,
	db *gorm.DB,
	manager *draft.Manager,
	broadcaster *ws.Broadcaster,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check reports collaborator status; the UI shows degraded
	// features instead of crashing when something is offline.
	r.Get("/health", handlers.NewHealthHandler(db, services.Media).Status)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, manager)
	heroHandler := handlers.NewHeroHandler(services.Hero, services.Media)
	comboHandler := handlers.NewComboHandler(services.Combo)
	analyticsHandler := handlers.NewAnalyticsHandler(services.Analytics)
	versionHandler := handlers.NewVersionHandler(services.Version)
	draftHandler := handlers.NewDraftHandler(services.Hero, repos.Combo, manager, broadcaster, cfg.BotThinkTime)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Everything else requires a staff login
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			// Hero CMS
			r.Route("/heroes", func(r chi.Router) {
				r.Get("/", heroHandler.List)
				r.Post("/", heroHandler.Create)
				r.Post("/seed", heroHandler.Seed)
				r.Put("/{id}", heroHandler.Update)
				r.Delete("/{id}", heroHandler.Delete)
				r.Post("/{id}/image", heroHandler.UploadImage)
			})

			// Combo manager
			r.Route("/combos", func(r chi.Router) {
				r.Get("/", comboHandler.List)
				r.Post("/", comboHandler.Create)
				r.Delete("/{id}", comboHandler.Delete)
			})

			// Scrim analytics
			r.Route("/matches", func(r chi.Router) {
				r.Get("/", analyticsHandler.List)
				r.Get("/stats", analyticsHandler.Stats)
				r.Post("/import", analyticsHandler.Import)
			})

			// Patch versions
			r.Route("/versions", func(r chi.Router) {
				r.Get("/", versionHandler.List)
				r.Post("/", versionHandler.Create)
				r.Post("/{id}/clone", versionHandler.Clone)
			})

			// Draft arena
			r.Route("/draft", func(r chi.Router) {
				r.Post("/start", draftHandler.Start)
				r.Post("/select", draftHandler.Select)
				r.Get("/state", draftHandler.State)
				r.Post("/next-game", draftHandler.NextGame)
				r.Post("/reset-series", draftHandler.ResetSeries)
				r.Get("/ws", draftHandler.Spectate)
			})
		})
	})

	return r
}
