package api

import (
	"net/http"

	"github.com/dom/quiz-monsters/internal/api/handlers"
	"github.com/dom/quiz-monsters/internal/api/middleware"
	"github.com/dom/quiz-monsters/internal/service"
	"github.com/dom/quiz-monsters/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

func NewRouter(services *service.Services, hub *websocket.Hub, log *logrus.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{Logger: log, NoColor: true}))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Auth, log)
	contentHandler := handlers.NewContentHandler(services.Content, log)
	monsterHandler := handlers.NewMonsterHandler(services.Collection, log)
	rarityHandler := handlers.NewRarityHandler(services.Collection)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Auth, log)
	requireAuth := middleware.Auth(services.Auth, log)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Content catalogue (public for now)
		r.Route("/contents", func(r chi.Router) {
			r.Get("/", contentHandler.GetAll)
			r.Get("/{id}", contentHandler.Get)
			r.Post("/import", contentHandler.Import) // Should be admin-only in production
			r.Post("/sync", contentHandler.Sync)
		})

		r.Get("/rarity/odds", rarityHandler.Odds)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Route("/monsters", func(r chi.Router) {
				r.Get("/", monsterHandler.List)
				r.Post("/generate", monsterHandler.Generate)
				r.Get("/stats", monsterHandler.Stats)
				r.Get("/search", monsterHandler.Search)
				r.Get("/{id}", monsterHandler.Get)
				r.Post("/{id}/unlock", monsterHandler.Unlock)
				r.Get("/{id}/dna", monsterHandler.DNA)
				r.Get("/{id}/render.svg", monsterHandler.Render)
			})

			r.Get("/progress", monsterHandler.Progress)
		})

		// WebSocket endpoint
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
