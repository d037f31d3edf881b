package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/irds/vans-api/internal/delivery/http/middleware"
	"github.com/irds/vans-api/internal/pkg/config"
	"github.com/irds/vans-api/internal/pkg/logger"
)

// Router contiene las dependencias del router HTTP
type Router struct {
	authHandler    *AuthHandler
	vanHandler     *VanHandler
	averiaHandler  *AveriaHandler
	metricsHandler *MetricsHandler
	verifier       middleware.SessionVerifier
	config         *config.Config
	logger         logger.Logger
}

// NewRouter crea el router HTTP
func NewRouter(
	authHandler *AuthHandler,
	vanHandler *VanHandler,
	averiaHandler *AveriaHandler,
	metricsHandler *MetricsHandler,
	verifier middleware.SessionVerifier,
	config *config.Config,
	logger logger.Logger,
) *Router {
	return &Router{
		authHandler:    authHandler,
		vanHandler:     vanHandler,
		averiaHandler:  averiaHandler,
		metricsHandler: metricsHandler,
		verifier:       verifier,
		config:         config,
		logger:         logger,
	}
}

// Setup monta todas las rutas
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware globales
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: rt.config.CORS.AllowedOrigins,
		AllowedMethods: rt.config.CORS.AllowedMethods,
		AllowedHeaders: rt.config.CORS.AllowedHeaders,
	}))

	// Health check (público)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Rutas públicas: login y me (me devuelve null sin sesión)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", rt.authHandler.Login)
			r.Get("/me", rt.authHandler.Me)
			r.Post("/logout", rt.authHandler.Logout)
		})

		// Rutas protegidas: exigen sesión válida
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(rt.verifier, rt.config.Auth.CookieName))

			r.Route("/vans", func(r chi.Router) {
				r.Get("/", rt.vanHandler.List)
				r.Get("/search", rt.vanHandler.Search)
				r.Post("/filter", rt.vanHandler.Filter)
				r.Post("/", rt.vanHandler.Create)
				r.Get("/{id}", rt.vanHandler.GetByID)
				r.Put("/{id}", rt.vanHandler.Update)
				r.Delete("/{id}", rt.vanHandler.Delete)
				r.Get("/{id}/averias", rt.averiaHandler.GetByVanID)
			})

			r.Route("/averias", func(r chi.Router) {
				r.Get("/", rt.averiaHandler.List)
				r.Post("/", rt.averiaHandler.Create)
				r.Get("/{id}", rt.averiaHandler.GetByID)
				r.Put("/{id}", rt.averiaHandler.Update)
				r.Delete("/{id}", rt.averiaHandler.Delete)
			})

			r.Get("/metrics/dashboard", rt.metricsHandler.Dashboard)
		})
	})

	return r
}
