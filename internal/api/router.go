package api

import (
	"net/http"
	"time"
	"solvegrid/internal/api/handler"
	"solvegrid/internal/app/service"
	"solvegrid/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	platformService *service.PlatformService,
	dashboardService *service.DashboardService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// JWT Auth Middleware Setup. Verifies the "Authorization: Bearer T"
	// token and puts claims in context; route groups decide enforcement.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth routes (public)
		authHandler := handler.NewAuthHandler(authService)
		v1.Group(func(publicAuth chi.Router) {
			authHandler.RegisterRoutes(publicAuth)
		})

		// Connected judge handles (authenticated)
		platformHandler := handler.NewPlatformHandler(platformService)
		v1.Route("/platforms", platformHandler.RegisterRoutes)

		// Dashboard analytics (authenticated)
		dashboardHandler := handler.NewDashboardHandler(dashboardService)
		v1.Route("/dashboard", dashboardHandler.RegisterRoutes)
	})

	return r
}
