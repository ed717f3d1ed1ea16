package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"gadgetmart-auth/internal/handler"
	"gadgetmart-auth/pkg/middleware"
)

const passwordMaxAge = 90 * 24 * time.Hour

func SetupRoutes(
	r chi.Router,
	h *handler.AuthHandler,
	auth *middleware.AuthMiddleware,
	users middleware.UserSource,
	publisher middleware.ActivityPublisher,
	rdb redis.UniversalClient,
) chi.Router {
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimiter(rdb, 100, 15*time.Minute, 15*time.Minute, "global_user_api"))
	r.Use(middleware.ActivityLogger(publisher, auth))

	r.Route("/api/user", func(api chi.Router) {
		// ---------------- Public ----------------
		api.Group(func(pub chi.Router) {
			pub.Get("/health", h.Health)
			pub.Post("/create", h.CreateUser)
			pub.Post("/login", h.LoginUser)
			pub.Post("/verifyOTP", h.VerifyOTP)
			pub.Post("/forgot_password", h.ForgotPassword)
			pub.Post("/reset_password", h.ResetPassword)
		})

		// ---------------- Authenticated ----------------
		api.Group(func(g chi.Router) {
			g.Use(auth.AuthGuard)
			g.Get("/get_single_user", h.GetSingleUser)
		})

		api.Group(func(g chi.Router) {
			g.Use(auth.AuthGuard)
			g.Use(middleware.PasswordExpiry(users, passwordMaxAge))
			g.Put("/update_profile", h.UpdateProfile)
		})

		// ---------------- Admin ----------------
		api.Group(func(g chi.Router) {
			g.Use(auth.AdminGuard)
			g.Get("/get_all_user", h.GetAllUsers)
		})
	})

	return r
}
