package router

import (
	"net/http"
	"time"

	"github.com/actuallystonmai/nutrisathi-service/internal/config"
	"github.com/actuallystonmai/nutrisathi-service/internal/handler"
	"github.com/actuallystonmai/nutrisathi-service/internal/logging"
	"github.com/actuallystonmai/nutrisathi-service/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(h *handler.Handler, cfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger)
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	// Operational
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if cfg.RateLimit > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
		}
		r.Use(h.Identify)

		r.Get("/dishes", h.ListDishes)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if cfg.AuthRateLimit > 0 {
					r.Use(httprate.LimitByIP(cfg.AuthRateLimit, time.Minute))
				}
				r.Post("/signup", h.Signup)
				r.Post("/login", h.Login)
			})
			r.Post("/logout", h.Logout)

			r.With(handler.RequireUser).Get("/me", h.Me)
			r.With(handler.RequireUser).Put("/profile", h.UpdateProfile)
		})

		r.Route("/meals", func(r chi.Router) {
			r.Use(handler.RequireUser)
			r.Get("/", h.ListMeals)
			r.Post("/", h.LogMeal)
			r.Get("/summary", h.TodaySummary)
			r.Delete("/{mealID}", h.DeleteMeal)
		})

		r.With(handler.RequireUser).Get("/gamification/stats", h.Stats)

		r.Route("/ai", func(r chi.Router) {
			r.Post("/recommend-thali", h.RecommendThali)
			r.Post("/recommend-mood", h.RecommendMood)
			r.Post("/recommend-day", h.RecommendDay)
			r.Post("/calculate-calories", h.CalculateCalories)
			r.Get("/info", h.Info)
			r.Get("/thali-info", h.ThaliInfo)
			r.Get("/calorie-info", h.CalorieInfo)
		})
	})

	return r
}
