// Package exercisetracker собирает HTTP-приложение трекера упражнений.
package exercisetracker

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/magabrotheeeer/exercise-tracker/docs"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/exercise/add"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/exercise/exerciselog"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/exercise/newuser"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/health"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
	exerciseservice "github.com/magabrotheeeer/exercise-tracker/internal/services/exercise"
)

// RouteOptions хранит настройки маршрутов, не относящиеся к зависимостям.
type RouteOptions struct {
	Location  *time.Location // Часовой пояс для вывода дат
	RateLimit float64
	RateBurst int
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, service *exerciseservice.Service,
	db health.Pinger, landing http.Handler, opts RouteOptions) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.MetricsMiddleware,
		middlewarectx.CORS(),
	)

	r.NotFound(response.NotFound)
	r.MethodNotAllowed(response.NotFound)

	r.Method(http.MethodGet, "/", landing)
	r.Method(http.MethodGet, "/health", health.New(logger, db))

	r.Route("/api/exercise", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, opts.RateLimit, opts.RateBurst))
		r.Post("/new-user", newuser.New(logger, service).ServeHTTP)
		r.Post("/add", add.New(logger, service, opts.Location).ServeHTTP)
		r.Get("/log", exerciselog.New(logger, service, opts.Location).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
