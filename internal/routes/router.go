package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"autokomis/backoffice/internal/api"
	"autokomis/backoffice/internal/db"
	"autokomis/backoffice/internal/jobs"
	"autokomis/backoffice/internal/logging"
	"autokomis/backoffice/internal/metrics"
	"autokomis/backoffice/internal/middleware"
)

func RegisterRoutes(upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true, // admin panel relies on the session cookie
		MaxAge:           300,  // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, deps.Redis, upSince))

	// Warm caches and start the scheduled reviews refresh
	reviewsJob := jobs.InitializeJobs(
		context.Background(),
		deps.Services.Reviews,
		deps.Services.ListingMir,
		deps.Services.Listing,
	)
	jobsHandler := api.NewJobsHandler(reviewsJob)

	// Register API routes
	RegisterAPIRoutes(r, deps, jobsHandler)

	// Uploaded listing photos are served straight off disk.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.Services.Upload.Dir())))
	r.Handle("/uploads/*", fileServer)

	return r
}
