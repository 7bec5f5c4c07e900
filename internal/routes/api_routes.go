package routes

import (
	"github.com/go-chi/chi/v5"

	"autokomis/backoffice/internal/api"
	"autokomis/backoffice/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, jobsHandler *api.JobsHandler) {

	r.Route("/api/v1", func(v1 chi.Router) {
		// Public
		v1.Get("/cars", api.ListCarsHandler(deps.Services.ListingMir, deps.Services.Listing))
		v1.Get("/cars/{id}", api.GetCarHandler(deps.Services.Listing))
		v1.Get("/reviews", api.ReviewsHandler(deps.Services.Reviews))

		// Lead capture is the only unauthenticated write, so it is throttled
		v1.Group(func(leads chi.Router) {
			leads.Use(middleware.RateLimitMiddleware)
			leads.Post("/leads/contact", api.ContactLeadHandler(deps))
			leads.Post("/leads/newsletter", api.NewsletterHandler(deps))
		})

		v1.Post("/auth/login", api.LoginHandler(deps))

		// Token-authenticated upload for devices without a cookie session
		v1.Post("/uploads/presigned", api.PresignedUploadHandler(deps))

		// Admin group, gated by the session cookie
		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.AdminAuthMiddleware(deps.Services.Session))

			admin.Post("/cars", api.CreateCarHandler(deps))
			admin.Put("/cars/{id}", api.UpdateCarHandler(deps))
			admin.Patch("/cars/{id}/sold-badge", api.SetSoldBadgeHandler(deps))
			admin.Patch("/cars/{id}/status", api.SetStatusHandler(deps))
			admin.Delete("/cars/{id}", api.DeleteCarHandler(deps))

			admin.Get("/leads", api.ListLeadsHandler(deps))

			admin.Post("/uploads", api.AdminUploadHandler(deps))
			admin.Post("/uploads/sign", api.GenerateUploadLinkHandler(deps))

			admin.Post("/auth/logout", api.LogoutHandler(deps))

			admin.Post("/jobs/refresh-reviews", jobsHandler.TriggerReviewsRefresh())
		})
	})
}
