package api

import (
	"net/http"

	"autokomis/backoffice/internal/services"
)

// ReviewsHandler handles GET /api/v1/reviews
//
// Serves the dealership's Google rating and recent reviews from cache. The
// background refresh job keeps the entry warm.
func ReviewsHandler(reviewsSvc *services.ReviewsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details, err := reviewsSvc.Get(r.Context())
		if err != nil {
			respondWithError(w, http.StatusBadGateway, "reviews unavailable")
			return
		}

		respondWithSuccess(w, http.StatusOK, details)
	}
}
