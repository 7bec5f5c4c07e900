package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"autokomis/backoffice/internal/common"
	"autokomis/backoffice/internal/services"
)

// ListCarsHandler handles GET /api/v1/cars
//
// Serves the public listing page from the cache mirror, falling back to the
// listing service on a cold cache.
func ListCarsHandler(mirror *common.ListingCache, listingSvc *services.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cars, err := mirror.Load(r.Context(), listingSvc.List)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &cars)
	}
}

// GetCarHandler handles GET /api/v1/cars/{id}
func GetCarHandler(listingSvc *services.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		car, err := listingSvc.Get(r.Context(), id)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, car)
	}
}
