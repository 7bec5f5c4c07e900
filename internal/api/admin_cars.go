package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"autokomis/backoffice/internal/models/dtos"
)

type deletedResponse struct {
	ID string `json:"id"`
}

// CreateCarHandler handles POST /api/v1/admin/cars
func CreateCarHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch dtos.CarPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		car, err := deps.Services.Listing.Create(r.Context(), &patch)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		deps.Services.ListingMir.UpsertLocal(*car)
		deps.Metrics.CarsCreatedTotal.Inc()

		respondWithSuccess(w, http.StatusCreated, car)
	}
}

// UpdateCarHandler handles PUT /api/v1/admin/cars/{id}
//
// Accepts a full or partial field set; absent fields stay untouched, so a
// retried request lands on the same final record.
func UpdateCarHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch dtos.CarPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		car, err := deps.Services.Listing.Update(r.Context(), id, &patch)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		deps.Services.ListingMir.UpsertLocal(*car)

		respondWithSuccess(w, http.StatusOK, car)
	}
}

// SetSoldBadgeHandler handles PATCH /api/v1/admin/cars/{id}/sold-badge
func SetSoldBadgeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req dtos.SoldBadgeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.SoldBadge == nil {
			respondWithError(w, http.StatusBadRequest, "soldBadge is required")
			return
		}

		car, err := deps.Services.Listing.SetSoldBadge(r.Context(), id, *req.SoldBadge)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		deps.Services.ListingMir.UpsertLocal(*car)

		respondWithSuccess(w, http.StatusOK, car)
	}
}

// SetStatusHandler handles PATCH /api/v1/admin/cars/{id}/status
//
// Drives the markSold/restore transition. Setting the current status again
// is a no-op success.
func SetStatusHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req dtos.StatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		car, err := deps.Services.Listing.SetStatus(r.Context(), id, req.Status)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		deps.Services.ListingMir.UpsertLocal(*car)

		respondWithSuccess(w, http.StatusOK, car)
	}
}

// DeleteCarHandler handles DELETE /api/v1/admin/cars/{id}
func DeleteCarHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := deps.Services.Listing.Delete(r.Context(), id); err != nil {
			respondWithAppError(w, err)
			return
		}

		deps.Services.ListingMir.RemoveLocal(id)
		deps.Metrics.CarsDeletedTotal.Inc()

		respondWithSuccess(w, http.StatusOK, &deletedResponse{ID: id})
	}
}
