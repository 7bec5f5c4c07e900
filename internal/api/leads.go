package api

import (
	"encoding/json"
	"net/http"

	"autokomis/backoffice/internal/models/dtos"
	"autokomis/backoffice/internal/models/entities"
)

// ContactLeadHandler handles POST /api/v1/leads/contact
func ContactLeadHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.ContactLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		lead, err := deps.Services.Leads.CaptureContact(r.Context(), req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		deps.Metrics.LeadsCapturedTotal.WithLabelValues(string(entities.LeadContact)).Inc()

		respondWithSuccess(w, http.StatusCreated, lead)
	}
}

// NewsletterHandler handles POST /api/v1/leads/newsletter
func NewsletterHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.NewsletterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		lead, err := deps.Services.Leads.CaptureNewsletter(r.Context(), req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		deps.Metrics.LeadsCapturedTotal.WithLabelValues(string(entities.LeadNewsletter)).Inc()

		respondWithSuccess(w, http.StatusCreated, lead)
	}
}

// ListLeadsHandler handles GET /api/v1/admin/leads
func ListLeadsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leads, err := deps.Services.Leads.List(r.Context())
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &leads)
	}
}
