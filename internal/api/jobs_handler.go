package api

import (
	"net/http"

	"autokomis/backoffice/internal/jobs"
)

type jobStatusResponse struct {
	Triggered bool   `json:"triggered"`
	Job       string `json:"job"`
}

// JobsHandler lets the admin trigger background jobs by hand.
type JobsHandler struct {
	reviewsJob *jobs.ReviewsRefreshJob
}

func NewJobsHandler(reviewsJob *jobs.ReviewsRefreshJob) *JobsHandler {
	return &JobsHandler{reviewsJob: reviewsJob}
}

// TriggerReviewsRefresh handles POST /api/v1/admin/jobs/refresh-reviews
func (h *JobsHandler) TriggerReviewsRefresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.reviewsJob.Run(r.Context()); err != nil {
			respondWithError(w, http.StatusBadGateway, "reviews refresh failed")
			return
		}

		respondWithSuccess(w, http.StatusOK, &jobStatusResponse{Triggered: true, Job: "reviews_refresh"})
	}
}
