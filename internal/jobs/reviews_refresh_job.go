package jobs

import (
	"context"
	"time"

	"autokomis/backoffice/internal/logging"
	"autokomis/backoffice/internal/services"
)

// ReviewsRefreshJob keeps the Google reviews cache warm so public page loads
// never wait on the Places API. A failed refresh leaves the previous entry in
// place.
type ReviewsRefreshJob struct {
	reviews *services.ReviewsService
}

func NewReviewsRefreshJob(reviews *services.ReviewsService) *ReviewsRefreshJob {
	return &ReviewsRefreshJob{reviews: reviews}
}

func (j *ReviewsRefreshJob) Run(ctx context.Context) error {
	return j.reviews.Refresh(ctx)
}

// RunScheduled runs the reviews refresh job on a schedule
func (j *ReviewsRefreshJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				logging.Warn("scheduled reviews refresh failed", "error", err.Error())
			}
		case <-ctx.Done():
			logging.Info("reviews refresh job shutting down")
			return
		}
	}
}
