package jobs

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"autokomis/backoffice/internal/common"
	"autokomis/backoffice/internal/logging"
	"autokomis/backoffice/internal/services"
)

// InitializeJobs warms the caches and starts all background jobs
func InitializeJobs(
	ctx context.Context,
	reviewsSvc *services.ReviewsService,
	listingMirror *common.ListingCache,
	listingSvc *services.ListingService,
) *ReviewsRefreshJob {
	reviewsJob := NewReviewsRefreshJob(reviewsSvc)

	// Warm both caches concurrently before serving traffic. Failures are
	// logged, not fatal: the read paths fall back to lazy loading.
	g, warmCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := reviewsJob.Run(warmCtx); err != nil {
			logging.Warn("initial reviews warmup failed", "error", err.Error())
		}
		return nil
	})
	g.Go(func() error {
		if _, err := listingMirror.Load(warmCtx, listingSvc.List); err != nil {
			logging.Warn("initial listing cache warmup failed", "error", err.Error())
		}
		return nil
	})
	_ = g.Wait()

	// Reviews change rarely; hourly refresh keeps the cache warm forever.
	go reviewsJob.RunScheduled(ctx, 1*time.Hour)

	return reviewsJob
}
