package services

import (
	"context"
	"time"

	"autokomis/backoffice/internal/common"
	"autokomis/backoffice/internal/logging"
)

const reviewsCacheKey = "reviews:place"

type placesFetcher interface {
	FetchDetails() (*common.PlaceDetails, error)
}

// ReviewsService serves the dealership's Google reviews from cache. The
// external API is read-only and slow; a background job refreshes the cache
// so visitors almost never pay for the round trip.
type ReviewsService struct {
	cache  common.CacheInterface
	client placesFetcher
	ttl    time.Duration
}

func NewReviewsService(cache common.CacheInterface, client placesFetcher, ttl time.Duration) *ReviewsService {
	return &ReviewsService{cache: cache, client: client, ttl: ttl}
}

// Get returns cached reviews, fetching on a cold cache.
func (s *ReviewsService) Get(ctx context.Context) (*common.PlaceDetails, error) {
	val, err := s.cache.GetOrSet(reviewsCacheKey, s.ttl, func() (any, error) {
		return s.client.FetchDetails()
	})
	if err != nil {
		return nil, err
	}

	details, ok := val.(*common.PlaceDetails)
	if !ok {
		s.cache.Delete(reviewsCacheKey)
		return s.client.FetchDetails()
	}
	return details, nil
}

// Refresh re-fetches reviews and replaces the cache entry, keeping a stale
// entry when the upstream call fails.
func (s *ReviewsService) Refresh(ctx context.Context) error {
	details, err := s.client.FetchDetails()
	if err != nil {
		logging.Warn("reviews refresh failed, keeping cached copy", "error", err.Error())
		return err
	}

	s.cache.Set(reviewsCacheKey, details, s.ttl)
	return nil
}
